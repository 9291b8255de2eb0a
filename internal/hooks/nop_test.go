package hooks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kevin-dyer/mqtt-subscription-vault/types"
)

func TestNewNop(t *testing.T) {
	h := NewNop()

	require.NotNil(t, h.OnTopicAdded)
	require.NotNil(t, h.OnTopicRemoved)
	require.NotNil(t, h.OnSubscriptionNotFound)

	require.NotPanics(t, func() {
		h.OnTopicAdded("a/b")
		h.OnTopicRemoved("a/b")
		h.OnSubscriptionNotFound("a/b")
	})
}

func TestWithDefaults(t *testing.T) {
	t.Run("nil hooks become no-ops", func(t *testing.T) {
		h := WithDefaults(nil)

		require.NotNil(t, h.OnTopicAdded)
		require.NotNil(t, h.OnTopicRemoved)
		require.NotNil(t, h.OnSubscriptionNotFound)
	})

	t.Run("keeps provided callbacks and fills the rest", func(t *testing.T) {
		var added []string
		h := WithDefaults(&types.Hooks{
			OnTopicAdded: func(topic string) { added = append(added, topic) },
		})

		h.OnTopicAdded("a/b")
		require.NotPanics(t, func() { h.OnTopicRemoved("a/b") })
		require.NotPanics(t, func() { h.OnSubscriptionNotFound("a/b") })
		require.Equal(t, []string{"a/b"}, added)
	})
}
