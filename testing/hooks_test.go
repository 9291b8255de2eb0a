package testing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHookRecorder(t *testing.T) {
	t.Run("records events in order", func(t *testing.T) {
		rec := NewHookRecorder()
		h := rec.Hooks()

		h.OnTopicAdded("a/b")
		h.OnSubscriptionNotFound("x")
		h.OnTopicRemoved("a/b")
		h.OnTopicAdded("c")

		require.Equal(t, []HookEvent{
			{Kind: "added", Topic: "a/b"},
			{Kind: "not_found", Topic: "x"},
			{Kind: "removed", Topic: "a/b"},
			{Kind: "added", Topic: "c"},
		}, rec.Events())
		require.Equal(t, []string{"a/b", "c"}, rec.Added())
		require.Equal(t, []string{"a/b"}, rec.Removed())
		require.Equal(t, []string{"x"}, rec.NotFound())
	})

	t.Run("reset discards events", func(t *testing.T) {
		rec := NewHookRecorder()
		rec.Hooks().OnTopicAdded("a")
		rec.Reset()

		require.Empty(t, rec.Events())
		require.Nil(t, rec.Added())
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		rec := NewHookRecorder()
		h := rec.Hooks()

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				h.OnTopicAdded("t")
			}()
		}
		wg.Wait()

		require.Len(t, rec.Added(), 10)
	})
}
