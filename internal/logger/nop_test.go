package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kevin-dyer/mqtt-subscription-vault/types"
)

func TestNopLogger(t *testing.T) {
	var l types.Logger = NewNop()

	require.NotPanics(t, func() {
		l.Debug("topic added", "topic", "a/b")
		l.Info("resumed", "topics", 3)
		l.Warn("subscription not found", "topic", "a/b")
		l.Error("upstream subscribe failed", "error", "boom")
		l.Fatal("fatal", "key", "value") // must not exit
	})
}

func TestNopLogger_OddArguments(t *testing.T) {
	l := NewNop()

	require.NotPanics(t, func() {
		l.Info("")
		l.Warn("dangling key", "topic")
		l.Error("nil values", nil, nil)
	})
}
