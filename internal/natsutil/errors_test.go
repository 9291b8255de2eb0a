package natsutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "timeout", err: nats.ErrTimeout, want: true},
		{name: "wrapped closed connection", err: fmt.Errorf("subscribe: %w", nats.ErrConnectionClosed), want: true},
		{name: "connection refused text", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "bad subject", err: nats.ErrBadSubject, want: false},
		{name: "permissions", err: errors.New("nats: permissions violation"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
