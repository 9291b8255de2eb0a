// Package natsutil classifies NATS client errors.
package natsutil

import (
	"errors"
	"strings"

	"github.com/nats-io/nats.go"
)

// IsRetryable reports whether err is a transient connectivity failure worth
// retrying, as opposed to a permanent one such as an invalid subject or a
// permissions violation.
//
// Kept in internal/natsutil so types/ does not import NATS.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, nats.ErrTimeout) ||
		errors.Is(err, nats.ErrNoServers) ||
		errors.Is(err, nats.ErrDisconnected) ||
		errors.Is(err, nats.ErrConnectionClosed) ||
		errors.Is(err, nats.ErrConnectionReconnecting) ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "i/o timeout")
}
