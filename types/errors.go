package types

import "errors"

// Sentinel errors for the subscription vault.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Vault errors - returned or reported by the Vault component.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSubscriptionNotFound is reported when Remove is called with a handle
	// that is not registered at the resolved topic. It is a diagnostic, not a failure.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// Transport errors - returned by the NATS bridge.
var (
	// ErrNATSConnectionRequired is returned when NATS connection is nil.
	ErrNATSConnectionRequired = errors.New("NATS connection is required")

	// ErrInvalidSubject is returned when a topic cannot be mapped to a NATS subject.
	ErrInvalidSubject = errors.New("topic cannot be mapped to a NATS subject")

	// ErrBridgeClosed is returned when operating on a closed bridge.
	ErrBridgeClosed = errors.New("bridge closed")

	// ErrHandlerRequired is returned when the bridge is created without a message handler.
	ErrHandlerRequired = errors.New("message handler is required")
)

// Snapshot errors - returned by the snapshot store.
var (
	// ErrJetStreamRequired is returned when the JetStream context is nil.
	ErrJetStreamRequired = errors.New("JetStream context is required")

	// ErrSnapshotNotFound is returned when no snapshot has been stored yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
