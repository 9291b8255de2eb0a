package subvault

import "github.com/kevin-dyer/mqtt-subscription-vault/types"

// Sentinel errors returned or reported by the Vault and its collaborators.
//
// They are the same values as in the types package, so errors.Is works no
// matter which package a caller imports.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrSubscriptionNotFound is reported (never returned) when Remove cannot
	// find the handle at the topic.
	ErrSubscriptionNotFound = types.ErrSubscriptionNotFound

	// ErrNATSConnectionRequired is returned when NATS connection is nil.
	ErrNATSConnectionRequired = types.ErrNATSConnectionRequired

	// ErrInvalidSubject is returned when a topic cannot be mapped to a NATS subject.
	ErrInvalidSubject = types.ErrInvalidSubject

	// ErrBridgeClosed is returned when operating on a closed bridge.
	ErrBridgeClosed = types.ErrBridgeClosed

	// ErrHandlerRequired is returned when the bridge is created without a message handler.
	ErrHandlerRequired = types.ErrHandlerRequired

	// ErrJetStreamRequired is returned when the JetStream context is nil.
	ErrJetStreamRequired = types.ErrJetStreamRequired

	// ErrSnapshotNotFound is returned when no snapshot has been stored yet.
	ErrSnapshotNotFound = types.ErrSnapshotNotFound
)
