// Package testing provides test utilities for subvault and its NATS collaborators.
//
// It follows the convention of net/http/httptest: helpers live in their own
// package so production code never imports them.
//
// Key utilities:
//   - StartEmbeddedNATS: Single in-process NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - HookRecorder: Captures topic lifecycle notifications in order
//   - NewTestLogger: Logger writing to testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    vaulttest "github.com/kevin-dyer/mqtt-subscription-vault/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := vaulttest.StartEmbeddedNATS(t)
//	    rec := vaulttest.NewHookRecorder()
//	}
package testing
