// Package kvutil provides helpers for NATS JetStream key-value buckets.
package kvutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// EnsureBucket creates the KV bucket described by config, or opens it if it
// already exists.
//
// Several processes sharing a bucket may race to create it; losing the race
// surfaces as jetstream.ErrBucketExists and is resolved by opening the bucket.
// Other failures are retried with exponential backoff (10ms, 20ms, 40ms...).
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - js: JetStream handle
//   - config: KV bucket configuration
//   - attempts: Maximum number of attempts (values <= 0 mean 3)
//
// Returns:
//   - jetstream.KeyValue: The KV bucket
//   - error: Last error once all attempts are exhausted, or the context error
//
// Example:
//
//	kv, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{
//	    Bucket:  "subvault-snapshots",
//	    History: 5,
//	}, 3)
func EnsureBucket(
	ctx context.Context,
	js jetstream.JetStream,
	config jetstream.KeyValueConfig,
	attempts int,
) (jetstream.KeyValue, error) {
	if attempts <= 0 {
		attempts = 3
	}

	var lastErr error

	for attempt := range attempts {
		kv, err := js.CreateKeyValue(ctx, config)
		if err == nil {
			return kv, nil
		}

		if errors.Is(err, jetstream.ErrBucketExists) {
			kv, err = js.KeyValue(ctx, config.Bucket)
			if err == nil {
				return kv, nil
			}
			lastErr = fmt.Errorf("bucket exists but failed to open: %w", err)
		} else {
			lastErr = err
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("context cancelled during KV bucket creation: %w", ctx.Err())
		}

		if attempt < attempts-1 {
			backoff := time.Duration(1<<uint(attempt)) * 10 * time.Millisecond //nolint:gosec // attempt is small
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to create/open KV bucket %s after %d attempts: %w",
		config.Bucket, attempts, lastErr)
}

// IsKeyMissing reports whether err means the key has no current value, either
// because it was never written or because it was deleted or purged.
func IsKeyMissing(err error) bool {
	return errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted)
}
