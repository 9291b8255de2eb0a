// Package snapshot persists subscription trees to a NATS JetStream key-value bucket.
//
// A Store writes one JSON document per key holding the tree and its
// fingerprint. Saving a tree whose fingerprint equals the last saved or loaded
// one is skipped, so callers can save on a timer without churning revisions.
//
// Example:
//
//	store, err := snapshot.New[string](ctx, js, cfg.Snapshot)
//	root, err := store.Load(ctx)
//	if errors.Is(err, subvault.ErrSnapshotNotFound) {
//	    root = nil
//	}
//	v, err := subvault.New[string](&cfg, subvault.WithInitialTree(root))
//	...
//	_, err = store.Save(ctx, v.Snapshot(), v.Fingerprint())
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	subvault "github.com/kevin-dyer/mqtt-subscription-vault"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/kvutil"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/logger"
)

// Document is the stored JSON payload.
type Document[S comparable] struct {
	Fingerprint uint64            `json:"fingerprint"`
	SavedAt     time.Time         `json:"savedAt"`
	Tree        *subvault.Node[S] `json:"tree"`
}

// Store saves and loads subscription trees. It is safe for concurrent use.
//
// S must be JSON-encodable.
type Store[S comparable] struct {
	kv     jetstream.KeyValue
	key    string
	logger subvault.Logger

	mu       sync.Mutex
	lastFP   uint64
	hasLast  bool
	revision uint64
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	logger subvault.Logger
}

// WithLogger sets a logger.
func WithLogger(logger subvault.Logger) Option {
	return func(o *storeOptions) {
		o.logger = logger
	}
}

// New opens the snapshot bucket, creating it if needed.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - js: JetStream handle (required)
//   - cfg: Bucket, key and history settings; missing values are defaulted
//   - opts: Optional configuration
//
// Returns:
//   - *Store[S]: Store bound to cfg.Bucket and cfg.Key
//   - error: ErrJetStreamRequired, a configuration error or the bucket error
func New[S comparable](ctx context.Context, js jetstream.JetStream, cfg subvault.SnapshotConfig, opts ...Option) (*Store[S], error) {
	if js == nil {
		return nil, subvault.ErrJetStreamRequired
	}

	full := subvault.Config{Snapshot: cfg}
	subvault.SetDefaults(&full)
	if err := full.Validate(); err != nil {
		return nil, err
	}
	cfg = full.Snapshot

	options := &storeOptions{}
	for _, opt := range opts {
		opt(options)
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	kv, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{
		Bucket:      cfg.Bucket,
		Description: "subscription vault snapshots",
		History:     uint8(cfg.History), //nolint:gosec // validated to [1, 64]
	}, cfg.MaxRetries)
	if err != nil {
		return nil, err
	}

	return &Store[S]{kv: kv, key: cfg.Key, logger: loggerInstance}, nil
}

// Save stores root unless fp equals the fingerprint of the last tree saved or
// loaded by this Store.
//
// Returns:
//   - bool: true if a new revision was written
//   - error: Encoding or KV error
func (s *Store[S]) Save(ctx context.Context, root *subvault.Node[S], fp uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasLast && s.lastFP == fp {
		return false, nil
	}

	if root == nil {
		root = subvault.NewNode[S]()
	}

	data, err := json.Marshal(Document[S]{Fingerprint: fp, SavedAt: time.Now().UTC(), Tree: root})
	if err != nil {
		return false, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	rev, err := s.kv.Put(ctx, s.key, data)
	if err != nil {
		return false, fmt.Errorf("failed to store snapshot %s: %w", s.key, err)
	}

	s.lastFP, s.hasLast, s.revision = fp, true, rev
	s.logger.Debug("snapshot saved", "key", s.key, "revision", rev, "nodes", root.Count(), "bytes", len(data))

	return true, nil
}

// Load returns the latest stored tree.
//
// Returns:
//   - *subvault.Node[S]: Stored tree
//   - error: ErrSnapshotNotFound if nothing is stored, or a decoding/KV error
func (s *Store[S]) Load(ctx context.Context) (*subvault.Node[S], error) {
	doc, err := s.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Tree, nil
}

// LoadDocument is like Load but returns the whole stored document.
func (s *Store[S]) LoadDocument(ctx context.Context) (*Document[S], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if kvutil.IsKeyMissing(err) {
			return nil, subvault.ErrSnapshotNotFound
		}

		return nil, fmt.Errorf("failed to read snapshot %s: %w", s.key, err)
	}

	var doc Document[S]
	if err := json.Unmarshal(entry.Value(), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", s.key, err)
	}
	if doc.Tree == nil {
		doc.Tree = subvault.NewNode[S]()
	}

	s.lastFP, s.hasLast, s.revision = doc.Fingerprint, true, entry.Revision()
	s.logger.Debug("snapshot loaded", "key", s.key, "revision", entry.Revision(), "nodes", doc.Tree.Count())

	return &doc, nil
}

// Delete removes the stored tree. Deleting a missing snapshot is not an error.
func (s *Store[S]) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, s.key); err != nil && !kvutil.IsKeyMissing(err) {
		return fmt.Errorf("failed to delete snapshot %s: %w", s.key, err)
	}

	s.lastFP, s.hasLast, s.revision = 0, false, 0

	return nil
}

// Revision returns the KV revision of the last snapshot saved or loaded, or 0.
func (s *Store[S]) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.revision
}
