package subvault

import (
	"fmt"
	"time"

	"github.com/kevin-dyer/mqtt-subscription-vault/internal/hooks"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/logger"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/metrics"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/trie"
)

// Vault is a registry of subscribers keyed by topic patterns.
//
// It answers which subscribers match a published topic and reports topic
// lifecycle transitions through Hooks, so a transport can subscribe upstream
// exactly once per distinct topic.
//
// Vault is not safe for concurrent use. All methods run to completion and
// hooks are invoked in-line; callers running on several goroutines must
// serialize access themselves (package bridge does so with a mutex).
//
// S is the subscription handle type. Handles are compared with ==, so use
// pointers or small identity values rather than large structs.
type Vault[S comparable] struct {
	cfg     Config
	tree    *trie.Trie[S]
	topics  int
	hooks   Hooks
	metrics MetricsCollector
	logger  Logger
}

// New creates a new Vault.
//
// Parameters:
//   - cfg: Topic syntax configuration; nil means DefaultConfig(). Missing values are defaulted.
//   - opts: Optional configuration (hooks, metrics, logger, initial tree)
//
// Returns:
//   - *Vault[S]: Initialized vault
//   - error: Validation error if the configuration or initial tree is invalid
//
// Example:
//
//	v, err := subvault.New[string](nil, subvault.WithHooks(&subvault.Hooks{
//	    OnTopicAdded: func(topic string) { log.Println("first subscriber on", topic) },
//	}))
//	v.Add("sensors/+/temperature", "dashboard")
//	v.FindMatches("sensors/kitchen/temperature") // [dashboard]
func New[S comparable](cfg *Config, opts ...Option) (*Vault[S], error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	SetDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	options := &vaultOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	v := &Vault[S]{
		cfg:     c,
		tree:    trie.New[S](c.tokens()),
		hooks:   hooks.WithDefaults(options.hooks),
		metrics: metricsCollector,
		logger:  loggerInstance,
	}

	if options.initialTree != nil {
		root, ok := options.initialTree.(*Node[S])
		if !ok {
			return nil, fmt.Errorf("%w: initial tree is %T, want %T", ErrInvalidConfig, options.initialTree, (*Node[S])(nil))
		}
		v.tree.Import(root)
		v.topics = v.tree.Stats().Topics
		v.logger.Debug("initial tree imported", "topics", v.topics, "nodes", v.tree.Len())
	}
	v.recordGauges()

	return v, nil
}

// Config returns the effective configuration.
func (v *Vault[S]) Config() Config {
	return v.cfg
}

// Add registers sub at topic.
//
// Missing tree nodes along the topic's path are created. Registering the same
// handle twice at the same topic stores two entries. When the topic had no
// subscriptions before, OnTopicAdded(topic) is invoked exactly once.
//
// Malformed topics are accepted structurally: "" is a topic with one empty
// segment, and wildcard placement is not validated.
func (v *Vault[S]) Add(topic string, sub S) {
	created := v.tree.Add(topic, sub)
	v.metrics.RecordSubscriptionAdded(created)
	v.metrics.SetNodeCount(v.tree.Len())

	if !created {
		return
	}

	v.topics++
	v.metrics.SetTopicCount(v.topics)
	v.logger.Debug("topic added", "topic", topic)
	v.hooks.OnTopicAdded(topic)
}

// Remove removes one registration of sub at topic and prunes tree nodes left
// without children and subscriptions.
//
// If sub is not registered at topic, the SubscriptionNotFound diagnostic is
// reported through the logger, the OnSubscriptionNotFound hook and metrics,
// and the tree is left as it was. Whenever topic's node exists and holds no
// subscriptions once the removal was attempted, OnTopicRemoved(topic) is
// invoked after pruning, even if sub was not found there.
//
// Returns:
//   - bool: true if a registration was removed
func (v *Vault[S]) Remove(topic string, sub S) bool {
	res := v.tree.Remove(topic, sub)

	if res.Found {
		v.metrics.RecordSubscriptionRemoved(res.Emptied)
	} else {
		v.metrics.RecordSubscriptionNotFound()
		v.logger.Warn("subscription not found", "topic", topic, "error", ErrSubscriptionNotFound)
		v.hooks.OnSubscriptionNotFound(topic)
	}

	if res.Pruned > 0 {
		v.metrics.RecordNodesPruned(res.Pruned)
		v.metrics.SetNodeCount(v.tree.Len())
		v.logger.Debug("nodes pruned", "topic", topic, "count", res.Pruned)
	}

	if res.Emptied {
		if res.Found {
			v.topics--
			v.metrics.SetTopicCount(v.topics)
		}
		v.logger.Debug("topic removed", "topic", topic)
		v.hooks.OnTopicRemoved(topic)
	}

	return res.Found
}

// FindMatches returns the handles of every pattern matching topic.
//
// A single-level wildcard pattern segment matches exactly one topic segment; a
// multi-level wildcard matches one or more remaining segments. Order: shallower
// multi-level matches first, then deeper levels, the exact match last. A handle
// registered under several matching patterns is returned once per registration.
// Literal wildcard segments inside topic match only literally.
func (v *Vault[S]) FindMatches(topic string) []S {
	start := time.Now()
	matches := v.tree.FindMatches(topic)
	v.metrics.RecordMatch(len(matches), time.Since(start).Seconds())

	return matches
}

// Reset discards every registration. No lifecycle hook is invoked.
func (v *Vault[S]) Reset() {
	v.tree.Reset()
	v.topics = 0

	v.metrics.RecordReset()
	v.recordGauges()
	v.logger.Debug("vault reset")
}

// Subscriptions returns the handles registered exactly at topic, without
// wildcard expansion.
func (v *Vault[S]) Subscriptions(topic string) []S {
	return v.tree.Subscriptions(topic)
}

// Topics returns every topic holding at least one subscription, sorted.
func (v *Vault[S]) Topics() []string {
	return v.tree.Topics()
}

// Stats returns node, topic and registration counts.
func (v *Vault[S]) Stats() Stats {
	return v.tree.Stats()
}

// Snapshot returns a deep copy of the tree, suitable for WithInitialTree.
func (v *Vault[S]) Snapshot() *Node[S] {
	return v.tree.Export()
}

// Fingerprint returns a hash of the tree's paths and registrations.
//
// Equal trees have equal fingerprints, so it can be used to detect changes
// between snapshots without comparing them.
func (v *Vault[S]) Fingerprint() uint64 {
	return v.tree.Fingerprint()
}

func (v *Vault[S]) recordGauges() {
	v.metrics.SetTopicCount(v.topics)
	v.metrics.SetNodeCount(v.tree.Len())
}
