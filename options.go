package subvault

// Option configures a Vault with optional dependencies.
type Option func(*vaultOptions)

// vaultOptions holds optional Vault configuration.
type vaultOptions struct {
	hooks       *Hooks
	metrics     MetricsCollector
	logger      Logger
	initialTree any // *Node[S], checked against the Vault's S in New
}

// WithHooks sets topic lifecycle hooks. Nil callbacks default to no-ops.
//
// Example:
//
//	hooks := &subvault.Hooks{
//	    OnTopicAdded:   func(topic string) { upstream.Subscribe(topic) },
//	    OnTopicRemoved: func(topic string) { upstream.Unsubscribe(topic) },
//	}
//	v, err := subvault.New[string](nil, subvault.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *vaultOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.NewRegistry(), "subvault")
//	v, err := subvault.New[string](nil, subvault.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *vaultOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	v, err := subvault.New[string](nil, subvault.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *vaultOptions) {
		o.logger = logger
	}
}

// WithInitialTree resumes the vault from a previously exported tree.
//
// The tree is copied. Importing it fires no OnTopicAdded notifications; a
// transport that needs to subscribe upstream for the resumed topics should
// walk Vault.Topics (see bridge.Bridge.Resume). The handle type of root must
// match the Vault's, otherwise New fails with ErrInvalidConfig.
//
// Example:
//
//	root, err := store.Load(ctx)
//	v, err := subvault.New[string](nil, subvault.WithInitialTree(root))
func WithInitialTree[S comparable](root *Node[S]) Option {
	return func(o *vaultOptions) {
		o.initialTree = root
	}
}
