package bridge

import (
	subvault "github.com/kevin-dyer/mqtt-subscription-vault"
)

// Option configures a Bridge with optional dependencies.
type Option func(*bridgeOptions)

type bridgeOptions struct {
	hooks        *subvault.Hooks
	metrics      subvault.MetricsCollector
	logger       subvault.Logger
	vaultOptions []subvault.Option
}

// WithHooks sets observer hooks. OnTopicAdded is invoked once a topic's
// upstream subscription is in place (including topics brought up by Resume),
// OnTopicRemoved once it has been dropped. Topics that were never bridged are
// not reported.
func WithHooks(hooks *subvault.Hooks) Option {
	return func(o *bridgeOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector shared by the bridge and its vault.
func WithMetrics(metrics subvault.MetricsCollector) Option {
	return func(o *bridgeOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger shared by the bridge and its vault.
func WithLogger(logger subvault.Logger) Option {
	return func(o *bridgeOptions) {
		o.logger = logger
	}
}

// WithVaultOptions passes options to the underlying vault, such as
// subvault.WithInitialTree. Hooks set this way are replaced by the bridge's
// own; use WithHooks to observe transitions.
//
// Example:
//
//	b, err := bridge.New[string](nc, &cfg, handler,
//	    bridge.WithVaultOptions(subvault.WithInitialTree(root)))
//	err = b.Resume(ctx)
func WithVaultOptions(opts ...subvault.Option) Option {
	return func(o *bridgeOptions) {
		o.vaultOptions = append(o.vaultOptions, opts...)
	}
}
