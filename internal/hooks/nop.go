// Package hooks provides default topic lifecycle hooks.
package hooks

import "github.com/kevin-dyer/mqtt-subscription-vault/types"

// NopHooks implements every lifecycle callback as a no-op.
//
// This is the default used when no custom hooks are provided, so the vault
// can call each hook without nil checks.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(string) = (*NopHooks)(nil).OnTopicAdded
	_ func(string) = (*NopHooks)(nil).OnTopicRemoved
	_ func(string) = (*NopHooks)(nil).OnSubscriptionNotFound
)

// NewNop creates hooks that do nothing.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnTopicAdded:           h.OnTopicAdded,
		OnTopicRemoved:         h.OnTopicRemoved,
		OnSubscriptionNotFound: h.OnSubscriptionNotFound,
	}
}

// WithDefaults returns a copy of h where every nil callback is replaced by a no-op.
// A nil h yields NewNop().
func WithDefaults(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}

	if h.OnTopicAdded != nil {
		out.OnTopicAdded = h.OnTopicAdded
	}
	if h.OnTopicRemoved != nil {
		out.OnTopicRemoved = h.OnTopicRemoved
	}
	if h.OnSubscriptionNotFound != nil {
		out.OnSubscriptionNotFound = h.OnSubscriptionNotFound
	}

	return out
}

// OnTopicAdded is a no-op implementation.
func (h *NopHooks) OnTopicAdded(_ /* topic */ string) {}

// OnTopicRemoved is a no-op implementation.
func (h *NopHooks) OnTopicRemoved(_ /* topic */ string) {}

// OnSubscriptionNotFound is a no-op implementation.
func (h *NopHooks) OnSubscriptionNotFound(_ /* topic */ string) {}
