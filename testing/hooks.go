package testing

import (
	"slices"
	"sync"

	"github.com/kevin-dyer/mqtt-subscription-vault/types"
)

// HookEvent is one lifecycle notification captured by a HookRecorder.
type HookEvent struct {
	Kind  string // "added", "removed" or "not_found"
	Topic string
}

// HookRecorder captures lifecycle notifications in the order they fire.
//
// It is safe for concurrent use, so it can be shared with a bridge whose
// hooks run on NATS callback goroutines.
type HookRecorder struct {
	mu     sync.Mutex
	events []HookEvent
}

// NewHookRecorder creates an empty recorder.
func NewHookRecorder() *HookRecorder {
	return &HookRecorder{}
}

// Hooks returns hooks that append to the recorder.
//
// Example:
//
//	rec := vaulttest.NewHookRecorder()
//	v, _ := subvault.New[string](nil, subvault.WithHooks(rec.Hooks()))
//	v.Add("a/b", "s1")
//	require.Equal(t, []string{"a/b"}, rec.Added())
func (r *HookRecorder) Hooks() *types.Hooks {
	return &types.Hooks{
		OnTopicAdded:           func(topic string) { r.record("added", topic) },
		OnTopicRemoved:         func(topic string) { r.record("removed", topic) },
		OnSubscriptionNotFound: func(topic string) { r.record("not_found", topic) },
	}
}

// Events returns a copy of every captured event.
func (r *HookRecorder) Events() []HookEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.events)
}

// Added returns the topics passed to OnTopicAdded, in order.
func (r *HookRecorder) Added() []string {
	return r.topics("added")
}

// Removed returns the topics passed to OnTopicRemoved, in order.
func (r *HookRecorder) Removed() []string {
	return r.topics("removed")
}

// NotFound returns the topics passed to OnSubscriptionNotFound, in order.
func (r *HookRecorder) NotFound() []string {
	return r.topics("not_found")
}

// Reset discards captured events.
func (r *HookRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}

func (r *HookRecorder) record(kind, topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, HookEvent{Kind: kind, Topic: topic})
}

func (r *HookRecorder) topics(kind string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e.Topic)
		}
	}

	return out
}
