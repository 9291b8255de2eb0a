package types

// Hooks defines callbacks for topic lifecycle events.
//
// All hooks are optional. Unlike most callbacks in this module they are called
// synchronously and in-line from Vault.Add and Vault.Remove, so a slow hook
// directly blocks the caller. A hook must not call back into the same Vault.
//
// Lifecycle guarantees:
//   - OnTopicAdded fires exactly once per topic transition from zero to one-or-more subscribers
//   - OnTopicRemoved fires exactly once per topic transition from one-or-more to zero subscribers
//   - Neither fires when a tree is imported or when the vault is reset
//
// Example:
//
//	hooks := &subvault.Hooks{
//	    OnTopicAdded: func(topic string) {
//	        upstream.Subscribe(topic)
//	    },
//	    OnTopicRemoved: func(topic string) {
//	        upstream.Unsubscribe(topic)
//	    },
//	}
type Hooks struct {
	// OnTopicAdded is called when the first subscriber registers at topic.
	OnTopicAdded func(topic string)

	// OnTopicRemoved is called when the last subscriber leaves topic.
	OnTopicRemoved func(topic string)

	// OnSubscriptionNotFound is called when Remove is asked to remove a handle
	// that is not registered at topic.
	OnSubscriptionNotFound func(topic string)
}
