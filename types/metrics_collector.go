package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The vault itself is single-threaded, but the bridge records from NATS
// delivery goroutines, so implementations must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	VaultMetrics
	BridgeMetrics
}

// VaultMetrics defines metrics for subscription tree operations.
type VaultMetrics interface {
	// RecordSubscriptionAdded records a successful Add.
	//
	// Parameters:
	//   - topicCreated: true if the topic went from zero to one subscriber
	RecordSubscriptionAdded(topicCreated bool)

	// RecordSubscriptionRemoved records a successful Remove.
	//
	// Parameters:
	//   - topicRemoved: true if the topic went from one-or-more to zero subscribers
	RecordSubscriptionRemoved(topicRemoved bool)

	// RecordSubscriptionNotFound records a Remove of an unregistered handle.
	RecordSubscriptionNotFound()

	// RecordMatch records a FindMatches lookup.
	//
	// Parameters:
	//   - matches: Number of handles returned
	//   - duration: Lookup time in seconds
	RecordMatch(matches int, duration float64)

	// RecordNodesPruned records the number of nodes detached by one Remove.
	RecordNodesPruned(count int)

	// SetTopicCount sets the number of topics holding subscriptions (gauge).
	SetTopicCount(count int)

	// SetNodeCount sets the number of non-root nodes in the tree (gauge).
	SetNodeCount(count int)

	// RecordReset records a Reset call.
	RecordReset()
}

// BridgeMetrics defines metrics for the upstream NATS bridge.
type BridgeMetrics interface {
	// RecordUpstreamSubscribe records an upstream subscribe attempt outcome.
	RecordUpstreamSubscribe(success bool)

	// RecordUpstreamUnsubscribe records an upstream unsubscribe attempt outcome.
	RecordUpstreamUnsubscribe(success bool)

	// RecordDelivery records how many local handlers received one message.
	RecordDelivery(count int)
}
