// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/kevin-dyer/mqtt-subscription-vault/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default when no collector is configured.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	v, _ := subvault.New[string](nil, subvault.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// VaultMetrics implementation

// RecordSubscriptionAdded discards the add metric.
func (n *NopMetrics) RecordSubscriptionAdded(_ /* topicCreated */ bool) {
	// No-op
}

// RecordSubscriptionRemoved discards the remove metric.
func (n *NopMetrics) RecordSubscriptionRemoved(_ /* topicRemoved */ bool) {
	// No-op
}

// RecordSubscriptionNotFound discards the not-found diagnostic metric.
func (n *NopMetrics) RecordSubscriptionNotFound() {
	// No-op
}

// RecordMatch discards the match metric.
func (n *NopMetrics) RecordMatch(_ /* matches */ int, _ /* duration */ float64) {
	// No-op
}

// RecordNodesPruned discards the pruning metric.
func (n *NopMetrics) RecordNodesPruned(_ /* count */ int) {
	// No-op
}

// SetTopicCount discards the topic gauge.
func (n *NopMetrics) SetTopicCount(_ /* count */ int) {
	// No-op
}

// SetNodeCount discards the node gauge.
func (n *NopMetrics) SetNodeCount(_ /* count */ int) {
	// No-op
}

// RecordReset discards the reset metric.
func (n *NopMetrics) RecordReset() {
	// No-op
}

// BridgeMetrics implementation

// RecordUpstreamSubscribe discards the upstream subscribe metric.
func (n *NopMetrics) RecordUpstreamSubscribe(_ /* success */ bool) {
	// No-op
}

// RecordUpstreamUnsubscribe discards the upstream unsubscribe metric.
func (n *NopMetrics) RecordUpstreamUnsubscribe(_ /* success */ bool) {
	// No-op
}

// RecordDelivery discards the delivery metric.
func (n *NopMetrics) RecordDelivery(_ /* count */ int) {
	// No-op
}
