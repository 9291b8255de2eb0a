package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kevin-dyer/mqtt-subscription-vault/types"
)

func TestNewNop(t *testing.T) {
	m := NewNop()

	require.NotNil(t, m)
	require.IsType(t, &NopMetrics{}, m)
}

func TestNopMetrics_AllMethods(t *testing.T) {
	var m types.MetricsCollector = NewNop()

	require.NotPanics(t, func() {
		m.RecordSubscriptionAdded(true)
		m.RecordSubscriptionRemoved(false)
		m.RecordSubscriptionNotFound()
		m.RecordMatch(3, 0.0001)
		m.RecordNodesPruned(2)
		m.SetTopicCount(10)
		m.SetNodeCount(-1)
		m.RecordReset()
		m.RecordUpstreamSubscribe(false)
		m.RecordUpstreamUnsubscribe(true)
		m.RecordDelivery(0)
	})
}
