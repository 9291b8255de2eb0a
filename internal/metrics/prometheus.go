package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kevin-dyer/mqtt-subscription-vault/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector never panics on duplicate registration by itself.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Vault metrics
	subscriptionsAdded   *prometheus.CounterVec
	subscriptionsRemoved *prometheus.CounterVec
	notFound             prometheus.Counter
	matchLatency         prometheus.Histogram
	matchResults         prometheus.Histogram
	nodesPruned          prometheus.Counter
	topics               prometheus.Gauge
	nodes                prometheus.Gauge
	resets               prometheus.Counter

	// Bridge metrics
	upstreamOps *prometheus.CounterVec
	deliveries  prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "subvault" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "subvault"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.subscriptionsAdded = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "vault",
			Name:      "subscriptions_added_total",
			Help:      "Total subscriptions added, by whether the add created the topic.",
		}, []string{"topic_created"})

		p.subscriptionsRemoved = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "vault",
			Name:      "subscriptions_removed_total",
			Help:      "Total subscriptions removed, by whether the removal emptied the topic.",
		}, []string{"topic_removed"})

		p.notFound = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "vault",
			Name:      "subscription_not_found_total",
			Help:      "Total removals of handles that were not registered at the topic.",
		})

		p.matchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "vault",
			Name:      "match_duration_seconds",
			Help:      "Latency of FindMatches lookups in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs .. ~0.26s
		})

		p.matchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "vault",
			Name:      "match_results",
			Help:      "Number of handles returned per FindMatches lookup.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		})

		p.nodesPruned = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "vault",
			Name:      "nodes_pruned_total",
			Help:      "Total tree nodes detached by pruning.",
		})

		p.topics = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "vault",
			Name:      "topics",
			Help:      "Current number of topics holding at least one subscription.",
		})

		p.nodes = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "vault",
			Name:      "nodes",
			Help:      "Current number of tree nodes, excluding the root.",
		})

		p.resets = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "vault",
			Name:      "resets_total",
			Help:      "Total Reset calls.",
		})

		p.upstreamOps = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "bridge",
			Name:      "upstream_operations_total",
			Help:      "Upstream subscribe/unsubscribe outcomes.",
		}, []string{"op", "result"})

		p.deliveries = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "bridge",
			Name:      "deliveries_per_message",
			Help:      "Local handler invocations per received message.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		})

		p.reg.MustRegister(
			p.subscriptionsAdded,
			p.subscriptionsRemoved,
			p.notFound,
			p.matchLatency,
			p.matchResults,
			p.nodesPruned,
			p.topics,
			p.nodes,
			p.resets,
			p.upstreamOps,
			p.deliveries,
		)
	})
}

func result(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

// VaultMetrics implementation

// RecordSubscriptionAdded increments the add counter.
func (p *PrometheusCollector) RecordSubscriptionAdded(topicCreated bool) {
	p.ensureRegistered()
	p.subscriptionsAdded.WithLabelValues(strconv.FormatBool(topicCreated)).Inc()
}

// RecordSubscriptionRemoved increments the remove counter.
func (p *PrometheusCollector) RecordSubscriptionRemoved(topicRemoved bool) {
	p.ensureRegistered()
	p.subscriptionsRemoved.WithLabelValues(strconv.FormatBool(topicRemoved)).Inc()
}

// RecordSubscriptionNotFound increments the not-found counter.
func (p *PrometheusCollector) RecordSubscriptionNotFound() {
	p.ensureRegistered()
	p.notFound.Inc()
}

// RecordMatch observes lookup latency and result size.
func (p *PrometheusCollector) RecordMatch(matches int, duration float64) {
	p.ensureRegistered()
	p.matchLatency.Observe(duration)
	p.matchResults.Observe(float64(matches))
}

// RecordNodesPruned adds count to the pruned-node counter.
func (p *PrometheusCollector) RecordNodesPruned(count int) {
	if count <= 0 {
		return
	}
	p.ensureRegistered()
	p.nodesPruned.Add(float64(count))
}

// SetTopicCount sets the topic gauge.
func (p *PrometheusCollector) SetTopicCount(count int) {
	p.ensureRegistered()
	p.topics.Set(float64(count))
}

// SetNodeCount sets the node gauge.
func (p *PrometheusCollector) SetNodeCount(count int) {
	p.ensureRegistered()
	p.nodes.Set(float64(count))
}

// RecordReset increments the reset counter.
func (p *PrometheusCollector) RecordReset() {
	p.ensureRegistered()
	p.resets.Inc()
}

// BridgeMetrics implementation

// RecordUpstreamSubscribe records an upstream subscribe outcome.
func (p *PrometheusCollector) RecordUpstreamSubscribe(success bool) {
	p.ensureRegistered()
	p.upstreamOps.WithLabelValues("subscribe", result(success)).Inc()
}

// RecordUpstreamUnsubscribe records an upstream unsubscribe outcome.
func (p *PrometheusCollector) RecordUpstreamUnsubscribe(success bool) {
	p.ensureRegistered()
	p.upstreamOps.WithLabelValues("unsubscribe", result(success)).Inc()
}

// RecordDelivery observes local deliveries for one message.
func (p *PrometheusCollector) RecordDelivery(count int) {
	p.ensureRegistered()
	p.deliveries.Observe(float64(count))
}
