// Package subvault provides a subscription vault: a registry of subscribers
// keyed by MQTT-style topic patterns.
//
// A vault answers one question quickly: which subscribers should receive a
// publication on a concrete topic? Patterns may contain the single-level
// wildcard "+" (exactly one segment) and the multi-level wildcard "#" (one or
// more trailing segments). The vault also reports when a topic gains its first
// subscriber and when it loses its last one, so a transport can maintain
// exactly one upstream subscription per distinct topic.
//
// # Quick Start
//
//	import "github.com/kevin-dyer/mqtt-subscription-vault"
//
//	v, err := subvault.New[string](nil, subvault.WithHooks(&subvault.Hooks{
//	    OnTopicAdded:   func(topic string) { log.Println("subscribe", topic) },
//	    OnTopicRemoved: func(topic string) { log.Println("unsubscribe", topic) },
//	}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v.Add("home/+/temperature", "thermostat")
//	v.Add("home/#", "logger")
//
//	v.FindMatches("home/kitchen/temperature") // [logger thermostat]
//
//	v.Remove("home/#", "logger") // fires OnTopicRemoved("home/#")
//
// # Matching Rules
//
// Topics and patterns are split on the delimiter ("/" by default); empty
// segments are preserved, so "a//b" has three segments. For a publication on
// topic T, a pattern P matches when, segment by segment:
//
//   - a literal segment of P equals the segment of T
//   - "+" in P consumes any one segment of T
//   - "#" in P consumes every remaining segment of T (at least one)
//
// Wildcard characters inside T itself carry no wildcard meaning: publishing
// on "a/+" matches the pattern "a/+" literally and never acts as a query.
//
// Results are ordered by traversal: at each level, "#" matches first, then
// "+" expansions, then the exact path. Duplicates are preserved, one entry
// per registration.
//
// # Custom Token Syntax
//
// The delimiter and wildcard tokens are configurable:
//
//	cfg := subvault.Config{Delimiter: ".", SingleLevelWildcard: "*", MultiLevelWildcard: ">"}
//	v, err := subvault.New[string](&cfg)
//
// # Concurrency
//
// A Vault performs no locking. Package bridge wraps one behind a mutex and
// drives NATS core subscriptions from its lifecycle hooks; package snapshot
// persists trees to a JetStream key-value bucket.
//
// # Observability
//
// Optional Logger and MetricsCollector implementations are accepted via
// WithLogger and WithMetrics. A Prometheus collector lives in
// internal/metrics; both default to no-ops.
package subvault
