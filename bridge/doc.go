// Package bridge connects a subscription vault to NATS core subscriptions.
//
// A Bridge owns a Vault and keeps exactly one upstream NATS subscription per
// distinct topic pattern: the vault's OnTopicAdded transition subscribes, and
// OnTopicRemoved unsubscribes. Topic patterns map to NATS subjects by
// replacing the delimiter with ".", the single-level wildcard with "*" and the
// multi-level wildcard with ">", optionally under a subject prefix:
//
//	home/+/temperature  ->  mqtt.home.*.temperature   (prefix "mqtt")
//	home/#              ->  mqtt.home.>
//
// A message arriving on an upstream subscription for pattern P is delivered to
// every handle registered exactly at P. Overlapping patterns each hold their
// own upstream subscription, so NATS already delivers the message once per
// matching pattern; dispatching by exact pattern avoids delivering it twice.
//
// Route performs the complementary local fan-out through FindMatches without
// touching NATS.
//
// Example:
//
//	b, err := bridge.New[string](nc, nil, func(sub string, msg *bridge.Message) {
//	    log.Printf("%s <- %s: %s", sub, msg.Topic, msg.Data)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	err = b.Subscribe(ctx, "home/+/temperature", "thermostat")
package bridge
