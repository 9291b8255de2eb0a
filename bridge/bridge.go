package bridge

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/puzpuzpuz/xsync/v4"

	subvault "github.com/kevin-dyer/mqtt-subscription-vault"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/hooks"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/logger"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/metrics"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/natsutil"
)

// Message is a publication delivered to a handle.
type Message struct {
	// Pattern is the pattern the handle registered. Empty for Route deliveries.
	Pattern string

	// Topic is the concrete topic of the publication.
	Topic string

	// Subject is the NATS subject the message arrived on. Empty for Route deliveries.
	Subject string

	Data   []byte
	Header nats.Header
}

// Handler receives messages for a handle.
//
// Handlers run on NATS delivery goroutines (or the Route caller's goroutine)
// without the bridge lock held, so they may call Subscribe and Unsubscribe.
type Handler[S comparable] func(sub S, msg *Message)

type transition struct {
	topic string
	added bool
}

// Bridge keeps one upstream NATS subscription per distinct topic registered
// in its vault. It is safe for concurrent use.
type Bridge[S comparable] struct {
	conn     *nats.Conn
	cfg      subvault.Config
	handler  Handler[S]
	mapper   subjectMapper
	observer subvault.Hooks
	logger   subvault.Logger
	metrics  subvault.MetricsCollector

	mu      sync.Mutex
	vault   *subvault.Vault[S]
	pending []transition

	upstream *xsync.Map[string, *nats.Subscription] // topic -> subscription
	closed   atomic.Bool
}

// New creates a bridge over conn.
//
// Parameters:
//   - conn: NATS connection (required)
//   - cfg: Vault and bridge configuration; nil means subvault.DefaultConfig()
//   - handler: Receives every delivered message (required)
//   - opts: Optional configuration (observer hooks, metrics, logger, vault options)
//
// Returns:
//   - *Bridge[S]: Initialized bridge with no upstream subscriptions
//   - error: ErrNATSConnectionRequired, ErrHandlerRequired or a configuration error
func New[S comparable](conn *nats.Conn, cfg *subvault.Config, handler Handler[S], opts ...Option) (*Bridge[S], error) {
	if conn == nil {
		return nil, subvault.ErrNATSConnectionRequired
	}
	if handler == nil {
		return nil, subvault.ErrHandlerRequired
	}

	var c subvault.Config
	if cfg != nil {
		c = *cfg
	}
	subvault.SetDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	mapper, err := newSubjectMapper(&c)
	if err != nil {
		return nil, err
	}

	options := &bridgeOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	b := &Bridge[S]{
		conn:     conn,
		cfg:      c,
		handler:  handler,
		mapper:   mapper,
		observer: hooks.WithDefaults(options.hooks),
		logger:   loggerInstance,
		metrics:  metricsCollector,
		upstream: xsync.NewMap[string, *nats.Subscription](),
	}

	// Transitions are queued by the hooks and applied after the vault call
	// returns, so upstream errors can be returned to the caller.
	vaultOpts := append(slices.Clone(options.vaultOptions),
		subvault.WithLogger(loggerInstance),
		subvault.WithMetrics(metricsCollector),
		subvault.WithHooks(&subvault.Hooks{
			OnTopicAdded: func(topic string) {
				b.pending = append(b.pending, transition{topic: topic, added: true})
			},
			OnTopicRemoved: func(topic string) {
				b.pending = append(b.pending, transition{topic: topic, added: false})
			},
			OnSubscriptionNotFound: b.observer.OnSubscriptionNotFound,
		}),
	)

	b.vault, err = subvault.New[S](&c, vaultOpts...)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Subscribe registers sub at topic, subscribing upstream if topic is new.
//
// If the upstream subscription fails after all retries, the registration is
// rolled back and the error returned. A topic with no valid subject mapping
// (ErrInvalidSubject) stays registered locally and is only reachable by Route.
//
// Returns:
//   - error: ErrBridgeClosed, a wrapped ErrInvalidSubject, or an upstream error
func (b *Bridge[S]) Subscribe(ctx context.Context, topic string, sub S) error {
	if b.closed.Load() {
		return subvault.ErrBridgeClosed
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed.Load() {
		return subvault.ErrBridgeClosed
	}

	b.vault.Add(topic, sub)

	err := b.applyPending(ctx)
	if err != nil && !errors.Is(err, subvault.ErrInvalidSubject) {
		b.vault.Remove(topic, sub)
		_ = b.applyPending(ctx) // topic was never bridged; observers are not told
	}

	return err
}

// Unsubscribe removes one registration of sub at topic, unsubscribing
// upstream when it was the topic's last one.
//
// Returns:
//   - bool: true if a registration was removed
//   - error: ErrBridgeClosed or the upstream unsubscribe error
func (b *Bridge[S]) Unsubscribe(topic string, sub S) (bool, error) {
	if b.closed.Load() {
		return false, subvault.ErrBridgeClosed
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed.Load() {
		return false, subvault.ErrBridgeClosed
	}

	removed := b.vault.Remove(topic, sub)

	return removed, b.applyPending(context.Background())
}

// Publish publishes data upstream on the subject of a literal topic.
func (b *Bridge[S]) Publish(topic string, data []byte) error {
	if b.closed.Load() {
		return subvault.ErrBridgeClosed
	}

	subject, err := b.mapper.subject(topic, false)
	if err != nil {
		return err
	}

	if err := b.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}

// Route delivers data to every handle whose pattern matches topic, without
// going through NATS.
//
// Returns:
//   - int: Number of deliveries
func (b *Bridge[S]) Route(topic string, data []byte) int {
	if b.closed.Load() {
		return 0
	}

	b.mu.Lock()
	subs := b.vault.FindMatches(topic)
	b.mu.Unlock()

	b.deliver(subs, &Message{Topic: topic, Data: data})

	return len(subs)
}

// Resume subscribes upstream to every registered topic that has no upstream
// subscription yet, typically after subvault.WithInitialTree.
//
// Returns:
//   - error: Joined errors of the topics that could not be subscribed
func (b *Bridge[S]) Resume(ctx context.Context) error {
	if b.closed.Load() {
		return subvault.ErrBridgeClosed
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed.Load() {
		return subvault.ErrBridgeClosed
	}

	var errs []error
	for _, topic := range b.vault.Topics() {
		if _, ok := b.upstream.Load(topic); ok {
			continue
		}
		if err := b.subscribeUpstream(ctx, topic); err != nil {
			errs = append(errs, err)
			continue
		}
		b.observer.OnTopicAdded(topic)
	}

	b.logger.Info("bridge resumed", "topics", b.upstream.Size(), "failed", len(errs))

	return errors.Join(errs...)
}

// Subscriptions returns the handles registered exactly at topic.
func (b *Bridge[S]) Subscriptions(topic string) []S {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.vault.Subscriptions(topic)
}

// ActiveTopics returns the topics currently subscribed upstream, sorted.
func (b *Bridge[S]) ActiveTopics() []string {
	topics := make([]string, 0, b.upstream.Size())
	b.upstream.Range(func(topic string, _ *nats.Subscription) bool {
		topics = append(topics, topic)
		return true
	})
	slices.Sort(topics)

	return topics
}

// Snapshot returns a copy of the vault's tree together with its fingerprint.
func (b *Bridge[S]) Snapshot() (*subvault.Node[S], uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.vault.Snapshot(), b.vault.Fingerprint()
}

// Stats returns the vault's node, topic and registration counts.
func (b *Bridge[S]) Stats() subvault.Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.vault.Stats()
}

// Close unsubscribes every upstream subscription. The vault's registrations
// are kept but the bridge rejects further operations. Closing twice is a no-op.
//
// Returns:
//   - error: First upstream unsubscribe error, if any
func (b *Bridge[S]) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	b.upstream.Range(func(topic string, sub *nats.Subscription) bool {
		if err := sub.Unsubscribe(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to unsubscribe from %s: %w", topic, err)
		}
		b.upstream.Delete(topic)

		return true
	})

	b.logger.Info("bridge closed")

	return firstErr
}

// applyPending acts on the transitions queued by the vault hooks. Must be
// called with b.mu held.
//
// Observers only see topics that were bridged: OnTopicAdded after a
// successful upstream subscribe, OnTopicRemoved when that subscription is
// dropped.
func (b *Bridge[S]) applyPending(ctx context.Context) error {
	pending := b.pending
	b.pending = nil

	var errs []error
	for _, tr := range pending {
		if tr.added {
			if err := b.subscribeUpstream(ctx, tr.topic); err != nil {
				errs = append(errs, err)
				continue
			}
			b.observer.OnTopicAdded(tr.topic)

			continue
		}

		bridged, err := b.unsubscribeUpstream(tr.topic)
		if err != nil {
			errs = append(errs, err)
		}
		if bridged {
			b.observer.OnTopicRemoved(tr.topic)
		}
	}

	return errors.Join(errs...)
}

func (b *Bridge[S]) subscribeUpstream(ctx context.Context, topic string) error {
	subject, err := b.mapper.subject(topic, true)
	if err != nil {
		b.logger.Warn("topic has no upstream subject", "topic", topic, "error", err)
		return err
	}

	var sub *nats.Subscription
	var delay time.Duration
	maxRetries := b.cfg.Bridge.MaxRetries
	base := b.cfg.Bridge.RetryBackoff
	attempts := 0

	for attempts <= maxRetries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		attempts++
		sub, err = b.conn.Subscribe(subject, b.dispatch(topic))
		if err == nil {
			// Round-trip so the server has registered interest before returning.
			err = b.conn.FlushTimeout(b.cfg.Bridge.FlushTimeout)
			if err == nil {
				break
			}
			_ = sub.Unsubscribe()
		}

		if !natsutil.IsRetryable(err) || attempts > maxRetries {
			break
		}

		delay = jitterBackoff(delay, base, backoffMultiplier, base*backoffCapFactor, nil)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			// Continue to next attempt
		}
	}

	b.metrics.RecordUpstreamSubscribe(err == nil)

	if err != nil {
		b.logger.Error("upstream subscribe failed", "topic", topic, "subject", subject, "error", err)
		return fmt.Errorf("failed to subscribe to %s after %d attempts: %w", subject, attempts, err)
	}

	b.upstream.Store(topic, sub)
	b.logger.Debug("upstream subscribed", "topic", topic, "subject", subject)

	return nil
}

// unsubscribeUpstream drops the upstream subscription of topic, reporting
// whether one existed.
func (b *Bridge[S]) unsubscribeUpstream(topic string) (bool, error) {
	sub, ok := b.upstream.LoadAndDelete(topic)
	if !ok {
		return false, nil
	}

	err := sub.Unsubscribe()
	b.metrics.RecordUpstreamUnsubscribe(err == nil)

	if err != nil {
		b.logger.Error("upstream unsubscribe failed", "topic", topic, "subject", sub.Subject, "error", err)
		return true, fmt.Errorf("failed to unsubscribe from %s: %w", sub.Subject, err)
	}

	b.logger.Debug("upstream unsubscribed", "topic", topic, "subject", sub.Subject)

	return true, nil
}

// dispatch returns the NATS handler for the upstream subscription of pattern.
func (b *Bridge[S]) dispatch(pattern string) nats.MsgHandler {
	return func(msg *nats.Msg) {
		b.mu.Lock()
		subs := b.vault.Subscriptions(pattern)
		b.mu.Unlock()

		b.deliver(subs, &Message{
			Pattern: pattern,
			Topic:   b.mapper.topic(msg.Subject),
			Subject: msg.Subject,
			Data:    msg.Data,
			Header:  msg.Header,
		})
	}
}

func (b *Bridge[S]) deliver(subs []S, msg *Message) {
	for _, sub := range subs {
		b.handler(sub, msg)
	}
	b.metrics.RecordDelivery(len(subs))
}
