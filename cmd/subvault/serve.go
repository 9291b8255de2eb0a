package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	subvault "github.com/kevin-dyer/mqtt-subscription-vault"
	"github.com/kevin-dyer/mqtt-subscription-vault/bridge"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/metrics"
	"github.com/kevin-dyer/mqtt-subscription-vault/snapshot"
)

// ServeCmd bridges topic patterns to NATS, printing every delivered message.
//
// With --snapshot the registrations are resumed from, and periodically saved
// to, the JetStream KV bucket configured under "snapshot".
type ServeCmd struct {
	NATS     string        `long:"nats" default:"nats://127.0.0.1:4222" description:"NATS server URL"`
	Metrics  string        `long:"metrics" default:":9090" description:"Prometheus listen address (empty disables)"`
	Topics   []string      `long:"topic" description:"Topic pattern to subscribe (repeatable)"`
	Handle   string        `long:"handle" default:"cli" description:"Handle registered for every --topic"`
	Snapshot bool          `long:"snapshot" description:"Resume from and save to the JetStream snapshot store"`
	Interval time.Duration `long:"save-interval" default:"30s" description:"Snapshot save interval"`
}

func (c *ServeCmd) Execute(_ []string) error {
	if c.Interval <= 0 {
		return fmt.Errorf("--save-interval must be positive, got %s", c.Interval)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	nc, err := nats.Connect(c.NATS, nats.Name("subvault"))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.NATS, err)
	}
	defer nc.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewPrometheus(reg, "subvault")

	var store *snapshot.Store[string]
	var vaultOpts []subvault.Option
	if c.Snapshot {
		js, err := jetstream.New(nc)
		if err != nil {
			return fmt.Errorf("failed to get JetStream context: %w", err)
		}

		store, err = snapshot.New[string](ctx, js, cfg.Snapshot, snapshot.WithLogger(log))
		if err != nil {
			return err
		}

		root, err := store.Load(ctx)
		switch {
		case err == nil:
			vaultOpts = append(vaultOpts, subvault.WithInitialTree(root))
		case !errors.Is(err, subvault.ErrSnapshotNotFound):
			return err
		}
	}

	b, err := bridge.New[string](nc, &cfg, c.print,
		bridge.WithLogger(log),
		bridge.WithMetrics(collector),
		bridge.WithVaultOptions(vaultOpts...),
	)
	if err != nil {
		return err
	}
	defer func() { _ = b.Close() }()

	if err := b.Resume(ctx); err != nil {
		log.Warn("some resumed topics are not bridged", "error", err)
	}

	if err := subscribeTopics(ctx, b, c.Topics, c.Handle); err != nil {
		return err
	}

	if c.Metrics != "" {
		srv := &http.Server{
			Addr:              c.Metrics,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", "error", err)
			}
		}()
		defer func() { _ = srv.Close() }()
	}

	log.Info("subvault serving", "nats", c.NATS, "topics", b.ActiveTopics(), "metrics", c.Metrics)

	if store == nil {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.save(ctx, store, b, log)
		case <-ctx.Done():
			// Parent context is done; save with a fresh deadline.
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			c.save(saveCtx, store, b, log)
			cancel()

			return nil
		}
	}
}

// subscribeTopics registers handle at every topic that does not already hold
// it, so a tree resumed from a snapshot does not accumulate duplicates.
func subscribeTopics(ctx context.Context, b *bridge.Bridge[string], topics []string, handle string) error {
	for _, topic := range topics {
		if slices.Contains(b.Subscriptions(topic), handle) {
			continue
		}
		if err := b.Subscribe(ctx, topic, handle); err != nil {
			return err
		}
	}

	return nil
}

func (c *ServeCmd) print(sub string, msg *bridge.Message) {
	fmt.Fprintf(stdout, "%s\t%s\t%s\n", sub, msg.Topic, msg.Data)
}

func (c *ServeCmd) save(ctx context.Context, store *snapshot.Store[string], b *bridge.Bridge[string], log subvault.Logger) {
	root, fp := b.Snapshot()

	saved, err := store.Save(ctx, root, fp)
	if err != nil {
		log.Error("snapshot save failed", "error", err)
		return
	}
	if saved {
		log.Info("snapshot saved", "revision", store.Revision())
	}
}

