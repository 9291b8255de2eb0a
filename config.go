package subvault

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kevin-dyer/mqtt-subscription-vault/internal/trie"
)

// BridgeConfig configures the upstream NATS bridge (see package bridge).
type BridgeConfig struct {
	// SubjectPrefix is prepended, followed by ".", to every upstream subject.
	// Empty means topics map to subjects without a prefix.
	SubjectPrefix string `yaml:"subjectPrefix"`

	// MaxRetries is the number of additional upstream subscribe attempts after a failure.
	MaxRetries int `yaml:"maxRetries"`

	// RetryBackoff is the delay between upstream subscribe attempts.
	RetryBackoff time.Duration `yaml:"retryBackoff"`

	// FlushTimeout bounds the round-trip used to confirm upstream subscriptions.
	FlushTimeout time.Duration `yaml:"flushTimeout"`
}

// SnapshotConfig configures the JetStream KV snapshot store (see package snapshot).
type SnapshotConfig struct {
	// Bucket is the KV bucket name holding tree snapshots.
	Bucket string `yaml:"bucket"`

	// Key is the entry key of the snapshot in Bucket.
	Key string `yaml:"key"`

	// History is the number of historical snapshot revisions kept by the bucket.
	History int `yaml:"history"`

	// MaxRetries bounds bucket create-or-open attempts.
	MaxRetries int `yaml:"maxRetries"`
}

// LoggingConfig configures the slog-backed logger built by the CLI.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// JSON selects JSON output instead of text.
	JSON bool `yaml:"json"`
}

// Config is the configuration for a Vault and its collaborators.
//
// All duration fields accept standard Go duration strings like "250ms", "5s".
type Config struct {
	// Delimiter separates topic segments. Default "/".
	Delimiter string `yaml:"delimiter"`

	// SingleLevelWildcard is the segment matching exactly one topic segment. Default "+".
	SingleLevelWildcard string `yaml:"singleLevelWildcard"`

	// MultiLevelWildcard is the segment matching the remainder of a topic. Default "#".
	MultiLevelWildcard string `yaml:"multiLevelWildcard"`

	// Bridge configures the upstream NATS bridge.
	Bridge BridgeConfig `yaml:"bridge"`

	// Snapshot configures the JetStream KV snapshot store.
	Snapshot SnapshotConfig `yaml:"snapshot"`

	// Logging configures the CLI logger.
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns a Config with MQTT topic syntax and sensible defaults.
func DefaultConfig() Config {
	tokens := trie.DefaultTokens()

	return Config{
		Delimiter:           tokens.Delimiter,
		SingleLevelWildcard: tokens.SingleLevel,
		MultiLevelWildcard:  tokens.MultiLevel,
		Bridge: BridgeConfig{
			SubjectPrefix: "",
			MaxRetries:    3,
			RetryBackoff:  100 * time.Millisecond,
			FlushTimeout:  2 * time.Second,
		},
		Snapshot: SnapshotConfig{
			Bucket:     "subvault-snapshots",
			Key:        "tree",
			History:    1,
			MaxRetries: 3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Delimiter == "" {
		cfg.Delimiter = defaults.Delimiter
	}
	if cfg.SingleLevelWildcard == "" {
		cfg.SingleLevelWildcard = defaults.SingleLevelWildcard
	}
	if cfg.MultiLevelWildcard == "" {
		cfg.MultiLevelWildcard = defaults.MultiLevelWildcard
	}
	// Note: MaxRetries of 0 is valid (single attempt), so we don't apply default
	if cfg.Bridge.RetryBackoff == 0 {
		cfg.Bridge.RetryBackoff = defaults.Bridge.RetryBackoff
	}
	if cfg.Bridge.FlushTimeout == 0 {
		cfg.Bridge.FlushTimeout = defaults.Bridge.FlushTimeout
	}
	if cfg.Snapshot.Bucket == "" {
		cfg.Snapshot.Bucket = defaults.Snapshot.Bucket
	}
	if cfg.Snapshot.Key == "" {
		cfg.Snapshot.Key = defaults.Snapshot.Key
	}
	if cfg.Snapshot.History == 0 {
		cfg.Snapshot.History = defaults.Snapshot.History
	}
	if cfg.Snapshot.MaxRetries == 0 {
		cfg.Snapshot.MaxRetries = defaults.Snapshot.MaxRetries
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Rules:
//   - Delimiter and both wildcard tokens are non-empty
//   - The three tokens are pairwise distinct
//   - Neither wildcard contains the delimiter (it could never be a single segment)
//   - Bridge.MaxRetries >= 0, Snapshot.History in [1, 64]
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Delimiter == "" || cfg.SingleLevelWildcard == "" || cfg.MultiLevelWildcard == "" {
		return fmt.Errorf("%w: delimiter and wildcard tokens must be non-empty", ErrInvalidConfig)
	}

	if cfg.SingleLevelWildcard == cfg.MultiLevelWildcard ||
		cfg.Delimiter == cfg.SingleLevelWildcard ||
		cfg.Delimiter == cfg.MultiLevelWildcard {
		return fmt.Errorf("%w: delimiter (%q), single-level (%q) and multi-level (%q) tokens must differ",
			ErrInvalidConfig, cfg.Delimiter, cfg.SingleLevelWildcard, cfg.MultiLevelWildcard)
	}

	for _, wc := range []string{cfg.SingleLevelWildcard, cfg.MultiLevelWildcard} {
		if strings.Contains(wc, cfg.Delimiter) {
			return fmt.Errorf("%w: wildcard %q contains the delimiter %q", ErrInvalidConfig, wc, cfg.Delimiter)
		}
	}

	if cfg.Bridge.MaxRetries < 0 {
		return fmt.Errorf("%w: bridge MaxRetries must be >= 0, got %d", ErrInvalidConfig, cfg.Bridge.MaxRetries)
	}

	// JetStream KV caps per-key history at 64.
	if cfg.Snapshot.History < 1 || cfg.Snapshot.History > 64 {
		return fmt.Errorf("%w: snapshot History must be in [1, 64], got %d", ErrInvalidConfig, cfg.Snapshot.History)
	}

	return nil
}

// ParseConfig decodes a YAML document, applies defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the YAML configuration file at path.
//
// Example:
//
//	cfg, err := subvault.LoadConfig("subvault.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, err := subvault.New[string](&cfg)
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

func (cfg *Config) tokens() trie.Tokens {
	return trie.Tokens{
		Delimiter:   cfg.Delimiter,
		SingleLevel: cfg.SingleLevelWildcard,
		MultiLevel:  cfg.MultiLevelWildcard,
	}
}
