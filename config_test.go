package subvault

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "/", cfg.Delimiter)
	require.Equal(t, "+", cfg.SingleLevelWildcard)
	require.Equal(t, "#", cfg.MultiLevelWildcard)
	require.Equal(t, "", cfg.Bridge.SubjectPrefix)
	require.Equal(t, 3, cfg.Bridge.MaxRetries)
	require.Equal(t, 100*time.Millisecond, cfg.Bridge.RetryBackoff)
	require.Equal(t, 2*time.Second, cfg.Bridge.FlushTimeout)
	require.Equal(t, "subvault-snapshots", cfg.Snapshot.Bucket)
	require.Equal(t, "tree", cfg.Snapshot.Key)
	require.Equal(t, 1, cfg.Snapshot.History)
	require.Equal(t, 3, cfg.Snapshot.MaxRetries)
	require.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		expected := DefaultConfig()
		expected.Bridge.MaxRetries = 0 // zero retries is a valid explicit choice
		require.Equal(t, expected, cfg)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Delimiter:           ".",
			SingleLevelWildcard: "*",
			MultiLevelWildcard:  ">",
			Bridge: BridgeConfig{
				SubjectPrefix: "mqtt",
				MaxRetries:    5,
				RetryBackoff:  time.Second,
				FlushTimeout:  5 * time.Second,
			},
			Snapshot: SnapshotConfig{
				Bucket:     "custom",
				Key:        "vault",
				History:    10,
				MaxRetries: 7,
			},
			Logging: LoggingConfig{Level: "debug", JSON: true},
		}
		original := cfg
		SetDefaults(&cfg)

		require.Equal(t, original, cfg)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{name: "defaults", modify: func(*Config) {}, valid: true},
		{name: "custom tokens", modify: func(c *Config) { c.Delimiter, c.SingleLevelWildcard, c.MultiLevelWildcard = ".", "*", ">" }, valid: true},
		{name: "multi-character tokens", modify: func(c *Config) { c.Delimiter, c.SingleLevelWildcard = "::", "{any}" }, valid: true},
		{name: "empty delimiter", modify: func(c *Config) { c.Delimiter = "" }},
		{name: "empty single-level wildcard", modify: func(c *Config) { c.SingleLevelWildcard = "" }},
		{name: "identical wildcards", modify: func(c *Config) { c.MultiLevelWildcard = "+" }},
		{name: "wildcard equals delimiter", modify: func(c *Config) { c.SingleLevelWildcard = "/" }},
		{name: "wildcard contains delimiter", modify: func(c *Config) { c.MultiLevelWildcard = "#/" }},
		{name: "negative bridge retries", modify: func(c *Config) { c.Bridge.MaxRetries = -1 }},
		{name: "zero bridge retries", modify: func(c *Config) { c.Bridge.MaxRetries = 0 }, valid: true},
		{name: "snapshot history too large", modify: func(c *Config) { c.Snapshot.History = 65 }},
		{name: "snapshot history zero", modify: func(c *Config) { c.Snapshot.History = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("decodes tokens and durations", func(t *testing.T) {
		data := []byte(`
delimiter: "."
singleLevelWildcard: "*"
multiLevelWildcard: ">"
bridge:
  subjectPrefix: mqtt
  maxRetries: 5
  retryBackoff: 250ms
snapshot:
  bucket: vaults
logging:
  level: debug
  json: true
`)
		cfg, err := ParseConfig(data)
		require.NoError(t, err)

		require.Equal(t, ".", cfg.Delimiter)
		require.Equal(t, "*", cfg.SingleLevelWildcard)
		require.Equal(t, ">", cfg.MultiLevelWildcard)
		require.Equal(t, "mqtt", cfg.Bridge.SubjectPrefix)
		require.Equal(t, 5, cfg.Bridge.MaxRetries)
		require.Equal(t, 250*time.Millisecond, cfg.Bridge.RetryBackoff)
		require.Equal(t, 2*time.Second, cfg.Bridge.FlushTimeout) // defaulted
		require.Equal(t, "vaults", cfg.Snapshot.Bucket)
		require.Equal(t, "tree", cfg.Snapshot.Key) // defaulted
		require.Equal(t, "debug", cfg.Logging.Level)
		require.True(t, cfg.Logging.JSON)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		require.NoError(t, err)
		require.Equal(t, "/", cfg.Delimiter)
	})

	t.Run("malformed yaml wraps ErrInvalidConfig", func(t *testing.T) {
		_, err := ParseConfig([]byte("delimiter: [unterminated"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		_, err := ParseConfig([]byte(`singleLevelWildcard: "#"`))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("round-trips through yaml", func(t *testing.T) {
		original := DefaultConfig()
		original.Bridge.SubjectPrefix = "edge"

		data, err := yaml.Marshal(original)
		require.NoError(t, err)

		cfg, err := ParseConfig(data)
		require.NoError(t, err)
		require.Equal(t, original, cfg)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subvault.yaml")
		require.NoError(t, os.WriteFile(path, []byte("delimiter: \".\"\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, ".", cfg.Delimiter)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
