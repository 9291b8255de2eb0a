package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	subvault "github.com/kevin-dyer/mqtt-subscription-vault"
)

func TestSubjectMapper_Subject(t *testing.T) {
	cfg := subvault.DefaultConfig()
	m, err := newSubjectMapper(&cfg)
	require.NoError(t, err)

	tests := []struct {
		name      string
		topic     string
		wildcards bool
		want      string
		wantErr   bool
	}{
		{name: "literal topic", topic: "home/kitchen/temperature", wildcards: true, want: "home.kitchen.temperature"},
		{name: "single-level wildcard", topic: "home/+/temperature", wildcards: true, want: "home.*.temperature"},
		{name: "multi-level wildcard", topic: "home/#", wildcards: true, want: "home.>"},
		{name: "bare multi-level wildcard", topic: "#", wildcards: true, want: ">"},
		{name: "multi-level wildcard not last", topic: "home/#/x", wildcards: true, wantErr: true},
		{name: "empty segment", topic: "home//x", wildcards: true, wantErr: true},
		{name: "empty topic", topic: "", wildcards: true, wantErr: true},
		{name: "segment with dot", topic: "home/v1.2", wildcards: true, wantErr: true},
		{name: "segment with star", topic: "home/a*", wildcards: true, wantErr: true},
		{name: "segment with whitespace", topic: "home/living room", wildcards: true, wantErr: true},
		{name: "publish literal topic", topic: "home/kitchen", want: "home.kitchen"},
		{name: "publish with wildcard", topic: "home/+", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.subject(tt.topic, tt.wildcards)
			if tt.wantErr {
				require.ErrorIs(t, err, subvault.ErrInvalidSubject)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSubjectMapper_Prefix(t *testing.T) {
	t.Run("prepends prefix and strips it back", func(t *testing.T) {
		cfg := subvault.DefaultConfig()
		cfg.Bridge.SubjectPrefix = "edge.mqtt"
		m, err := newSubjectMapper(&cfg)
		require.NoError(t, err)

		subject, err := m.subject("home/+", true)
		require.NoError(t, err)
		require.Equal(t, "edge.mqtt.home.*", subject)
		require.Equal(t, "home/kitchen", m.topic("edge.mqtt.home.kitchen"))
	})

	t.Run("rejects invalid prefix", func(t *testing.T) {
		for _, prefix := range []string{"a..b", "a.*", ">", " x"} {
			cfg := subvault.DefaultConfig()
			cfg.Bridge.SubjectPrefix = prefix

			_, err := newSubjectMapper(&cfg)
			require.ErrorIs(t, err, subvault.ErrInvalidConfig, prefix)
		}
	})
}

func TestSubjectMapper_CustomTokens(t *testing.T) {
	cfg := subvault.Config{Delimiter: ":", SingleLevelWildcard: "?", MultiLevelWildcard: "**"}
	subvault.SetDefaults(&cfg)
	m, err := newSubjectMapper(&cfg)
	require.NoError(t, err)

	subject, err := m.subject("a:?:**", true)
	require.NoError(t, err)
	require.Equal(t, "a.*.>", subject)
	require.Equal(t, "a:b:c", m.topic("a.b.c"))
}
