// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumenlearn Authors

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAgentConfig() *AgentConfig {
	return &AgentConfig{
		Remote: AgentRemote{
			BaseURL:        "https://api.lumenlearn.io/v1",
			RequestTimeout: 30 * time.Second,
		},
		Storage: AgentStorage{
			DB:         DB{DSN: "file:sync.db?_journal_mode=WAL"},
			ContentDir: "/var/lib/sync/content",
		},
		Sync: AgentSync{
			Interval:        5 * time.Minute,
			CleanupInterval: time.Hour,
		},
	}
}

func TestAgentConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *AgentConfig)
		wantErr error
	}{
		{"valid", func(cfg *AgentConfig) {}, nil},
		{"empty dsn", func(cfg *AgentConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"in-memory dsn", func(cfg *AgentConfig) { cfg.Storage.DB.DSN = "file::memory:" }, ErrInvalidStorageConfigs},
		{"empty content dir", func(cfg *AgentConfig) { cfg.Storage.ContentDir = "" }, ErrInvalidStorageConfigs},
		{"empty base url", func(cfg *AgentConfig) { cfg.Remote.BaseURL = "" }, ErrInvalidRemoteConfigs},
		{"zero request timeout", func(cfg *AgentConfig) { cfg.Remote.RequestTimeout = 0 }, ErrInvalidRemoteConfigs},
		{"zero sync interval", func(cfg *AgentConfig) { cfg.Sync.Interval = 0 }, ErrInvalidSyncConfigs},
		{"zero cleanup interval", func(cfg *AgentConfig) { cfg.Sync.CleanupInterval = 0 }, ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAgentConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAgentConfig_ApplyDefaults(t *testing.T) {
	cfg := &AgentConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultRequestTimeout, cfg.Remote.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Sync.Interval)
	assert.Equal(t, DefaultBackgroundInterval, cfg.Sync.BackgroundInterval)
	assert.Equal(t, DefaultReconnectDebounce, cfg.Sync.ReconnectDebounce)
	assert.Equal(t, DefaultCleanupInterval, cfg.Sync.CleanupInterval)
	assert.Equal(t, DefaultMaxParallelDownloads, cfg.Sync.MaxParallelDownloads)
	assert.InDelta(t, DefaultLowBandwidthKbps, cfg.Sync.LowBandwidthKbps, 1e-9)
}

func TestAgentConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &AgentConfig{
		Sync: AgentSync{Interval: time.Minute, MaxParallelDownloads: 8},
	}
	cfg.applyDefaults()

	assert.Equal(t, time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 8, cfg.Sync.MaxParallelDownloads)
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.sources = append(b.sources,
		&StructuredConfig{Remote: Remote{BaseURL: "https://from-env"}},
		&StructuredConfig{
			Remote: Remote{BaseURL: "https://from-json", ProbeURL: "https://probe"},
			Sync:   Sync{Interval: time.Minute},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// a field set by an earlier source is kept; later sources only fill gaps
	assert.Equal(t, "https://from-env", cfg.Remote.BaseURL)
	assert.Equal(t, "https://probe", cfg.Remote.ProbeURL)
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"app": {"version": "1.2.3", "log_file": "/var/log/sync-agent.log"},
		"storage": {
			"db": {"dsn": "file:sync.db"},
			"files": {"content_dir": "/srv/content"}
		},
		"remote": {"base_url": "https://api.lumenlearn.io/v1", "request_timeout": "45s"},
		"server": {"debug_address": "127.0.0.1:9090"},
		"sync": {
			"interval": "10m",
			"max_parallel_downloads": 4,
			"low_bandwidth_kbps": 1200
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "file:sync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/srv/content", cfg.Storage.Files.ContentDir)
	assert.Equal(t, 45*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.DebugAddress)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 4, cfg.Sync.MaxParallelDownloads)
	assert.InDelta(t, 1200, cfg.Sync.LowBandwidthKbps, 1e-9)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"remote": `), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	require.Error(t, d.UnmarshalJSON([]byte(`"not a duration"`)))
}

func TestConfigBuilder_FromEnv(t *testing.T) {
	t.Setenv("REMOTE_BASE_URL", "https://env.lumenlearn.io")
	t.Setenv("SYNC_INTERVAL", "90s")
	t.Setenv("SYNC_MAX_PARALLEL_DOWNLOADS", "6")

	cfg, err := newConfigBuilder().fromEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "https://env.lumenlearn.io", cfg.Remote.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.Sync.Interval)
	assert.Equal(t, 6, cfg.Sync.MaxParallelDownloads)
}

func TestConfigBuilder_FromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"remote": {"base_url": "https://from-json"},
		"storage": {"files": {"content_dir": "/srv/content"}}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	b := newConfigBuilder()
	b.sources = append(b.sources, &StructuredConfig{
		JSONFilePath: path,
		Remote:       Remote{BaseURL: "https://from-flags"},
	})

	cfg, err := b.fromJSONFile().build()
	require.NoError(t, err)

	// the file only fills what earlier sources left unset
	assert.Equal(t, "https://from-flags", cfg.Remote.BaseURL)
	assert.Equal(t, "/srv/content", cfg.Storage.Files.ContentDir)
}
