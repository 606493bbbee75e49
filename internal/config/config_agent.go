package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetAgentConfig] when a field is unset.
const (
	DefaultRequestTimeout       = 30 * time.Second
	DefaultSyncInterval         = 5 * time.Minute
	DefaultBackgroundInterval   = 15 * time.Minute
	DefaultReconnectDebounce    = 2 * time.Second
	DefaultCleanupInterval      = time.Hour
	DefaultMaxParallelDownloads = 3
	DefaultLowBandwidthKbps     = 1500.0
)

// AgentApp holds application-level agent settings.
type AgentApp struct {
	// Version is the agent version string exposed via diagnostics.
	Version string
	// LogFile is the optional rotated log file path.
	LogFile string
}

// AgentRemote holds network settings used by the remote adapter.
type AgentRemote struct {
	// BaseURL is the root URL of the backend resource API.
	BaseURL string
	// ProbeURL is the optional bandwidth probe endpoint.
	ProbeURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// AgentStorage groups local storage settings.
type AgentStorage struct {
	// DB holds local database settings.
	DB DB
	// ContentDir is the downloaded-content directory.
	ContentDir string
}

// AgentSync contains orchestrator tuning values with defaults applied.
type AgentSync struct {
	Interval             time.Duration
	BackgroundInterval   time.Duration
	ReconnectDebounce    time.Duration
	CleanupInterval      time.Duration
	MaxParallelDownloads int
	LowBandwidthKbps     float64
}

// AgentConfig is the top-level engine configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// App contains application-level agent settings.
	App AgentApp
	// Remote contains the backend API endpoint settings.
	Remote AgentRemote
	// Storage contains local persistence settings.
	Storage AgentStorage
	// Server contains the diagnostics endpoint address.
	Server Server
	// Sync contains orchestrator tuning.
	Sync AgentSync
}

// GetAgentConfig builds and validates an engine-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the sync engine, applies defaults for unset tuning values,
// and validates the resulting [AgentConfig].
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		App: AgentApp{
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Remote: AgentRemote{
			BaseURL:        cfg.Remote.BaseURL,
			ProbeURL:       cfg.Remote.ProbeURL,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: AgentStorage{
			DB:         DB{DSN: cfg.Storage.DB.DSN},
			ContentDir: cfg.Storage.Files.ContentDir,
		},
		Server: Server{DebugAddress: cfg.Server.DebugAddress},
		Sync: AgentSync{
			Interval:             cfg.Sync.Interval,
			BackgroundInterval:   cfg.Sync.BackgroundInterval,
			ReconnectDebounce:    cfg.Sync.ReconnectDebounce,
			CleanupInterval:      cfg.Sync.CleanupInterval,
			MaxParallelDownloads: cfg.Sync.MaxParallelDownloads,
			LowBandwidthKbps:     cfg.Sync.LowBandwidthKbps,
		},
	}
	agentCfg.applyDefaults()

	return agentCfg, agentCfg.validate()
}

func (cfg *AgentConfig) applyDefaults() {
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
	if cfg.Sync.BackgroundInterval <= 0 {
		cfg.Sync.BackgroundInterval = DefaultBackgroundInterval
	}
	if cfg.Sync.ReconnectDebounce <= 0 {
		cfg.Sync.ReconnectDebounce = DefaultReconnectDebounce
	}
	if cfg.Sync.CleanupInterval <= 0 {
		cfg.Sync.CleanupInterval = DefaultCleanupInterval
	}
	if cfg.Sync.MaxParallelDownloads <= 0 {
		cfg.Sync.MaxParallelDownloads = DefaultMaxParallelDownloads
	}
	if cfg.Sync.LowBandwidthKbps <= 0 {
		cfg.Sync.LowBandwidthKbps = DefaultLowBandwidthKbps
	}
}
