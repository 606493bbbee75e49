package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			ContentDir string `json:"content_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		BaseURL        string   `json:"base_url"`
		ProbeURL       string   `json:"probe_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Server struct {
		DebugAddress string `json:"debug_address"`
	} `json:"server,omitempty"`

	Sync struct {
		Interval             Duration `json:"interval"`
		BackgroundInterval   Duration `json:"background_interval"`
		ReconnectDebounce    Duration `json:"reconnect_debounce"`
		CleanupInterval      Duration `json:"cleanup_interval"`
		MaxParallelDownloads int      `json:"max_parallel_downloads"`
		LowBandwidthKbps     float64  `json:"low_bandwidth_kbps"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				ContentDir: jsonCfg.Storage.Files.ContentDir,
			},
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			ProbeURL:       jsonCfg.Remote.ProbeURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Server: Server{
			DebugAddress: jsonCfg.Server.DebugAddress,
		},
		Sync: Sync{
			Interval:             time.Duration(jsonCfg.Sync.Interval),
			BackgroundInterval:   time.Duration(jsonCfg.Sync.BackgroundInterval),
			ReconnectDebounce:    time.Duration(jsonCfg.Sync.ReconnectDebounce),
			CleanupInterval:      time.Duration(jsonCfg.Sync.CleanupInterval),
			MaxParallelDownloads: jsonCfg.Sync.MaxParallelDownloads,
			LowBandwidthKbps:     jsonCfg.Sync.LowBandwidthKbps,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
