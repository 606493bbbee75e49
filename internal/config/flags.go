package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite path)
//	-content-dir downloaded content directory
//	-base-url remote resource API base URL
//	-probe-url bandwidth probe endpoint URL
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-debug-address diagnostics endpoint address host:port
//	-sync-interval automatic sync period (e.g., "5m")
//	-cleanup-interval expiry sweep period (e.g., "1h")
//	-log-file rotated log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var contentDir string
	var baseURL string
	var probeURL string
	var requestTimeout time.Duration
	var debugAddress string
	var syncInterval time.Duration
	var cleanupInterval time.Duration
	var logFile string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN (SQLite path)")
	flag.StringVar(&contentDir, "content-dir", "", "Downloaded content directory")
	flag.StringVar(&baseURL, "base-url", "", "Remote resource API base URL")
	flag.StringVar(&probeURL, "probe-url", "", "Bandwidth probe endpoint URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&debugAddress, "debug-address", "", "Diagnostics endpoint host:port")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Automatic sync period (e.g., 5m)")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Expiry sweep period (e.g., 1h)")
	flag.StringVar(&logFile, "log-file", "", "Rotated log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				ContentDir: contentDir,
			},
		},
		Remote: Remote{
			BaseURL:        baseURL,
			ProbeURL:       probeURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			DebugAddress: debugAddress,
		},
		Sync: Sync{
			Interval:        syncInterval,
			CleanupInterval: cleanupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
