// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumenlearn Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// engine invariants before it is used at startup.
//
// Currently a no-op placeholder; the merged view is validated once it has
// been narrowed to an [AgentConfig].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *AgentConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.ContentDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.Interval == 0 || cfg.Sync.CleanupInterval == 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
