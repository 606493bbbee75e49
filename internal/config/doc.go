// Package config provides configuration loading, merging, and validation
// facilities for the offline sync engine.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source wins; later sources only fill unset fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged view
// and [GetAgentConfig] for the engine-specific configuration consumed by
// cmd/syncagent.
package config
