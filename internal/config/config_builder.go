// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumenlearn Authors

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// configBuilder collects one partial [StructuredConfig] per source and merges
// them with earlier-source-wins semantics: a later source only fills fields
// the sources before it left unset.
type configBuilder struct {
	sources []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sources: make([]*StructuredConfig, 0, 3),
	}
}

// fromEnv reads the engine's environment variables into a partial view.
// Fields are mapped via the env and envPrefix tags on [StructuredConfig] and
// its nested types.
func (b *configBuilder) fromEnv() *configBuilder {
	view := &StructuredConfig{}
	if err := env.Parse(view); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return b
	}

	b.sources = append(b.sources, view)
	return b
}

// fromFlags reads the command-line flags into a partial view.
func (b *configBuilder) fromFlags() *configBuilder {
	b.sources = append(b.sources, ParseFlags())
	return b
}

// fromJSONFile reads the optional JSON file. Its path comes from whichever
// earlier source set it first (the CONFIG variable or the -c/-config flag);
// when none did, there is no file to read.
func (b *configBuilder) fromJSONFile() *configBuilder {
	var path string
	for _, src := range b.sources {
		if src.JSONFilePath != "" {
			path = src.JSONFilePath
			break
		}
	}
	if path == "" {
		return b
	}

	view, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, view)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(merged, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}
