// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// Source precedence, lowest first. The JSON file is located through the
// environment but environment values still win over it.
const (
	precedenceDefaults = iota
	precedenceJSON
	precedenceEnv
)

// configSource is one layer of configuration.
type configSource struct {
	name       string
	precedence int
	config     *StructuredConfig
}

type configBuilder struct {
	sources []configSource
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sources: make([]configSource, 0, 3),
	}
}

func (b *configBuilder) add(name string, precedence int, cfg *StructuredConfig) {
	b.sources = append(b.sources, configSource{name: name, precedence: precedence, config: cfg})
}

// build merges the sources from lowest to highest precedence; non-zero
// fields of a stronger source override weaker ones.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	sources := slices.Clone(b.sources)
	slices.SortStableFunc(sources, func(a, c configSource) int {
		return a.precedence - c.precedence
	})

	config := new(StructuredConfig)
	for _, src := range sources {
		if err := mergo.Merge(config, src.config, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", src.name, err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.add("default", precedenceDefaults, defaultConfig())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add("env", precedenceEnv, envCfg)
	return b
}

// withJSON loads the file named by the strongest source that sets
// JSONFilePath. Without one it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	jsonPath, found := "", -1
	for _, src := range b.sources {
		if src.config.JSONFilePath != "" && src.precedence > found {
			jsonPath, found = src.config.JSONFilePath, src.precedence
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.add("json", precedenceJSON, jsonCfg)

	return b
}
