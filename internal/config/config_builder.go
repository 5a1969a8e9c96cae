package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects one partial [StructuredConfig] per source and
// merges them in build. mergo fills only zero-valued fields of the
// destination, so the source registered first takes precedence for every
// field it sets.
type configBuilder struct {
	sources []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// withEnv registers the environment-variable source.
func (b *configBuilder) withEnv() *configBuilder {
	fromEnv := new(StructuredConfig)
	if err := parseEnv(fromEnv); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(fromEnv)
}

// withFlags registers the command-line flag source.
func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

// withJSON registers the JSON file source if any earlier source supplied a
// file path. It must therefore be called after withEnv and withFlags.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, src := range b.sources {
		if src.JSONFilePath != "" {
			path = src.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	fromFile, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(fromFile)
}

func (b *configBuilder) add(src *StructuredConfig) *configBuilder {
	b.sources = append(b.sources, src)
	return b
}

// build merges the registered sources, applies the documented defaults to
// any field left unset, and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(merged, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	merged.applyDefaults()

	return merged, merged.validate()
}
