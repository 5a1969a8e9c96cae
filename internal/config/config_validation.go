// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Zathsiri

package config

// applyDefaults fills in the documented default value for every field left
// empty by all configuration sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.App.AuthToken == "" {
		cfg.App.AuthToken = DefaultAuthToken
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = DefaultEnvironment
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.AuthToken == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
