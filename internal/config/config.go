// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Zathsiri

package config

import (
	"time"
)

// Default values applied to fields left empty by every configuration source.
const (
	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = ":8080"

	// DefaultAuthToken is the static bearer token expected by the
	// authentication middleware when none is configured.
	DefaultAuthToken = "mysecrettoken"

	// DefaultEnvironment is the runtime environment assumed when none is
	// configured. Any value other than [EnvironmentProduction] keeps the
	// generated API documentation route enabled.
	DefaultEnvironment = "development"

	// EnvironmentProduction disables the /docs route when set.
	EnvironmentProduction = "production"
)

// StructuredConfig is the top-level configuration container for the
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the static auth token and the
	// runtime environment.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AuthToken is the static bearer token every request must present in
	// its "Authorization" header. Compared case-insensitively as
	// "Bearer <token>".
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// Environment is the runtime environment label ("development",
	// "production"). The generated API documentation route is registered
	// only outside production.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long the server waits for request headers
	// (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following precedence
// order (an earlier source wins for every field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
