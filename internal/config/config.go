// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-open311/models"
)

// StructuredConfig is the top-level configuration of the open311 CLI. It is
// populated by merging command-line flags, environment variables and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Client holds the settings of the Open311 client used by every command.
	Client Client `envPrefix:"OPEN311_"`

	// Sandbox holds the settings of the local sandbox server.
	Sandbox Sandbox `envPrefix:"OPEN311_SANDBOX_"`

	// Verbose enables debug logging on stderr.
	// Env: OPEN311_VERBOSE
	Verbose bool `env:"OPEN311_VERBOSE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the OPEN311_CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"OPEN311_CONFIG"`
}

// Client holds the Open311 client settings.
type Client struct {
	// City selects an entry of the built-in city registry. Explicit endpoint,
	// format, jurisdiction and discovery values override the city's.
	// Env: OPEN311_CITY
	City string `env:"CITY"`

	// Endpoint is the base URL of the Open311 server.
	// Env: OPEN311_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Format is the response format, "json" or "xml".
	// Env: OPEN311_FORMAT
	Format string `env:"FORMAT"`

	// Jurisdiction is sent as jurisdiction_id when set.
	// Env: OPEN311_JURISDICTION
	Jurisdiction string `env:"JURISDICTION"`

	// APIKey is the key attached to POST requests.
	// Env: OPEN311_API_KEY
	APIKey string `env:"API_KEY"`

	// Proxy is an optional HTTP proxy URL.
	// Env: OPEN311_PROXY
	Proxy string `env:"PROXY"`

	// Discovery is an absolute discovery document URL.
	// Env: OPEN311_DISCOVERY
	Discovery string `env:"DISCOVERY"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: OPEN311_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sandbox holds the local sandbox server settings.
type Sandbox struct {
	// Address is the host:port the sandbox listens on.
	// Env: OPEN311_SANDBOX_ADDRESS
	Address string `env:"ADDRESS"`

	// APIKey, when set, is required on every POST.
	// Env: OPEN311_SANDBOX_API_KEY
	APIKey string `env:"API_KEY"`
}

// Defaults for values no source provides.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultSandboxAddress = "localhost:8311"
)

// Settings returns the client settings carried by c, without the city.
func (c Client) Settings() models.Settings {
	return models.Settings{
		Endpoint:     c.Endpoint,
		Format:       c.Format,
		Jurisdiction: c.Jurisdiction,
		Proxy:        c.Proxy,
		APIKey:       c.APIKey,
		Discovery:    c.Discovery,
	}
}

// GetStructuredConfig loads, merges, and validates the CLI configuration.
// flags carries the values bound to command-line flags. Sources are merged
// field by field, the first non-empty value wins:
//  1. command-line flags
//  2. environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. built-in defaults
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
