// Package config provides client settings layering and CLI configuration
// loading.
//
// [Configuration] owns the settings of one Open311 client: initial values,
// Configure overrides, defaults and the API key fallback, with endpoint
// normalisation applied whenever an endpoint is set.
//
// [GetStructuredConfig] assembles the open311 CLI configuration from the
// following sources (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
package config
