// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settings describes how a client talks to one Open311 server.
//
// Every field is optional. Empty fields are filled from lower-precedence
// layers when a client is configured (see internal/config.Configuration).
type Settings struct {
	// Endpoint is the base URL of the Open311 server, e.g.
	// "https://open311.sfgov.org/V2/". A missing scheme defaults to https
	// and a single trailing slash is always enforced.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Format is the response format suffix appended to every resource path
	// ("json" or "xml"). Defaults to "json".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Jurisdiction is sent as jurisdiction_id by servers that host more than
	// one government entity.
	Jurisdiction string `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`

	// Proxy is an optional HTTP proxy URL used for all outbound requests.
	Proxy string `json:"proxy,omitempty" yaml:"proxy,omitempty"`

	// APIKey is the static key required by most servers for POST requests.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Discovery is the absolute URL of the server's discovery document when
	// it is not served under Endpoint.
	Discovery string `json:"discovery,omitempty" yaml:"discovery,omitempty"`
}
