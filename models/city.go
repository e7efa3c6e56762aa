// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// City is a single entry of the city registry.
type City struct {
	Name         string `json:"name" yaml:"name"`
	Endpoint     string `json:"endpoint" yaml:"endpoint"`
	Format       string `json:"format,omitempty" yaml:"format,omitempty"`
	Jurisdiction string `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`
	Discovery    string `json:"discovery,omitempty" yaml:"discovery,omitempty"`
}

// Settings returns the client settings needed to query the city's server.
func (c City) Settings() Settings {
	return Settings{
		Endpoint:     c.Endpoint,
		Format:       c.Format,
		Jurisdiction: c.Jurisdiction,
		Discovery:    c.Discovery,
	}
}
