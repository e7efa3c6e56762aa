// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry maps human-readable city names to the settings of their
// Open311 servers. The table is compiled into the binary from cities.yaml.
package registry

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-open311/models"
)

//go:embed cities.yaml
var citiesYAML []byte

var cities = mustLoad(citiesYAML)

type entry struct {
	Endpoint     string `yaml:"endpoint"`
	Format       string `yaml:"format"`
	Jurisdiction string `yaml:"jurisdiction"`
	Discovery    string `yaml:"discovery"`
}

func mustLoad(data []byte) map[string]models.City {
	c, err := load(data)
	if err != nil {
		panic(err)
	}
	return c
}

func load(data []byte) (map[string]models.City, error) {
	var raw map[string]entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error decoding city registry: %w", err)
	}

	out := make(map[string]models.City, len(raw))
	for name, e := range raw {
		key := normalize(name)
		if e.Endpoint == "" {
			return nil, fmt.Errorf("city %q has no endpoint", key)
		}
		out[key] = models.City{
			Name:         key,
			Endpoint:     e.Endpoint,
			Format:       e.Format,
			Jurisdiction: e.Jurisdiction,
			Discovery:    e.Discovery,
		}
	}

	return out, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve returns the registry entry for name. Lookup ignores case and
// surrounding whitespace.
func Resolve(name string) (models.City, error) {
	key := normalize(name)
	city, ok := cities[key]
	if !ok {
		return models.City{}, &CityNotFoundError{Name: key}
	}
	return city, nil
}

// Names returns every registered city name in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
