// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-open311/internal/store"
	"github.com/MKhiriev/go-open311/models"
)

// DefaultFormat is used when no layer sets a response format.
const DefaultFormat = "json"

// Configuration holds the settings of a single Open311 client.
//
// Active settings are resolved from four layers, highest precedence first:
//  1. overrides passed to the current Configure call;
//  2. overrides accumulated by earlier Configure calls;
//  3. the initial settings captured by NewConfiguration;
//  4. defaults (Format "json", everything else empty).
//
// An API key missing from every layer is read from the key-value store at
// the moment Configure or Reset runs; it is not cached between calls.
//
// A Configuration is owned by one client and is not safe for concurrent use.
type Configuration struct {
	initial   models.Settings
	overrides models.Settings
	active    models.Settings

	store store.KeyValueStore
}

// NewConfiguration captures initial (with its endpoint normalised) and
// resolves the active settings. A nil kv disables the API key fallback.
func NewConfiguration(initial models.Settings, kv store.KeyValueStore) (*Configuration, error) {
	if kv == nil {
		kv = store.NewMemoryStore(nil)
	}

	initial.Endpoint = NormalizeEndpoint(initial.Endpoint)
	c := &Configuration{initial: initial, store: kv}

	active, err := c.resolve(models.Settings{})
	if err != nil {
		return nil, err
	}
	c.active = active

	return c, nil
}

// Configure applies overrides on top of the current configuration. Empty
// fields of overrides leave the current values untouched.
func (c *Configuration) Configure(overrides models.Settings) error {
	overrides.Endpoint = NormalizeEndpoint(overrides.Endpoint)
	if err := mergo.Merge(&overrides, c.overrides); err != nil {
		return fmt.Errorf("error merging settings overrides: %w", err)
	}

	active, err := c.resolve(overrides)
	if err != nil {
		return err
	}

	c.overrides = overrides
	c.active = active
	return nil
}

// Reset drops every override applied by Configure. Calling it repeatedly
// always yields the same state, except for an API key taken from the store,
// which is re-read.
func (c *Configuration) Reset() error {
	active, err := c.resolve(models.Settings{})
	if err != nil {
		return err
	}

	c.overrides = models.Settings{}
	c.active = active
	return nil
}

// Settings returns the active settings.
func (c *Configuration) Settings() models.Settings {
	return c.active
}

// Initial returns the settings captured at construction.
func (c *Configuration) Initial() models.Settings {
	return c.initial
}

func (c *Configuration) resolve(overrides models.Settings) (models.Settings, error) {
	active := overrides
	if err := mergo.Merge(&active, c.initial); err != nil {
		return models.Settings{}, fmt.Errorf("error merging initial settings: %w", err)
	}
	if err := mergo.Merge(&active, models.Settings{Format: DefaultFormat}); err != nil {
		return models.Settings{}, fmt.Errorf("error merging default settings: %w", err)
	}

	if active.APIKey == "" {
		active.APIKey = c.store.Get(store.KeyAPIKey)
	}

	return active, nil
}
