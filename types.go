// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package open311

import (
	"github.com/MKhiriev/go-open311/internal/adapter"
	"github.com/MKhiriev/go-open311/internal/store"
	"github.com/MKhiriev/go-open311/models"
)

type (
	// Settings describes how a client talks to one Open311 server.
	Settings = models.Settings
	// Params holds query parameters or POST fields.
	Params = models.Params
	// Media is a file attached to a service request.
	Media = models.Media
	// CityInfo is an entry of the built-in city registry.
	CityInfo = models.City

	// Transport performs the HTTP exchanges of a [Client].
	Transport = adapter.Transport
	// Response is the raw outcome of a [Transport] call.
	Response = adapter.Response

	// KeyValueStore holds the process-wide API key and selected city.
	KeyValueStore = store.KeyValueStore
)

// Keys used in a [KeyValueStore].
const (
	KeyAPIKey   = store.KeyAPIKey
	KeyCityInfo = store.KeyCityInfo
)

// NewEnvStore returns a [KeyValueStore] backed by environment variables.
func NewEnvStore() KeyValueStore {
	return store.NewEnvStore()
}

// NewMemoryStore returns an in-memory [KeyValueStore] seeded with initial.
func NewMemoryStore(initial map[string]string) KeyValueStore {
	return store.NewMemoryStore(initial)
}
