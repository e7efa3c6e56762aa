// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the process-wide key-value state shared by Open311
// clients: the default API key and the last selected city.
//
// Production code uses [EnvStore], which reads and writes real environment
// variables. Tests inject a [MemoryStore] so that state never leaks between
// test cases.
package store

// Well-known keys.
const (
	// KeyAPIKey holds the API key used when a client is configured without one.
	KeyAPIKey = "OPEN311_API_KEY"

	// KeyCityInfo holds the JSON-encoded city selected by the last City call.
	KeyCityInfo = "OPEN311_CITY_INFO"
)

// KeyValueStore is a flat string key-value store. Missing keys read as the
// empty string.
type KeyValueStore interface {
	Get(key string) string
	Set(key, value string) error
}
