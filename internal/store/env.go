// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
)

// EnvStore is a [KeyValueStore] backed by the process environment.
// Reads and writes are not synchronised with other users of the
// environment.
type EnvStore struct{}

// NewEnvStore returns a store over os.Getenv / os.Setenv.
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// Get implements [KeyValueStore].
func (s *EnvStore) Get(key string) string {
	return os.Getenv(key)
}

// Set implements [KeyValueStore].
func (s *EnvStore) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("error setting env %s: %w", key, err)
	}
	return nil
}
