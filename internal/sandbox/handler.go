// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import (
	"time"

	"github.com/MKhiriev/go-open311/internal/logger"
)

// Config tunes the sandbox behaviour.
type Config struct {
	// APIKey, when set, must be sent as api_key with every POST.
	APIKey string
}

// Handler serves the Open311 resources of a [Store].
type Handler struct {
	store     *Store
	cfg       Config
	changeset string

	logger *logger.Logger
}

// NewHandler returns a handler over store.
func NewHandler(store *Store, cfg Config, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	log.Info().Msg("sandbox http handler created")

	return &Handler{
		store:     store,
		cfg:       cfg,
		changeset: time.Now().UTC().Format("2006-01-02 15:04"),
		logger:    log,
	}
}
