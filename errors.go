// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package open311

import (
	"errors"

	"github.com/MKhiriev/go-open311/internal/adapter"
	"github.com/MKhiriev/go-open311/internal/converter"
	"github.com/MKhiriev/go-open311/internal/registry"
)

var (
	// ErrMalformedName is returned by Post when the "name" field cannot be
	// split into a first and last name.
	ErrMalformedName = errors.New("malformed name: expected first and last name separated by a space")
	// ErrMalformedDate is returned when a "start" or "end" parameter is not
	// a recognised date.
	ErrMalformedDate = errors.New("malformed date")
	// ErrCityInfo is returned when the stored city selection cannot be decoded.
	ErrCityInfo = errors.New("invalid stored city info")
)

// Errors produced by the XML converter.
var (
	ErrNameConflict  = converter.ErrNameConflict
	ErrEmptyDocument = converter.ErrEmptyDocument
)

// ErrCityNotFound is matched by errors returned for unknown city names.
var ErrCityNotFound = registry.ErrCityNotFound

// CityNotFoundError carries the city name that could not be resolved.
type CityNotFoundError = registry.CityNotFoundError

// Status errors returned by [Result.Err].
var (
	ErrBadRequest          = adapter.ErrBadRequest
	ErrUnauthorized        = adapter.ErrUnauthorized
	ErrForbidden           = adapter.ErrForbidden
	ErrNotFound            = adapter.ErrNotFound
	ErrConflict            = adapter.ErrConflict
	ErrInternalServerError = adapter.ErrInternalServerError
	ErrBadGateway          = adapter.ErrBadGateway
)
