// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrRequestNotFound = errors.New("service request not found")
	ErrTokenNotFound   = errors.New("token not found")
	ErrMediaNotFound   = errors.New("media not found")

	// ErrInvalidAPIKey is returned for a POST without the configured api_key.
	ErrInvalidAPIKey = errors.New("invalid api_key received -- can't proceed with create_request")
	// ErrNoLocation is returned for a POST without lat/long, address_string
	// or address_id.
	ErrNoLocation = errors.New("a location is required: lat and long, address_string or address_id")
	// ErrInvalidServiceCode is returned for a POST naming an unknown service.
	ErrInvalidServiceCode = errors.New("service_code was not found")

	ErrInvalidDate       = errors.New("invalid date")
	ErrUnsupportedFormat = errors.New("unsupported format")
)
