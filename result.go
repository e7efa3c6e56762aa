// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package open311

import (
	"net/http"

	"github.com/MKhiriev/go-open311/internal/adapter"
)

// Result is the outcome of a single Open311 call.
//
// Data holds the decoded body when Converted is true. Otherwise it holds the
// raw body, same as Raw: conversion was disabled, the format is neither json
// nor xml, or the server answered a POST with a non-success status.
type Result struct {
	StatusCode int
	Raw        []byte
	Data       any
	Converted  bool
}

// OK reports whether the server answered with a 2xx status.
func (r *Result) OK() bool {
	return isSuccess(r.StatusCode)
}

// Err returns nil for a 2xx status and an error matching one of the status
// sentinels (ErrNotFound, ErrBadRequest, ...) otherwise.
func (r *Result) Err() error {
	return adapter.StatusError(r.StatusCode, r.Raw)
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
