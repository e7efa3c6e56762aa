// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used by Open311 clients.
//
// The primary abstraction is [Transport], which decouples the client from
// the HTTP library. The package ships a resty-based implementation
// ([NewHTTPTransport]); tests use the gomock double in internal/mock.
//
// Transports never interpret status codes: a 404 is a successful exchange
// carrying a 404 [Response]. Callers that want an error for non-2xx
// responses use [StatusError], which maps status codes onto the sentinel
// values defined in errors.go so that [errors.Is] works across transports.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-open311/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Response is the outcome of a single HTTP exchange.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport issues a single blocking HTTP request per call. Network-level
// failures (DNS, TLS, timeouts, cancelled contexts) are returned as errors;
// any response received from the server, whatever its status, is not.
type Transport interface {
	// Get sends GET url with params encoded in the query string.
	Get(ctx context.Context, url string, params models.Params) (Response, error)

	// Post sends fields as an application/x-www-form-urlencoded body, or as
	// multipart/form-data with the file under the "media" field when media
	// is not nil.
	Post(ctx context.Context, url string, fields models.Params, media *models.Media) (Response, error)
}

// ProxySetter is implemented by transports that can route requests through
// an HTTP proxy. An empty proxy URL removes a previously set proxy.
type ProxySetter interface {
	SetProxy(proxyURL string)
}
