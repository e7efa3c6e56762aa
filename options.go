// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package open311

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-open311/internal/logger"
)

// DefaultTimeout bounds every request of a client built without WithTimeout
// or WithTransport.
const DefaultTimeout = 30 * time.Second

type options struct {
	transport Transport
	store     KeyValueStore
	logger    *logger.Logger
	timeout   time.Duration
	convert   bool
	now       func() time.Time
}

func defaultOptions() options {
	return options{
		timeout: DefaultTimeout,
		convert: true,
		now:     time.Now,
	}
}

// Option customises a [Client].
type Option func(*options)

// WithTransport replaces the resty based HTTP transport.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithStore sets the store used for the API key fallback. Clients use the
// package default store (see SetDefaultStore) otherwise.
func WithStore(kv KeyValueStore) Option {
	return func(o *options) {
		o.store = kv
	}
}

// WithLogger enables debug logging of every call. Clients are silent by
// default.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithTimeout sets the per-request timeout of the default transport. Zero
// disables it. Ignored together with WithTransport.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithConversion turns decoding of response bodies on or off. With
// conversion off every Result carries the raw body only.
func WithConversion(enabled bool) Option {
	return func(o *options) {
		o.convert = enabled
	}
}

// WithClock sets the time source used to fill in a missing end date.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
