// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package open311

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-open311/internal/registry"
	"github.com/MKhiriev/go-open311/internal/store"
)

var (
	defaultMu sync.RWMutex
	defaultKV KeyValueStore = store.NewEnvStore()
)

// SetDefaultStore replaces the process-wide store used by the package-level
// functions and by clients built without WithStore. A nil kv restores the
// environment backed store.
func SetDefaultStore(kv KeyValueStore) {
	if kv == nil {
		kv = store.NewEnvStore()
	}

	defaultMu.Lock()
	defaultKV = kv
	defaultMu.Unlock()
}

func defaultStore() KeyValueStore {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultKV
}

// Key stores a non-empty key as the default API key and returns the key
// currently stored.
func Key(key string) (string, error) {
	kv := defaultStore()
	if key != "" {
		if err := kv.Set(KeyAPIKey, key); err != nil {
			return "", fmt.Errorf("error saving api key: %w", err)
		}
	}
	return kv.Get(KeyAPIKey), nil
}

// Cities returns the names accepted by City, sorted.
func Cities() []string {
	return registry.Names()
}

// City selects a known city for the package-level functions and returns a
// client for it.
func City(name string, opts ...Option) (*Client, error) {
	city, err := registry.Resolve(name)
	if err != nil {
		return nil, err
	}
	return Dev(city.Settings(), opts...)
}

// Dev selects an arbitrary server, such as a local sandbox, for the
// package-level functions and returns a client for it.
func Dev(settings Settings, opts ...Option) (*Client, error) {
	kv := defaultStore()

	info, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("error encoding city info: %w", err)
	}
	if err = kv.Set(KeyCityInfo, string(info)); err != nil {
		return nil, fmt.Errorf("error saving city info: %w", err)
	}

	return New(settings, append([]Option{WithStore(kv)}, opts...)...)
}

// Default returns a client for the server selected by the last City or Dev
// call, or an unconfigured client when there was none.
func Default(opts ...Option) (*Client, error) {
	kv := defaultStore()

	var settings Settings
	if info := kv.Get(KeyCityInfo); info != "" {
		if err := json.Unmarshal([]byte(info), &settings); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCityInfo, err)
		}
	}

	return New(settings, append([]Option{WithStore(kv)}, opts...)...)
}

// Discovery calls [Client.Discovery] on the default client.
func Discovery(ctx context.Context, url string) (*Result, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Discovery(ctx, url)
}

// Services calls [Client.Services] on the default client.
func Services(ctx context.Context, code string, params Params) (*Result, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Services(ctx, code, params)
}

// Requests calls [Client.Requests] on the default client.
func Requests(ctx context.Context, code string, params Params) (*Result, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Requests(ctx, code, params)
}

// Request calls [Client.Request] on the default client.
func Request(ctx context.Context, id string, params Params) (*Result, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Request(ctx, id, params)
}

// Post calls [Client.Post] on the default client.
func Post(ctx context.Context, code string, fields Params, media *Media) (*Result, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Post(ctx, code, fields, media)
}

// Token calls [Client.Token] on the default client.
func Token(ctx context.Context, id string, params Params) (*Result, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Token(ctx, id, params)
}
