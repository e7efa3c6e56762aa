// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package open311

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-open311/internal/adapter"
	"github.com/MKhiriev/go-open311/internal/config"
	"github.com/MKhiriev/go-open311/internal/converter"
	"github.com/MKhiriev/go-open311/internal/logger"
	"github.com/MKhiriev/go-open311/internal/utils"
)

// Resource names of the GeoReport v2 API.
const (
	resourceDiscovery = "discovery"
	resourceServices  = "services"
	resourceRequests  = "requests"
	resourceTokens    = "tokens"
)

const (
	paramServiceCode  = "service_code"
	paramJurisdiction = "jurisdiction_id"
)

// Client is an Open311 API client bound to one server.
//
// Every operation issues exactly one blocking request. A Client is not safe
// for concurrent use while Configure or Reset run; read-only operations may
// be called concurrently when the transport allows it.
type Client struct {
	config    *config.Configuration
	transport Transport
	converter *converter.Converter
	logger    *logger.Logger

	convert bool
	now     func() time.Time
}

// New returns a client for settings. Empty fields are defaulted: Format
// becomes "json" and a missing APIKey is read from the store.
func New(settings Settings, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logger.Nop()
	}
	if o.store == nil {
		o.store = defaultStore()
	}
	if o.transport == nil {
		o.transport = adapter.NewHTTPTransport(o.timeout, o.logger)
	}

	cfg, err := config.NewConfiguration(settings, o.store)
	if err != nil {
		return nil, fmt.Errorf("error configuring client: %w", err)
	}

	c := &Client{
		config:    cfg,
		transport: o.transport,
		converter: converter.New(o.logger),
		logger:    o.logger,
		convert:   o.convert,
		now:       o.now,
	}
	c.applyProxy()

	return c, nil
}

// Settings returns the active settings.
func (c *Client) Settings() Settings {
	return c.config.Settings()
}

// Configure applies overrides to the client. Empty fields keep their current
// value; an endpoint is normalised before it is stored.
func (c *Client) Configure(overrides Settings) error {
	if err := c.config.Configure(overrides); err != nil {
		return err
	}
	c.applyProxy()
	return nil
}

// Reset discards everything applied by Configure.
func (c *Client) Reset() error {
	if err := c.config.Reset(); err != nil {
		return err
	}
	c.applyProxy()
	return nil
}

func (c *Client) applyProxy() {
	if ps, ok := c.transport.(adapter.ProxySetter); ok {
		ps.SetProxy(c.config.Settings().Proxy)
	}
}

// Discovery fetches the server's discovery document.
//
// An explicit url, or else a discovery URL from the settings, is fetched as
// is and never converted: discovery documents need not match the configured
// format. Otherwise discovery.<format> is requested under the endpoint.
func (c *Client) Discovery(ctx context.Context, url string) (*Result, error) {
	if url == "" {
		url = c.config.Settings().Discovery
	}
	if url != "" {
		return c.get(ctx, url, Params{}, "", false)
	}

	return c.Get(ctx, nil, resourceDiscovery)
}

// Services lists the available services, or describes the service code
// when it is not empty.
func (c *Client) Services(ctx context.Context, code string, params Params) (*Result, error) {
	return c.Get(ctx, params, resourceServices, code)
}

// Requests lists service requests, restricted to code when it is not empty.
//
// Besides the standard query parameters, "start" and "end" accept
// MM-DD-YYYY, MM-DD-YY or YYYY-MM-DD dates and are sent as start_date and
// end_date. A start without an end ends today.
func (c *Client) Requests(ctx context.Context, code string, params Params) (*Result, error) {
	query := params.Clone()
	if code != "" {
		query[paramServiceCode] = code
	}
	return c.Get(ctx, query, resourceRequests)
}

// Request fetches a single service request.
func (c *Client) Request(ctx context.Context, id string, params Params) (*Result, error) {
	return c.Get(ctx, params, resourceRequests, id)
}

// Token resolves a token returned by Post into a service request id.
func (c *Client) Token(ctx context.Context, id string, params Params) (*Result, error) {
	return c.Get(ctx, params, resourceTokens, id)
}

// Get requests the resource named by segments under the configured endpoint.
// Empty segments are skipped. params are sent in the query string after
// date parameters are rewritten and the jurisdiction is added.
func (c *Client) Get(ctx context.Context, params Params, segments ...string) (*Result, error) {
	s := c.config.Settings()

	query := params.Clone()
	if err := c.dateRange(query); err != nil {
		return nil, err
	}
	withJurisdiction(query, s.Jurisdiction)

	url := utils.BuildPath(s.Endpoint, s.Format, segments...)
	return c.get(ctx, url, query, s.Format, c.convert)
}

func (c *Client) get(ctx context.Context, url string, params Params, format string, convert bool) (*Result, error) {
	log := c.callLogger(http.MethodGet, url)

	resp, err := c.transport.Get(ctx, url, params)
	if err != nil {
		log.Debug().Err(err).Msg("open311 request failed")
		return nil, err
	}
	log.Debug().Int("status", resp.StatusCode).Msg("open311 request done")

	res := rawResult(resp)
	if !convert {
		return res, nil
	}

	data, converted, err := c.converter.Convert(format, resp.Body)
	if err != nil {
		// error pages are often HTML or plain text; keep them for the caller
		if !isSuccess(resp.StatusCode) {
			log.Debug().Err(err).Msg("returning unconverted error response")
			return res, nil
		}
		return nil, err
	}
	res.Data, res.Converted = data, converted

	return res, nil
}

func (c *Client) callLogger(method, url string) *logger.Logger {
	l := c.logger.With().
		Str("trace_id", utils.NewTraceID()).
		Str("method", method).
		Str("url", url).
		Logger()
	return &logger.Logger{Logger: l}
}

func rawResult(resp Response) *Result {
	return &Result{StatusCode: resp.StatusCode, Raw: resp.Body, Data: resp.Body}
}

func withJurisdiction(params Params, jurisdiction string) {
	if jurisdiction == "" {
		return
	}
	if _, ok := params[paramJurisdiction]; !ok {
		params[paramJurisdiction] = jurisdiction
	}
}
