// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-open311/internal/logger"
	"github.com/MKhiriev/go-open311/internal/utils"
	"github.com/MKhiriev/go-open311/models"
	"github.com/go-resty/resty/v2"
)

// mediaField is the form field carrying an attached file.
const mediaField = "media"

type httpTransport struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPTransport constructs the resty implementation of [Transport]. The
// returned value also implements [ProxySetter].
// Every call issues exactly one request; resty retries stay disabled.
// A non-positive timeout leaves deadlines to the caller's context.
func NewHTTPTransport(timeout time.Duration, log *logger.Logger) Transport {
	if log == nil {
		log = logger.Nop()
	}

	return &httpTransport{client: utils.NewHTTPClient(timeout), logger: log}
}

// Get implements [Transport].
func (h *httpTransport) Get(ctx context.Context, url string, params models.Params) (Response, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(url)
	if err != nil {
		return Response{}, fmt.Errorf("get request: %w", err)
	}

	return h.response(resp), nil
}

// Post implements [Transport].
func (h *httpTransport) Post(ctx context.Context, url string, fields models.Params, media *models.Media) (Response, error) {
	req := h.client.R().
		SetContext(ctx).
		SetFormData(fields)

	if media != nil {
		req.SetFileReader(mediaField, media.FileName, media.Content)
	}

	resp, err := req.Post(url)
	if err != nil {
		return Response{}, fmt.Errorf("post request: %w", err)
	}

	return h.response(resp), nil
}

// SetProxy implements [ProxySetter].
func (h *httpTransport) SetProxy(proxyURL string) {
	if proxyURL == "" {
		h.client.RemoveProxy()
		return
	}
	h.client.SetProxy(proxyURL)
}

func (h *httpTransport) response(resp *resty.Response) Response {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int("size", len(resp.Body())).
		Msg("open311 response")

	return Response{StatusCode: resp.StatusCode(), Body: resp.Body()}
}
