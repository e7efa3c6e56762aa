// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package open311

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-open311/internal/utils"
)

// POST fields rewritten by postFields.
const (
	fieldAddress       = "address"
	fieldAddressString = "address_string"
	fieldName          = "name"
	fieldFirstName     = "first_name"
	fieldLastName      = "last_name"
	fieldAPIKey        = "api_key"
)

// Post creates a service request for the service code.
//
// Two convenience fields are rewritten before sending: "address" becomes
// "address_string", and "name" is split on its first space into
// "first_name" and "last_name" (ErrMalformedName when there is no space).
// The configured API key, jurisdiction and code fill in api_key,
// jurisdiction_id and service_code unless fields already set them.
//
// A non-nil media is uploaded as a multipart file. Only a 2xx response is
// decoded; any other response is returned raw with a nil error, see
// [Result.Err].
func (c *Client) Post(ctx context.Context, code string, fields Params, media *Media) (*Result, error) {
	s := c.config.Settings()

	body, err := postFields(code, fields, s)
	if err != nil {
		return nil, err
	}

	url := utils.BuildPath(s.Endpoint, s.Format, resourceRequests)
	log := c.callLogger(http.MethodPost, url)

	resp, err := c.transport.Post(ctx, url, body, media)
	if err != nil {
		log.Debug().Err(err).Msg("open311 request failed")
		return nil, err
	}
	log.Debug().Int("status", resp.StatusCode).Msg("open311 request done")

	res := rawResult(resp)
	if !c.convert || !isSuccess(resp.StatusCode) {
		return res, nil
	}

	data, converted, err := c.converter.Convert(s.Format, resp.Body)
	if err != nil {
		return nil, err
	}
	res.Data, res.Converted = data, converted

	return res, nil
}

func postFields(code string, fields Params, s Settings) (Params, error) {
	out := fields.Clone()

	if address, ok := out[fieldAddress]; ok {
		delete(out, fieldAddress)
		out[fieldAddressString] = address
	}

	if name, ok := out[fieldName]; ok {
		first, last, found := strings.Cut(strings.TrimSpace(name), " ")
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrMalformedName, name)
		}
		delete(out, fieldName)
		out[fieldFirstName] = first
		out[fieldLastName] = last
	}

	if _, ok := out[fieldAPIKey]; !ok && s.APIKey != "" {
		out[fieldAPIKey] = s.APIKey
	}
	if _, ok := out[paramServiceCode]; !ok && code != "" {
		out[paramServiceCode] = code
	}
	withJurisdiction(out, s.Jurisdiction)

	return out, nil
}
