// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package converter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-open311/internal/logger"
)

// Supported response formats.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Converter decodes response bodies according to the configured format.
// It holds no per-document state and may be shared.
type Converter struct {
	logger *logger.Logger
}

// New returns a Converter logging structural ambiguities to log. A nil log
// disables logging.
func New(log *logger.Logger) *Converter {
	if log == nil {
		log = logger.Nop()
	}
	return &Converter{logger: log}
}

// Convert decodes body according to format. JSON and XML bodies are turned
// into native values and converted is true. For any other format body is
// returned unchanged as data with converted set to false.
func (c *Converter) Convert(format string, body []byte) (data any, converted bool, err error) {
	switch {
	case strings.EqualFold(format, FormatJSON):
		var v any
		if err = json.Unmarshal(body, &v); err != nil {
			return nil, false, fmt.Errorf("error decoding json response: %w", err)
		}
		return v, true, nil
	case strings.EqualFold(format, FormatXML):
		v, err := c.XML(body)
		if err != nil {
			return nil, false, fmt.Errorf("error converting xml response: %w", err)
		}
		return v, true, nil
	default:
		return body, false, nil
	}
}
