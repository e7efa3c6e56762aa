// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package open311

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-open311/internal/utils"
)

const (
	paramStart     = "start"
	paramEnd       = "end"
	paramStartDate = "start_date"
	paramEndDate   = "end_date"
)

// Between returns the query parameters restricting a listing to the
// calendar days from start to end.
func Between(start, end time.Time) Params {
	return Params{
		paramStartDate: utils.FormatDate(start),
		paramEndDate:   utils.FormatDate(end),
	}
}

// dateRange replaces the "start" and "end" shorthands in params with
// start_date and end_date.
func (c *Client) dateRange(params Params) error {
	start, hasStart := params[paramStart]
	end, hasEnd := params[paramEnd]
	if !hasStart && !hasEnd {
		return nil
	}
	delete(params, paramStart)
	delete(params, paramEnd)

	if hasStart {
		t, err := utils.ParseDate(start)
		if err != nil {
			return fmt.Errorf("%w: start: %w", ErrMalformedDate, err)
		}
		params[paramStartDate] = utils.FormatDate(t)
		if !hasEnd {
			params[paramEndDate] = utils.FormatDate(c.now())
		}
	}

	if hasEnd {
		t, err := utils.ParseDate(end)
		if err != nil {
			return fmt.Errorf("%w: end: %w", ErrMalformedDate, err)
		}
		params[paramEndDate] = utils.FormatDate(t)
	}

	return nil
}
