// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the layout Open311 servers expect for start_date/end_date.
const DateFormat = "2006-01-02T00:00:00Z"

// ErrUnknownDateFormat is returned by [ParseDate] when the input matches none
// of the accepted layouts.
var ErrUnknownDateFormat = errors.New("unknown date format")

// Accepted input layouts, tried in order. Two-digit years go through
// time.Parse's 1969-2068 window.
var dateLayouts = []string{
	"01-02-2006",
	"01-02-06",
	"01/02/2006",
	"01/02/06",
	"2006-01-02",
	time.RFC3339,
}

// ParseDate parses a calendar date written as MM-DD-YYYY, MM-DD-YY, their
// slash variants, YYYY-MM-DD or RFC 3339.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDateFormat, s)
}

// FormatDate renders t as an Open311 date at midnight UTC of t's calendar day.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
