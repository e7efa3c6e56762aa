// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// BuildPath composes an Open311 resource URL from an already normalised
// endpoint (ending with "/"), the resource path segments and the response
// format. Empty segments are dropped, the remaining ones keep their order.
//
//	BuildPath("https://api.city.gov/", "json", "requests", "123")
//	// https://api.city.gov/requests/123.json
func BuildPath(endpoint, format string, segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}

	return endpoint + strings.Join(parts, "/") + "." + format
}
