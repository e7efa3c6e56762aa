// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// NormalizeEndpoint makes raw start with an http:// or https:// scheme
// (https:// is added when neither is present) and end with exactly one "/".
// An empty endpoint stays empty; it is not validated any further.
func NormalizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		raw = "https://" + strings.TrimLeft(raw, "/")
	}

	return strings.TrimRight(raw, "/") + "/"
}
