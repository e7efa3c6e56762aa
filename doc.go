// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package open311 is a client for the Open311 GeoReport v2 API.
//
// A [Client] talks to a single Open311 server. It builds resource URLs from
// the configured endpoint and response format, sends GET and POST requests
// through a [Transport] and decodes JSON or XML bodies into nested
// map[string]any / []any / string values.
//
//	c, err := open311.New(open311.Settings{Endpoint: "api.city.gov"})
//	if err != nil {
//		return err
//	}
//	res, err := c.Services(ctx, "", nil)
//
// Known cities can be selected by name with [City]; the package-level
// functions ([Services], [Requests], ...) then operate on the last selected
// city, which is kept in a process-wide [KeyValueStore].
package open311
