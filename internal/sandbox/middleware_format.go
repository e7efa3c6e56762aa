// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	formatJSON = "json"
	formatXML  = "xml"
)

// withFormat rejects resources requested with a suffix other than .json or
// .xml. The error itself is rendered as json.
func (h *Handler) withFormat(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch requestFormat(r) {
		case formatJSON, formatXML:
			next.ServeHTTP(w, r)
		default:
			h.renderError(w, r, fmt.Errorf("%w: %q", ErrUnsupportedFormat, chi.URLParam(r, "format")))
		}
	})
}

func requestFormat(r *http.Request) string {
	return strings.ToLower(chi.URLParam(r, "format"))
}
