// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"maps"
)

// Params holds query parameters of a GET request or form fields of a POST
// request. Open311 parameters are single-valued.
type Params map[string]string

// Clone returns a shallow copy of p. A nil receiver yields an empty,
// non-nil map so callers can write to the result.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)
	return out
}

// Media is an optional file attached to a service request POST. When set,
// the request is sent as multipart/form-data with the file under the
// "media" field.
type Media struct {
	FileName string
	Content  io.Reader
}
