// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package converter

import "errors"

var (
	// ErrNameConflict is returned when an element carries both text and an
	// attribute named like the element, so the text has no free key to live
	// under.
	ErrNameConflict = errors.New("attribute name conflicts with tag name")

	// ErrEmptyDocument is returned for XML input without a root element.
	ErrEmptyDocument = errors.New("xml document has no root element")
)
