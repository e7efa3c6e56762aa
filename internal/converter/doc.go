// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package converter turns Open311 response bodies into native Go values.
//
// JSON bodies are decoded with encoding/json. XML bodies are parsed into an
// etree DOM and walked recursively into nested map[string]any, []any and
// string values:
//
//   - an element with text and no attributes becomes its trimmed text;
//   - any other element becomes a map of its attributes and children;
//   - a tag seen a second time among siblings turns the map entry into a
//     slice that collects every occurrence in document order;
//   - namespace prefixes are dropped from every tag and attribute name.
//
// An element that has both text and attributes keeps its text under a key
// named after the element itself. When one of the attributes already has
// that name the conversion fails with [ErrNameConflict].
package converter
