// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package converter

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// XML parses data and converts its root element with [Converter.Element].
// Documents declaring a non UTF-8 encoding are transcoded first.
func (c *Converter) XML(data []byte) (map[string]any, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("error parsing xml: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyDocument
	}

	return c.Element(root)
}

// Element converts the tree rooted at root into {rootTag: value}.
func (c *Converter) Element(root *etree.Element) (map[string]any, error) {
	value, err := c.parseNode(root)
	if err != nil {
		return nil, err
	}

	return map[string]any{root.Tag: value}, nil
}

func (c *Converter) parseNode(node *etree.Element) (any, error) {
	attrs := attributes(node)
	text := strings.TrimSpace(node.Text())

	if text != "" && len(attrs) == 0 {
		return text, nil
	}

	if text != "" {
		c.logger.Debug().
			Str("tag", node.Tag).
			Int("attributes", len(attrs)).
			Msg("element has both text and attributes, keeping text under the tag name")

		for _, a := range attrs {
			if a.Key == node.Tag {
				return nil, fmt.Errorf("%w: <%s %s=%q>", ErrNameConflict, node.Tag, a.Key, a.Value)
			}
		}
		attrs = append(attrs, etree.Attr{Key: node.Tag, Value: text})
	}

	tree := make(map[string]any, len(attrs)+len(node.Child))
	for _, a := range attrs {
		tree[a.Key] = a.Value
	}

	for _, child := range node.ChildElements() {
		value, err := c.parseNode(child)
		if err != nil {
			return nil, err
		}

		old, seen := tree[child.Tag]
		if !seen {
			tree[child.Tag] = value
			continue
		}

		list, isList := old.([]any)
		if !isList {
			list = []any{old}
		}
		tree[child.Tag] = append(list, value)
	}

	return tree, nil
}

// attributes returns the attributes of node with namespace prefixes dropped.
// Namespace declarations are not attributes and are skipped.
func attributes(node *etree.Element) []etree.Attr {
	attrs := make([]etree.Attr, 0, len(node.Attr))
	for _, a := range node.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		attrs = append(attrs, etree.Attr{Key: a.Key, Value: a.Value})
	}

	return attrs
}
