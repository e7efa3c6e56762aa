package converter

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-open311/internal/logger"
)

func TestConverter_XML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]any
	}{
		{
			name: "repeated siblings become a list",
			in:   `<root><a>1</a><a>2</a><b x="y"/></root>`,
			want: map[string]any{"root": map[string]any{
				"a": []any{"1", "2"},
				"b": map[string]any{"x": "y"},
			}},
		},
		{
			name: "non contiguous repetition",
			in:   `<root><a>1</a><b>2</b><a>3</a></root>`,
			want: map[string]any{"root": map[string]any{
				"a": []any{"1", "3"},
				"b": "2",
			}},
		},
		{
			name: "third occurrence appends",
			in:   `<r><a>1</a><a>2</a><a>3</a></r>`,
			want: map[string]any{"r": map[string]any{"a": []any{"1", "2", "3"}}},
		},
		{
			name: "text and attributes merge",
			in:   `<item id="1">hello</item>`,
			want: map[string]any{"item": map[string]any{"id": "1", "item": "hello"}},
		},
		{
			name: "empty element",
			in:   `<root><empty/></root>`,
			want: map[string]any{"root": map[string]any{"empty": map[string]any{}}},
		},
		{
			name: "whitespace only element",
			in:   "<root><blank>  \n\t </blank></root>",
			want: map[string]any{"root": map[string]any{"blank": map[string]any{}}},
		},
		{
			name: "leaf text is trimmed",
			in:   "<description>\n  Pothole on 9th\n</description>",
			want: map[string]any{"description": "Pothole on 9th"},
		},
		{
			name: "namespaces are stripped at every depth",
			in: `<g:services xmlns:g="http://open311.org/v2" xmlns="http://example.com/default">` +
				`<g:service g:type="realtime"><code>001</code></g:service></g:services>`,
			want: map[string]any{"services": map[string]any{
				"service": map[string]any{"type": "realtime", "code": "001"},
			}},
		},
		{
			name: "child named like an attribute promotes to a list",
			in:   `<r code="a"><code>b</code></r>`,
			want: map[string]any{"r": map[string]any{"code": []any{"a", "b"}}},
		},
		{
			name: "nested requests",
			in: `<?xml version="1.0" encoding="utf-8"?>
<service_requests>
  <request>
    <service_request_id>638344</service_request_id>
    <status>closed</status>
    <media_url></media_url>
  </request>
  <request>
    <service_request_id>638349</service_request_id>
    <status>open</status>
    <media_url></media_url>
  </request>
</service_requests>`,
			want: map[string]any{"service_requests": map[string]any{
				"request": []any{
					map[string]any{"service_request_id": "638344", "status": "closed", "media_url": map[string]any{}},
					map[string]any{"service_request_id": "638349", "status": "open", "media_url": map[string]any{}},
				},
			}},
		},
	}

	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.XML([]byte(tt.in))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("XML() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConverter_XML_NameConflict(t *testing.T) {
	c := New(nil)

	_, err := c.XML([]byte(`<root><item item="1">hello</item></root>`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameConflict)
}

func TestConverter_XML_AttributeNamedLikeTagWithoutText(t *testing.T) {
	c := New(nil)

	got, err := c.XML([]byte(`<item item="1"/>`))

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"item": map[string]any{"item": "1"}}, got)
}

func TestConverter_XML_Idempotent(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<root><a>1</a><a>2</a><b x="y">z</b></root>`))

	c := New(nil)
	first, err := c.Element(doc.Root())
	require.NoError(t, err)
	second, err := c.Element(doc.Root())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second conversion differs (-first +second):\n%s", diff)
	}
	// the tree itself is not modified by the conversion
	assert.Equal(t, "z", doc.FindElement("//b").Text())
}

func TestConverter_XML_Latin1(t *testing.T) {
	in := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><city>`), 0xC9, 'v', 'r', 'y')
	in = append(in, []byte(`</city>`)...)

	got, err := New(nil).XML(in)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"city": "Évry"}, got)
}

func TestConverter_XML_Errors(t *testing.T) {
	c := New(nil)

	_, err := c.XML([]byte(""))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = c.XML([]byte("<open><unclosed></open>"))
	assert.Error(t, err)
}

func TestConverter_XML_LogsAmbiguity(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	_, err := New(log).XML([]byte(`<item id="1">hello</item>`))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"tag":"item"`)
}
