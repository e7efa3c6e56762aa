package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "blank", in: "   ", want: ""},
		{name: "bare host", in: "api.city.gov", want: "https://api.city.gov/"},
		{name: "bare host with path", in: "api.city.gov/open311/v2", want: "https://api.city.gov/open311/v2/"},
		{name: "leading slashes", in: "//api.city.gov", want: "https://api.city.gov/"},
		{name: "http kept", in: "http://api.city.gov", want: "http://api.city.gov/"},
		{name: "https kept", in: "https://api.city.gov/", want: "https://api.city.gov/"},
		{name: "upper-case scheme kept", in: "HTTPS://api.city.gov", want: "HTTPS://api.city.gov/"},
		{name: "many trailing slashes", in: "https://api.city.gov///", want: "https://api.city.gov/"},
		{name: "surrounding whitespace", in: "  api.city.gov  ", want: "https://api.city.gov/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEndpoint(tt.in))
		})
	}
}

func TestNormalizeEndpoint_Idempotent(t *testing.T) {
	for _, in := range []string{"api.city.gov", "http://x.org/v2", "https://y.org//"} {
		once := NormalizeEndpoint(in)
		assert.Equal(t, once, NormalizeEndpoint(once), in)
	}
}
