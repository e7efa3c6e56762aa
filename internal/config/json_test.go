package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"client": {
			"city": "boston",
			"endpoint": "api.city.gov",
			"format": "xml",
			"jurisdiction": "city.gov",
			"api_key": "secret",
			"proxy": "http://proxy:3128",
			"discovery": "https://api.city.gov/discovery.xml",
			"request_timeout": "15s"
		},
		"sandbox": {
			"address": "localhost:9000",
			"api_key": "sandbox-key"
		},
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "boston", cfg.Client.City)
	assert.Equal(t, "api.city.gov", cfg.Client.Endpoint)
	assert.Equal(t, "xml", cfg.Client.Format)
	assert.Equal(t, "city.gov", cfg.Client.Jurisdiction)
	assert.Equal(t, "secret", cfg.Client.APIKey)
	assert.Equal(t, "http://proxy:3128", cfg.Client.Proxy)
	assert.Equal(t, "https://api.city.gov/discovery.xml", cfg.Client.Discovery)
	assert.Equal(t, 15*time.Second, cfg.Client.RequestTimeout)

	assert.Equal(t, "localhost:9000", cfg.Sandbox.Address)
	assert.Equal(t, "sandbox-key", cfg.Sandbox.APIKey)
	assert.True(t, cfg.Verbose)

	// the file path never comes from the file itself
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", in: `1000000000`, want: time.Second},
		{name: "bad string", in: `"soon"`, wantErr: true},
		{name: "invalid", in: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(b))
}
