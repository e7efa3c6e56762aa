package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that fields already set by an earlier
// source are not overwritten by later ones, while empty fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Client: Client{Endpoint: "flag.gov"}},
		&StructuredConfig{Client: Client{Endpoint: "env.gov", Format: "xml"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.gov", cfg.Client.Endpoint)
	assert.Equal(t, "xml", cfg.Client.Format)
}

func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Sandbox: Sandbox{Address: "nowhere"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidSandboxConfigs)

	b = newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Client: Client{RequestTimeout: -time.Second}})

	_, err = b.build()
	assert.ErrorIs(t, err, ErrInvalidClientConfigs)
}

// ── withEnv / withFlags / withDefaults ────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"OPEN311_CITY": "boston", "OPEN311_FORMAT": "xml"})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "boston", b.configs[0].Client.City)
	assert.Equal(t, "xml", b.configs[0].Client.Format)
	assert.NoError(t, b.err)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"OPEN311_VERBOSE": "maybe"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)

	b.withFlags(&StructuredConfig{Verbose: true})
	assert.Len(t, b.configs, 1)
}

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	require.Len(t, b.configs, 1)
	assert.Equal(t, DefaultRequestTimeout, b.configs[0].Client.RequestTimeout)
	assert.Equal(t, DefaultSandboxAddress, b.configs[0].Sandbox.Address)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Client.Endpoint = "json.gov"
	payload.Client.Jurisdiction = "json"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.gov", b.configs[1].Client.Endpoint)
	assert.Equal(t, "json", b.configs[1].Client.Jurisdiction)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the path from the highest
// precedence source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Client.Format = "xml"
	second := StructuredJSONConfig{}
	second.Client.Format = "json"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "xml", b.configs[3].Client.Format)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Precedence(t *testing.T) {
	fileCfg := StructuredJSONConfig{}
	fileCfg.Client.Endpoint = "file.gov"
	fileCfg.Client.Format = "xml"
	fileCfg.Client.Jurisdiction = "file"
	fileCfg.Sandbox.Address = "127.0.0.1:9999"

	setEnvVars(t, map[string]string{
		"OPEN311_CONFIG":   writeTempJSONConfig(t, fileCfg),
		"OPEN311_ENDPOINT": "env.gov",
		"OPEN311_FORMAT":   "json",
	})

	cfg, err := GetStructuredConfig(&StructuredConfig{Client: Client{Endpoint: "flag.gov"}})

	require.NoError(t, err)
	assert.Equal(t, "flag.gov", cfg.Client.Endpoint)
	assert.Equal(t, "json", cfg.Client.Format)
	assert.Equal(t, "file", cfg.Client.Jurisdiction)
	assert.Equal(t, "127.0.0.1:9999", cfg.Sandbox.Address)
	assert.Equal(t, DefaultRequestTimeout, cfg.Client.RequestTimeout)
}

func TestClient_Settings(t *testing.T) {
	c := Client{
		City:         "sf",
		Endpoint:     "api.city.gov",
		Format:       "xml",
		Jurisdiction: "city.gov",
		APIKey:       "key",
		Proxy:        "http://proxy",
		Discovery:    "https://d",
	}

	s := c.Settings()
	assert.Equal(t, "api.city.gov", s.Endpoint)
	assert.Equal(t, "xml", s.Format)
	assert.Equal(t, "city.gov", s.Jurisdiction)
	assert.Equal(t, "key", s.APIKey)
	assert.Equal(t, "http://proxy", s.Proxy)
	assert.Equal(t, "https://d", s.Discovery)
}
