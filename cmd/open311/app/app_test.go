package app

import (
	"bytes"
	"context"
	"net"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	open311 "github.com/MKhiriev/go-open311"
	"github.com/MKhiriev/go-open311/internal/sandbox"
	"github.com/MKhiriev/go-open311/models"
)

// isolate removes OPEN311_* variables for the duration of the test and
// swaps the package store for an empty in-memory one.
func isolate(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, "OPEN311_") {
			continue
		}
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() { os.Setenv(key, value) })
	}

	open311.SetDefaultStore(open311.NewMemoryStore(nil))
	t.Cleanup(func() { open311.SetDefaultStore(nil) })
}

func newSandbox(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()

	store := sandbox.NewStore(sandbox.DefaultServices(), nil)
	srv := httptest.NewServer(sandbox.NewHandler(store, sandbox.Config{APIKey: apiKey}, nil).Init())
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewOpen311Command(models.NewAppBuildInfo("v1.0.0", "2026-10-18", "abc123"))
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCitiesCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "cities")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, open311.Cities(), lines)
	assert.Contains(t, lines, "sf")
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: v1.0.0")
	assert.Contains(t, out, "Build commit: abc123")
}

func TestQueryCommands(t *testing.T) {
	isolate(t)
	srv := newSandbox(t, "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "discovery", args: []string{"discovery"}, want: `"endpoints"`},
		{name: "services json", args: []string{"services"}, want: "Cans left out 24x7"},
		{name: "services xml", args: []string{"--format", "xml", "services"}, want: "Cans left out 24x7"},
		{name: "service definition", args: []string{"services", "002"}, want: "WHISHETN"},
		{name: "requests", args: []string{"requests", "001", "--status", "open"}, want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--endpoint", srv.URL}, tt.args...)
			out, err := run(t, args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestPostThenRequest(t *testing.T) {
	isolate(t)
	srv := newSandbox(t, "secret")

	photo := filepath.Join(t.TempDir(), "cans.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("photo"), 0o600))

	out, err := run(t,
		"--endpoint", srv.URL, "--api-key", "secret",
		"post", "001",
		"--name", "Zach Williams",
		"--address", "85 2nd St",
		"--description", "Cans left out",
		"--field", "attribute[WHISHETN]=123",
		"--media", photo,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "service_request_id")

	out, err = run(t, "--endpoint", srv.URL, "requests", "001", "--start", "01-01-2000", "--end", "2100-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "85 2nd St")
	assert.Contains(t, out, "/media/")
}

func TestPostCommand_Errors(t *testing.T) {
	isolate(t)
	srv := newSandbox(t, "secret")

	t.Run("wrong api key", func(t *testing.T) {
		out, err := run(t, "--endpoint", srv.URL, "--api-key", "nope",
			"post", "001", "--name", "Zach Williams", "--address", "85 2nd St")
		require.Error(t, err)
		assert.ErrorIs(t, err, open311.ErrForbidden)
		assert.Contains(t, out, "api_key")
	})

	t.Run("malformed name", func(t *testing.T) {
		_, err := run(t, "--endpoint", srv.URL, "post", "001", "--name", "Zach")
		assert.ErrorIs(t, err, open311.ErrMalformedName)
	})

	t.Run("missing media file", func(t *testing.T) {
		_, err := run(t, "--endpoint", srv.URL, "post", "001",
			"--media", filepath.Join(t.TempDir(), "missing.jpg"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error opening media")
	})

	t.Run("code required", func(t *testing.T) {
		_, err := run(t, "--endpoint", srv.URL, "post")
		assert.Error(t, err)
	})
}

func TestRequestAndTokenCommands_NotFound(t *testing.T) {
	isolate(t)
	srv := newSandbox(t, "")

	for _, sub := range []string{"request", "token"} {
		t.Run(sub, func(t *testing.T) {
			_, err := run(t, "--endpoint", srv.URL, sub, "missing")
			assert.ErrorIs(t, err, open311.ErrNotFound)
		})
	}
}

func TestUnknownCity(t *testing.T) {
	isolate(t)

	_, err := run(t, "--city", "atlantis", "services")
	assert.ErrorIs(t, err, open311.ErrCityNotFound)
}

func TestRequestsOptions_Params(t *testing.T) {
	ro := &RequestsOptions{
		Status: "open",
		Start:  "03-01-2010",
		Params: map[string]string{"page": "2"},
	}

	assert.Equal(t, open311.Params{"status": "open", "start": "03-01-2010", "page": "2"}, ro.params())
	assert.Empty(t, ro.Params["status"], "flag map must not be modified")
}

func TestPostOptions_Fields(t *testing.T) {
	po := &PostOptions{Name: "Zach Williams", Lat: "37.76", Fields: map[string]string{"email": "z@example.com"}}

	assert.Equal(t, open311.Params{
		"name":  "Zach Williams",
		"lat":   "37.76",
		"email": "z@example.com",
	}, po.fields())
}

func TestSandboxCommand_StopsWithContext(t *testing.T) {
	isolate(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	cmd := NewOpen311Command(models.NewAppBuildInfo("", "", ""))
	cmd.SetArgs([]string{"sandbox", "--address", addr, "--sandbox-key", "secret"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, out.String(), "http://"+addr+"/")
}

func TestSandboxCommand_InvalidAddress(t *testing.T) {
	isolate(t)

	_, err := run(t, "sandbox", "--address", "not-an-address")
	assert.Error(t, err)
}
