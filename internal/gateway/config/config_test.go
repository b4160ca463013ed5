package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, 3000, c.Port)
	assert.Equal(t, ":3000", c.ListenAddr())
	assert.Equal(t, "localhost:3001", c.AuthServiceAddr())
	assert.Equal(t, 5*time.Second, c.RPCTimeout)
	assert.Equal(t, 10, c.RateLimit)
	assert.Equal(t, time.Minute, c.RateWindow)
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gw.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auth_service_host":"auth","rpc_timeout":"2s","rate_limit":0}`), 0o600))
	withArgs(t, "-c", path)

	got := defaults()
	parseJson(&got)

	want := defaults()
	want.AuthServiceHost = "auth"
	want.RPCTimeout = 2 * time.Second
	want.RateLimit = 0

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("GATEWAY_PORT", "8080")
	t.Setenv("AUTH_SERVICE_HOST", "auth-service")
	t.Setenv("RPC_TIMEOUT", "750ms")
	t.Setenv("RATE_WINDOW", "30s")

	got := defaults()
	parseEnv(&got)

	assert.Equal(t, 8080, got.Port)
	assert.Equal(t, "auth-service:3001", got.AuthServiceAddr())
	assert.Equal(t, 750*time.Millisecond, got.RPCTimeout)
	assert.Equal(t, 30*time.Second, got.RateWindow)
	assert.Equal(t, 10, got.RateLimit)
}

func TestParseFlags(t *testing.T) {
	withArgs(t, "-p", "9000", "-a", "10.0.0.5", "-P", "4001", "-t", "1s", "-r", "0", "-l", "debug")

	got := defaults()
	parseFlags(&got)

	want := defaults()
	want.Port = 9000
	want.AuthServiceHost = "10.0.0.5"
	want.AuthServicePort = 4001
	want.RPCTimeout = time.Second
	want.RateLimit = 0
	want.LogLevel = "debug"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Setenv("GATEWAY_PORT", "8080")
	withArgs(t, "-p", "9090")

	got := LoadConfig()
	assert.Equal(t, 9090, got.Port)
}
