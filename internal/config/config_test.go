package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Fetch.TimeoutSec)
	assert.Equal(t, "1y", cfg.Fetch.DefaultPeriod)
	assert.NotEmpty(t, cfg.Watchlist.Cron)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `server:
  port: "9090"
primary:
  app_id: FILE-APP
fetch:
  timeout_sec: 3
watchlist:
  tickers: [RELIANCE, TCS]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Setenv("FYERS_ACCESS_TOKEN", "env-token")
	t.Setenv("FETCH_TIMEOUT_SEC", "7")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "FILE-APP", cfg.Primary.AppID)
	assert.Equal(t, "env-token", cfg.Primary.AccessToken)
	assert.Equal(t, 7, cfg.Fetch.TimeoutSec, "env overrides file")
	assert.Equal(t, []string{"RELIANCE", "TCS"}, cfg.Watchlist.Tickers)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.Primary.AccessToken = "token-without-app-id"
	assert.Error(t, cfg.Validate())

	cfg.Primary.AppID = "APP"
	assert.NoError(t, cfg.Validate())

	cfg.Fetch.TimeoutSec = 0
	assert.Error(t, cfg.Validate())
}
