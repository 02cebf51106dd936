package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.ServerURL)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "download", c.DownloadDir)
}

func TestLoadConfig_NoArgsGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_url":            "http://file:9000/",
		"online_check_interval": "10s",
		"log_format":            "zap",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-a", "http://flag:8000"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:8000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, "zap", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout, "untouched keys keep defaults")
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"-c", "/does/not/exist.json"})
	assert.Error(t, err)

	_, err = LoadConfig([]string{"-i", "abc"})
	assert.Error(t, err)
}
