package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, 5*time.Second, cfg.LoadTimeout)
	assert.True(t, cfg.FileCache)
	assert.Equal(t, 15*time.Second, cfg.Timeouts.Shutdown)
	assert.Empty(t, cfg.RedisUrl)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("PAGE_SIZE", "20")
	t.Setenv("LOAD_TIMEOUT", "250ms")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("WRITE_TIMEOUT", "30s")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 250*time.Millisecond, cfg.LoadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.Write)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("PAGE_SIZE", "0")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PAGE_SIZE", "abc")
	_, err = Load()
	assert.Error(t, err)
}

func TestPolicy(t *testing.T) {
	cfg := &Config{}
	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Contains(t, p.ExcludedParents, "IT for the IT department")

	cfg.LegacyPolicy = true
	p, err = cfg.Policy()
	require.NoError(t, err)
	assert.NotContains(t, p.ExcludedParents, "IT for the IT department")

	cfg.PolicyFile = filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(cfg.PolicyFile, []byte("excludedStatuses: [New, Retired]\n"), 0o644))
	p, err = cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, []string{"New", "Retired"}, p.ExcludedStatuses)
}

func TestSetupLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	require.NoError(t, cfg.SetupLogging())
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	cfg.LogFormat = "xml"
	assert.Error(t, cfg.SetupLogging())

	cfg.LogLevel = "loud"
	assert.Error(t, cfg.SetupLogging())
}
