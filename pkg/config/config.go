package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/DFE-Digital/fips-v4/pkg/common"
	"github.com/DFE-Digital/fips-v4/pkg/index"
)

type Config struct {
	DataDir       string        `env:"DATA_DIR" envDefault:"data"`
	ListenAddress string        `env:"LISTEN_ADDRESS" envDefault:":8080"`
	PageSize      int           `env:"PAGE_SIZE" envDefault:"12"`
	LoadTimeout   time.Duration `env:"LOAD_TIMEOUT" envDefault:"5s"`
	FileCache     bool          `env:"FILE_CACHE" envDefault:"true"`
	WatchFiles    bool          `env:"WATCH_FILES" envDefault:"false"`

	RedisUrl      string        `env:"REDIS_URL"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDb       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTtl      time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	RabbitUrl    string `env:"RABBIT_URL"`
	RabbitPrefix string `env:"RABBIT_PREFIX" envDefault:"fips"`

	PolicyFile   string `env:"POLICY_FILE"`
	LegacyPolicy bool   `env:"LEGACY_POLICY" envDefault:"false"`
	EmailDomain  string `env:"EMAIL_DOMAIN" envDefault:"education.gov.uk"`
	ShowEmails   bool   `env:"SHOW_EMAILS" envDefault:"true"`

	AllowedOrigins  []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	EnableProfiling bool     `env:"ENABLE_PROFILING" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Timeouts common.TimeoutConfig
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.LoadTimeout <= 0 {
		return nil, fmt.Errorf("LOAD_TIMEOUT must be positive, got %s", cfg.LoadTimeout)
	}
	return cfg, nil
}

// Policy returns the exclusion policy, read from PolicyFile when set.
func (c *Config) Policy() (index.ExclusionPolicy, error) {
	base := index.DefaultPolicy()
	if c.LegacyPolicy {
		base = index.LegacyPolicy()
	}
	if c.PolicyFile == "" {
		return base, nil
	}
	return index.LoadPolicy(c.PolicyFile, base)
}

// SetupLogging applies LogLevel and LogFormat to the standard logrus logger.
func (c *Config) SetupLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	switch strings.ToLower(c.LogFormat) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
