// Package config loads dashboard settings from an optional YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/pkg/format"
	"github.com/light-bringer/incentive-tracker/internal/pkg/idgen"
)

// Environment variables that override file values.
const (
	EnvSeedPath     = "TRACKER_SEED_PATH"
	EnvLogLevel     = "TRACKER_LOG_LEVEL"
	EnvLogFormat    = "TRACKER_LOG_FORMAT"
	EnvIDStrategy   = "TRACKER_ID_STRATEGY"
	EnvDeletePolicy = "TRACKER_DELETE_POLICY"
	EnvCurrency     = "TRACKER_CURRENCY"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds all dashboard settings.
type Config struct {
	// SeedPath is the YAML record set to load. Empty selects the built-in seed.
	SeedPath string `yaml:"seed_path"`

	Log LogConfig `yaml:"log"`

	// IDStrategy selects how new brand and program ids are generated.
	IDStrategy idgen.Strategy `yaml:"id_strategy"`

	// DeletePolicy decides what happens to programs of a deleted brand.
	DeletePolicy domain.DeletePolicy `yaml:"delete_policy"`

	// Currency is the ISO 4217 code amounts are displayed in.
	Currency string `yaml:"currency"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
		IDStrategy:   idgen.StrategyUUID,
		DeletePolicy: domain.DeleteOrphan,
		Currency:     "USD",
	}
}

// Load reads path (when non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvSeedPath); v != "" {
		c.SeedPath = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := getenv(EnvIDStrategy); v != "" {
		c.IDStrategy = idgen.Strategy(v)
	}
	if v := getenv(EnvDeletePolicy); v != "" {
		c.DeletePolicy = domain.DeletePolicy(v)
	}
	if v := getenv(EnvCurrency); v != "" {
		c.Currency = v
	}
}

// Validate reports every invalid setting. Enum values are normalized in
// place.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	switch strings.ToLower(c.Log.Format) {
	case LogFormatConsole, LogFormatJSON:
		c.Log.Format = strings.ToLower(c.Log.Format)
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}

	if _, err := idgen.ForStrategy(c.IDStrategy, ""); err != nil {
		errs = append(errs, fmt.Errorf("id_strategy: %w", err))
	}

	if p, err := domain.ParseDeletePolicy(string(c.DeletePolicy)); err != nil {
		errs = append(errs, fmt.Errorf("delete_policy: %w", err))
	} else {
		c.DeletePolicy = p
	}

	c.Currency = strings.ToUpper(c.Currency)
	if _, err := format.New(c.Currency); err != nil {
		errs = append(errs, fmt.Errorf("currency: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
