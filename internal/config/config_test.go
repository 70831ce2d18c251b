package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/pkg/idgen"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
seed_path: fixtures/q3.yaml
log:
  level: DEBUG
  format: json
id_strategy: sequence
delete_policy: Cascade
currency: eur
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		SeedPath:     "fixtures/q3.yaml",
		Log:          LogConfig{Level: "debug", Format: LogFormatJSON},
		IDStrategy:   idgen.StrategySequence,
		DeletePolicy: domain.DeleteCascade,
		Currency:     "EUR",
	}, cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "delete_policy: reject\n"))
	require.NoError(t, err)

	assert.Equal(t, domain.DeleteReject, cfg.DeletePolicy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "USD", cfg.Currency)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: warn\ndelete_policy: reject\n")

	t.Setenv(EnvSeedPath, "/tmp/seed.yaml")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvIDStrategy, "sequence")
	t.Setenv(EnvDeletePolicy, "cascade")
	t.Setenv(EnvCurrency, "GBP")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/seed.yaml", cfg.SeedPath)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	assert.Equal(t, idgen.StrategySequence, cfg.IDStrategy)
	assert.Equal(t, domain.DeleteCascade, cfg.DeletePolicy)
	assert.Equal(t, "GBP", cfg.Currency)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
log:
  level: loud
  format: xml
id_strategy: timestamp
delete_policy: ignore
currency: ABCD
`)

	_, err := Load(path)
	require.Error(t, err)

	for _, field := range []string{"log.level", "log.format", "id_strategy", "delete_policy", "currency"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeConfig(t, "log: [nope"))
	assert.ErrorContains(t, err, "parse config")
}
