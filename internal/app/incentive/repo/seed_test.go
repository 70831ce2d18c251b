package repo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
)

func TestDefaultSeed(t *testing.T) {
	tables, err := DefaultSeed()
	require.NoError(t, err)

	require.Len(t, tables.Brands, 3)
	require.Len(t, tables.Programs, 5)
	assert.Empty(t, tables.Events)

	assert.Equal(t, domain.Brand{ID: "1", Name: "INFINIX", CreatedAt: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)}, tables.Brands[0])

	p := tables.Programs[0]
	assert.Equal(t, "PROG001", p.ID)
	assert.Equal(t, domain.TypeSellOut, p.Type)
	assert.Equal(t, 0.5, p.Reward)
	assert.Equal(t, domain.StatusActive, p.Status)
	assert.Equal(t, domain.PaymentUnpaid, p.PaymentStatus)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), p.PeriodEnd)
}

func TestParseSeed_AppliesDefaults(t *testing.T) {
	doc := `
brands:
  - id: b1
    name: "  TECNO  "
programs:
  - id: p1
    brandId: b1
    typeProgram: cashback
    description: Back to school cashback.
    periodStart: 2024-08-01
    periodEnd: 2024-08-31
    target: 100
    achievement: 10
    reward: 2
`
	tables, err := ParseSeed([]byte(doc), "inline")
	require.NoError(t, err)

	assert.Equal(t, "TECNO", tables.Brands[0].Name)
	assert.Equal(t, domain.TypeCashback, tables.Programs[0].Type)
	assert.Equal(t, domain.StatusPending, tables.Programs[0].Status)
	assert.Equal(t, domain.PaymentUnpaid, tables.Programs[0].PaymentStatus)
}

func TestParseSeed_ReportsEveryProblem(t *testing.T) {
	doc := `
brands:
  - id: b1
    name: A
  - id: b1
    name: DUPLICATE
  - name: NO ID
programs:
  - id: p1
    brandId: b1
    typeProgram: Rebate
    description: short
    periodStart: 2024-08-31
    periodEnd: 2024-08-01
`
	_, err := ParseSeed([]byte(doc), "inline")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrBrandExists)
	assert.ErrorIs(t, err, domain.ErrMissingID)

	ve, ok := domain.AsValidationErrors(err)
	require.True(t, ok)
	assert.NotEmpty(t, ve)

	msg := err.Error()
	assert.Contains(t, msg, "brands[0] (b1)")
	assert.Contains(t, msg, "programs[0] (p1)")
	assert.Contains(t, msg, "End date cannot be before start date.")
}

func TestParseSeed_Malformed(t *testing.T) {
	_, err := ParseSeed([]byte("brands: [unterminated"), "inline")
	assert.ErrorContains(t, err, "parse inline")
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brands:\n  - id: x\n    name: XIAOMI\n"), 0o600))

	tables, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Len(t, tables.Brands, 1)
	assert.Empty(t, tables.Programs)

	_, err = LoadSeedFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
