package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/incentive-tracker/internal/services"
	"github.com/light-bringer/incentive-tracker/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	a := &app{options: []services.Option{services.WithClock(testutil.NewFixedClock())}}
	root := newRootCmd(a)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSummaryCommand(t *testing.T) {
	out, err := run(t, "summary")
	require.NoError(t, err)

	assert.Contains(t, out, "$657,500.00")
	assert.Contains(t, out, "IPHONE")
	assert.Contains(t, out, "$630k")
}

func TestBrandsCommand(t *testing.T) {
	out, err := run(t, "brands", "--search", "it")
	require.NoError(t, err)
	assert.Contains(t, out, "ITEL")
	assert.NotContains(t, out, "IPHONE")

	out, err = run(t, "brands", "--search", "nokia")
	require.NoError(t, err)
	assert.Contains(t, out, "No brands found.")
}

func TestProgramsCommand(t *testing.T) {
	out, err := run(t, "programs", "--brand", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "PROG002")
	assert.Contains(t, out, "PROG005")
	assert.NotContains(t, out, "PROG001")

	out, err = run(t, "programs", "--search", "rebate")
	require.NoError(t, err)
	assert.Contains(t, out, "No programs found.")

	out, err = run(t, "programs", "--board", "--brand", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending (1)")
	assert.Contains(t, out, "No programs in this stage.")
}

func TestProgramCommand(t *testing.T) {
	out, err := run(t, "program", "PROG001")
	require.NoError(t, err)
	assert.Contains(t, out, "INFINIX")
	assert.Contains(t, out, "January 1, 2024")
	assert.Contains(t, out, "90%")

	_, err = run(t, "program", "NOPE")
	assert.Error(t, err)
}

func TestApplyCommand(t *testing.T) {
	changes := writeFile(t, "changes.yaml", `
changes:
  - op: create_brand
    brand: {name: TECNO}
  - op: create_brand
    brand: {name: ""}
  - op: delete_brand
    id: "1"
`)

	out, err := run(t, "apply", changes)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ #1 create_brand")
	assert.Contains(t, out, "✗ #2 create_brand")
	assert.Contains(t, out, "name: Brand name is required.")
	assert.Contains(t, out, "2 program(s) orphaned")
	assert.Contains(t, out, "TECNO")
}

func TestEventsCommand(t *testing.T) {
	out, err := run(t, "events")
	require.NoError(t, err)
	assert.Contains(t, out, "No changes recorded.")

	changes := writeFile(t, "changes.yaml", "changes:\n  - op: delete_program\n    id: PROG002\n")
	out, err = run(t, "events", "--changes", changes)
	require.NoError(t, err)
	assert.Contains(t, out, "Program Deleted")
	assert.Contains(t, out, "PROG002")
}

func TestGlobalFlags(t *testing.T) {
	seed := writeFile(t, "seed.yaml", "brands:\n  - id: x\n    name: XIAOMI\n")
	out, err := run(t, "brands", "--seed", seed, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "XIAOMI")
	assert.NotContains(t, out, "INFINIX")

	cfg := writeFile(t, "tracker.yaml", "delete_policy: nope\n")
	_, err = run(t, "summary", "--config", cfg)
	assert.ErrorContains(t, err, "delete_policy")
}
