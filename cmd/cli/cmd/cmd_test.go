package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"derivatives-case-study/internal/data"
	"derivatives-case-study/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetDir = "../../../examples/contracts"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestLoss(t *testing.T) {
	out, err := run(t, "loss", "--notional", "15000000", "--strike", "1.65", "--months", "12", "--initial-rate", "1.60", "--rate", "2.00")
	require.NoError(t, err, out)
	assert.Contains(t, out, "63,000,000.00")
	assert.Contains(t, out, "420.00%")
	assert.Contains(t, out, "LOSS")
	assert.Contains(t, out, "depreciation")

	_, err = run(t, "loss", "--rate", "2.0", "--elapsed", "13")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))

	_, err = run(t, "loss")
	assert.Error(t, err)
}

func TestSimulate_ScenarioToCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "results", "ledger.csv")
	out, err := run(t, "simulate", "--pattern", "sudden_shock", "--end", "2.00", "--shock-month", "6", "--out", csvPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "36,750,000.00")
	assert.Contains(t, out, "(month 6)")

	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "month,rate,regime,monthly_loss,cumulative_loss", lines[0])
	assert.Equal(t, "6,2.0000,LOSS,5250000.00,5250000.00", lines[6])
}

func TestSimulate_PathSources(t *testing.T) {
	out, err := run(t, "simulate", "--historical", "--quiet")
	require.NoError(t, err, out)
	assert.Contains(t, out, data.Historical2008Label)
	assert.NotContains(t, out, "cumulative")

	_, err = run(t, "simulate", "--historical", "--months", "6")
	assert.True(t, errors.Is(err, model.ErrPreconditionViolation))

	pathFile := filepath.Join(t.TempDir(), "path.json")
	require.NoError(t, data.SavePathJSON(pathFile, &data.PathFile{Name: "custom path", Path: data.Historical2008()}))
	out, err = run(t, "simulate", "--path", pathFile)
	require.NoError(t, err, out)
	assert.Contains(t, out, "custom path")

	_, err = run(t, "simulate", "--path", pathFile, "--historical")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestScenario_Out(t *testing.T) {
	pathFile := filepath.Join(t.TempDir(), "crisis.json")
	out, err := run(t, "scenario", "--pattern", "crisis_reversal", "--end", "2.40", "--out", pathFile)
	require.NoError(t, err, out)

	pf, err := data.LoadPathJSON(pathFile)
	require.NoError(t, err)
	assert.Equal(t, "2008 Crisis Pattern", pf.Name)
	require.Len(t, pf.Path, 12)
	assert.InDelta(t, 2.40, pf.Path[11].Rate, 1e-9)

	out, err = run(t, "scenario", "--pattern", "gradual")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Gradual Change")
	assert.Contains(t, out, "2.0000")
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "--end", "2.00")
	require.NoError(t, err, out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "Typical Pre-2008 Pattern")
}

func TestProfile(t *testing.T) {
	out, err := run(t, "profile", "--risk")
	require.NoError(t, err, out)
	assert.Contains(t, out, "750.00%")

	out, err = run(t, "profile", "--preset-dir", presetDir, "--preset", "textbook", "--points", "11", "--low", "1.5", "--high", "2.0")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Losses start at")
	assert.Contains(t, out, "NO_LOSS")
}

func TestHedge(t *testing.T) {
	out, err := run(t, "hedge", "--preset-dir", presetDir, "--preset", "aracruz_2008")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Significantly over-hedged")

	out, err = run(t, "hedge", "--h1", "0.95", "--h2", "0.25", "--margin", "0.25", "--ebit", "500e6", "--actual", "1.5e9")
	require.NoError(t, err, out)
	assert.Contains(t, out, "3.05")
	assert.Contains(t, out, "1,525,000,000.00")
	assert.Contains(t, out, "Appropriately hedged")

	out, err = run(t, "hedge", "--h1", "0.95", "--h2", "0.25", "--sensitivity")
	require.NoError(t, err, out)
	assert.Contains(t, out, "5.00%")
	assert.Contains(t, out, "50.00%")

	_, err = run(t, "hedge", "--margin", "0")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestConfigInitValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.yaml")
	out, err := run(t, "config", "init", "--output", path)
	require.NoError(t, err, out)

	out, err = run(t, "config", "validate", "--file", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "15,000,000.00")
	assert.Contains(t, out, "gradual_change")

	out, err = run(t, "simulate", "--config", path, "--quiet")
	require.NoError(t, err, out)
}

// The default shock month is derived from the effective duration, after
// --months has replaced the file's 12.
func TestSimulate_MonthsOverrideMovesDefaultShock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.yaml")
	out, err := run(t, "config", "init", "--output", path)
	require.NoError(t, err, out)

	out, err = run(t, "simulate", "--config", path, "--months", "4", "--pattern", "sudden_shock", "--quiet")
	require.NoError(t, err, out)
	// Shock at month 2 of 4: three months at 2.00 against 1.65.
	assert.Contains(t, out, "15,750,000.00")
	assert.Contains(t, out, "(month 2)")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stf dev\n", out)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "0.00", money(0))
	assert.Equal(t, "999.50", money(999.5))
	assert.Equal(t, "1,000.00", money(1000))
	assert.Equal(t, "-12,345,678.90", money(-12345678.9))
}
