package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCalc_JSONOutput(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "footprint.db")

	out, err := runCommand(t,
		"calc",
		"--db", dbPath,
		"--car-miles", "100",
		"--electricity", "300",
		"--renewable-percent", "50",
		"--output", "json",
	)
	require.NoError(t, err)

	var got struct {
		Result struct {
			TotalTonnes float64            `json:"total_tonnes"`
			BreakdownKg map[string]float64 `json:"breakdown_kg"`
			Category    string             `json:"category"`
		} `json:"result"`
		Comparison struct {
			Previous *struct{ ID string } `json:"previous"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.InDelta(t, 0.9114, got.Result.TotalTonnes, 1e-9)
	assert.InDelta(t, 492.0, got.Result.BreakdownKg["transport"], 1e-9)
	assert.InDelta(t, 419.4, got.Result.BreakdownKg["energy"], 1e-9)
	assert.Equal(t, "mixed", got.Result.Category)
	assert.Nil(t, got.Comparison.Previous, "first calculation has no prior data")
}

func TestCalc_SaveThenCompare(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "footprint.db")

	_, err := runCommand(t,
		"calc", "--db", dbPath, "--car-miles", "100", "--save", "--notes", "baseline")
	require.NoError(t, err)

	out, err := runCommand(t,
		"calc", "--db", dbPath, "--car-miles", "200")
	require.NoError(t, err)

	assert.Contains(t, out, "Up", "second larger calculation should compare upward")
}

func TestCalc_InputFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "footprint.db")
	inputPath := filepath.Join(dir, "input.yaml")

	content := "car_miles: 50\nelectricity_usage: 300\nrenewable_percent: 50\n"
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0600))

	out, err := runCommand(t,
		"calc",
		"--db", dbPath,
		"--input", inputPath,
		"--car-miles", "100", // overrides the file's 50
		"--output", "json",
	)
	require.NoError(t, err)

	var got struct {
		Result struct {
			TotalTonnes float64 `json:"total_tonnes"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 0.9114, got.Result.TotalTonnes, 1e-9)
}

func TestCalc_BadFactorsFileBlocksCalculation(t *testing.T) {
	dir := t.TempDir()
	factorsPath := filepath.Join(dir, "factors.yaml")
	require.NoError(t, os.WriteFile(factorsPath, []byte("transport:\n  car: 0.4\n"), 0600))

	_, err := runCommand(t,
		"calc",
		"--db", filepath.Join(dir, "footprint.db"),
		"--factors", factorsPath,
		"--car-miles", "100",
	)
	require.Error(t, err, "incomplete factors must fail rather than show a zero result")
}

func TestHistory_EmptyAndAfterSave(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "footprint.db")

	out, err := runCommand(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No calculations saved yet")

	_, err = runCommand(t,
		"calc", "--db", dbPath, "--car-miles", "100", "--save", "--notes", "jan")
	require.NoError(t, err)

	out, err = runCommand(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Trend:")
	assert.Contains(t, out, "jan")
}

func TestHistoryExport_CSV(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "footprint.db")
	csvPath := filepath.Join(dir, "out.csv")

	_, err := runCommand(t,
		"calc", "--db", dbPath, "--car-miles", "100", "--save")
	require.NoError(t, err)

	_, err = runCommand(t, "history", "export", "--db", dbPath, "--out", csvPath)
	require.NoError(t, err)

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one entry")
	assert.Equal(t, []string{"id", "category", "co2e_tonnes", "timestamp", "notes"}, records[0])
	assert.Equal(t, "mixed", records[1][1])
}

func TestHistoryDelete(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "footprint.db")

	_, err := runCommand(t,
		"calc", "--db", dbPath, "--car-miles", "100", "--save")
	require.NoError(t, err)

	out, err := runCommand(t, "calc", "--db", dbPath, "--output", "json", "--car-miles", "100")
	require.NoError(t, err)
	var got struct {
		Comparison struct {
			Previous *struct {
				ID string `json:"ID"`
			} `json:"previous"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Comparison.Previous)

	_, err = runCommand(t, "history", "delete", got.Comparison.Previous.ID, "--db", dbPath)
	require.NoError(t, err)

	_, err = runCommand(t, "history", "delete", got.Comparison.Previous.ID, "--db", dbPath)
	assert.Error(t, err, "double delete should fail")
}

func TestPlan_FromHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "footprint.db")

	_, err := runCommand(t, "plan", "--db", dbPath)
	require.Error(t, err, "no history and no --current")

	out, err := runCommand(t, "plan", "--db", dbPath, "--current", "10", "--target", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Month 1")
	assert.Contains(t, out, "transport")
}

func TestTips(t *testing.T) {
	out, err := runCommand(t, "tips", "energy")
	require.NoError(t, err)
	assert.Contains(t, out, "renewable")

	_, err = runCommand(t, "tips", "spaceflight")
	assert.Error(t, err)

	out, err = runCommand(t, "tips")
	require.NoError(t, err)
	assert.Contains(t, out, "transport:")
	assert.Contains(t, out, "shopping:")
}
