package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonmeter/internal/carbon"
	"github.com/rshade/carbonmeter/internal/config"
	"github.com/rshade/carbonmeter/internal/dataset"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type estimateJSON struct {
	RunID  string `json:"run_id"`
	Report struct {
		Embodied struct {
			ITPowerKW float64 `json:"it_power_kw"`
			Server    struct {
				Model string `json:"model"`
			} `json:"server"`
			Network struct {
				ServerCount float64 `json:"server_count"`
				Topology    string  `json:"topology"`
			} `json:"network"`
		} `json:"embodied"`
		Operational struct {
			DailyCarbonKg float64 `json:"daily_carbon_kg"`
			Formula       string  `json:"daily_carbon_formula"`
		} `json:"operational"`
		Construction struct {
			FloorAreaSqft float64 `json:"floor_area_sqft"`
		} `json:"construction"`
		Totals carbon.Totals `json:"totals"`
	} `json:"report"`
	Details  []string `json:"details"`
	Warnings []string `json:"warnings"`
}

func estimate(t *testing.T, args ...string) estimateJSON {
	t.Helper()
	stdout, stderr, err := execute(t, append([]string{"estimate", "-o", "json"}, args...)...)
	require.NoError(t, err, stderr)

	var got estimateJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got), stdout)
	return got
}

func TestEstimate_DefaultsJSON(t *testing.T) {
	got := estimate(t)

	_, err := uuid.Parse(got.RunID)
	require.NoError(t, err)

	// 4000 × 0.5 / 1.2
	assert.InDelta(t, 1666.67, got.Report.Embodied.ITPowerKW, 0.01)
	assert.Equal(t, carbon.DefaultServerModel, got.Report.Embodied.Server.Model)
	assert.InDelta(t, 24_960.0, got.Report.Operational.DailyCarbonKg, 1e-6)
	assert.Equal(t, "legacy", got.Report.Operational.Formula)
	assert.InDelta(t, 32_660.0, got.Report.Totals.ConstructionKg, 1e-6)
	assert.InDelta(t,
		got.Report.Totals.ITManufacturingKg+got.Report.Totals.ConstructionKg+
			got.Report.Totals.OperationalKg+got.Report.Totals.RecyclingKg,
		got.Report.Totals.NetLifecycleKg, 1e-3)
	assert.Empty(t, got.Warnings)

	require.Len(t, got.Details, 4)
	assert.Contains(t, got.Details[0], "Embodied IT")
	assert.Contains(t, got.Details[3], "Recycling")
}

func TestEstimate_Flags(t *testing.T) {
	got := estimate(t,
		"--power-capacity", "8000",
		"--pue", "2",
		"--utilization", "1",
		"--server-model", "dell-r740",
		"--topology", "Spine Leaf",
		"--server-count", "1000",
		"--floor-area", "10000",
		"--corrected-daily-carbon",
	)

	// 8000 × 1 / 2
	assert.InDelta(t, 4000.0, got.Report.Embodied.ITPowerKW, 1e-9)
	assert.Equal(t, "Dell R740", got.Report.Embodied.Server.Model)
	assert.Equal(t, "spine-leaf", got.Report.Embodied.Network.Topology)
	assert.Equal(t, 1000.0, got.Report.Embodied.Network.ServerCount)
	assert.Equal(t, 10_000.0, got.Report.Construction.FloorAreaSqft)
	assert.Equal(t, "corrected", got.Report.Operational.Formula)
	// 0.026 × 4000 × 24
	assert.InDelta(t, 2496.0, got.Report.Operational.DailyCarbonKg, 1e-6)
}

// TestEstimate_Precedence verifies flag > env > file > default.
func TestEstimate_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embodied:\n  pue: 1.6\n  utilization: 0.8\n"), 0o600))

	// file only: 4000 × 0.8 / 1.6
	got := estimate(t, "--config", path)
	assert.InDelta(t, 2000.0, got.Report.Embodied.ITPowerKW, 1e-9)

	// env beats file: 4000 × 0.8 / 2
	t.Setenv(config.EnvPUE, "2")
	got = estimate(t, "--config", path)
	assert.InDelta(t, 1600.0, got.Report.Embodied.ITPowerKW, 1e-9)

	// flag beats env: 4000 × 0.8 / 4
	got = estimate(t, "--config", path, "--pue", "4")
	assert.InDelta(t, 800.0, got.Report.Embodied.ITPowerKW, 1e-9)
}

func TestEstimate_GridRegion(t *testing.T) {
	got := estimate(t, "--grid-region", "eu-north-1", "--corrected-daily-carbon")
	// 0.0088 kg/kWh × 40,000 kWh
	assert.InDelta(t, 352.0, got.Report.Operational.DailyCarbonKg, 1e-6)

	_, _, err := execute(t, "estimate", "--grid-region", "mars-1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "estimate", "--grid-region", "global", "--carbon-intensity", "0.5")
	assert.ErrorContains(t, err, "none of the others can be")
}

func TestEstimate_InvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantField string
	}{
		{"pue below one", []string{"--pue", "0.9"}, carbon.FieldPUE},
		{"odd ports", []string{"--port-count", "3"}, carbon.FieldPortCount},
		{"zero floor area", []string{"--floor-area", "0"}, carbon.FieldFloorArea},
		{"zero lifetime", []string{"--lifetime-years", "0"}, carbon.FieldLifetimeYears},
		{"NaN pue", []string{"--pue", "NaN"}, carbon.FieldPUE},
		{"infinite capacity", []string{"--power-capacity", "+Inf"}, carbon.FieldPowerCapacity},
		{"NaN server count", []string{"--server-count", "NaN"}, carbon.FieldServerCount},
		{"infinite floor area", []string{"--floor-area", "Inf"}, carbon.FieldFloorArea},
		{"NaN wue", []string{"--wue", "NaN"}, carbon.FieldWUE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"estimate"}, tt.args...)...)
			require.ErrorIs(t, err, carbon.ErrInvalidParameter)

			var ipe *carbon.InvalidParameterError
			require.ErrorAs(t, err, &ipe)
			assert.Equal(t, tt.wantField, ipe.Field)
		})
	}
}

// TestEstimate_NonFiniteEnvRejected verifies a NaN from the environment
// fails with a parameter error before anything is rendered.
func TestEstimate_NonFiniteEnvRejected(t *testing.T) {
	t.Setenv(config.EnvPUE, "NaN")

	for _, format := range []string{"table", "json"} {
		t.Run(format, func(t *testing.T) {
			stdout, _, err := execute(t, "estimate", "-o", format)
			require.ErrorIs(t, err, carbon.ErrInvalidParameter)

			var ipe *carbon.InvalidParameterError
			require.ErrorAs(t, err, &ipe)
			assert.Equal(t, carbon.FieldPUE, ipe.Field)
			assert.Empty(t, stdout)
		})
	}
}

func TestEstimate_TableShowsDetails(t *testing.T) {
	stdout, _, err := execute(t, "estimate")
	require.NoError(t, err)

	assert.Contains(t, stdout, "DETAILS")
	assert.Contains(t, stdout, "Embodied IT:")
	assert.Contains(t, stdout, "(legacy formula)")
}

func TestEstimate_WarningsAreNotFailures(t *testing.T) {
	got := estimate(t, "--utilization", "0.1", "--server-model", "Dell R750")

	require.Len(t, got.Warnings, 2)
	assert.Contains(t, got.Warnings[0], "utilization")
	assert.Contains(t, got.Warnings[1], "Dell R750")
}

func TestEstimate_TableWithEquivalencies(t *testing.T) {
	stdout, _, err := execute(t, "estimate", "--equivalencies")
	require.NoError(t, err)

	assert.Contains(t, stdout, "LIFECYCLE TOTALS")
	assert.Contains(t, stdout, "EQUIVALENCIES")
	assert.Contains(t, stdout, "Equivalent to driving")
	assert.Contains(t, stdout, "NOTES")
}

func TestEstimate_BadTopologyAndOutput(t *testing.T) {
	_, _, err := execute(t, "estimate", "--topology", "ring")
	assert.ErrorContains(t, err, "unknown network topology")

	_, _, err = execute(t, "estimate", "-o", "xml")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLogging_JSONIncludesRunID(t *testing.T) {
	stdout, stderr, err := execute(t, "estimate", "-o", "json", "--log-format", "json", "--debug")
	require.NoError(t, err)

	var got estimateJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))

	assert.Contains(t, stderr, `"run_id":"`+got.RunID+`"`)
	assert.Contains(t, stderr, "estimate complete")
	assert.Contains(t, stderr, "command started")
}

func TestLogging_InvalidEnvReplayed(t *testing.T) {
	t.Setenv(config.EnvWUE, "lots")

	_, stderr, err := execute(t, "estimate", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "invalid environment value")
	assert.Contains(t, stderr, config.EnvWUE)
	assert.Contains(t, stderr, `"level":"warn"`)
}

func TestLogging_BadLevel(t *testing.T) {
	_, _, err := execute(t, "servers", "--log-level", "loud")
	assert.ErrorContains(t, err, "configuring logging")
}

func TestServers(t *testing.T) {
	stdout, _, err := execute(t, "servers")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dell R710")
	assert.Contains(t, stdout, "HPE ProLiant DL380")

	stdout, _, err = execute(t, "servers", "-o", "json")
	require.NoError(t, err)
	var profiles []carbon.ServerProfile
	require.NoError(t, json.Unmarshal([]byte(stdout), &profiles))
	assert.Equal(t, carbon.ServerProfiles(), profiles)
}

func TestGrids(t *testing.T) {
	stdout, _, err := execute(t, "grids")
	require.NoError(t, err)
	assert.Contains(t, stdout, "us-east-1")
	assert.Contains(t, stdout, "global")

	stdout, _, err = execute(t, "grids", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "region: global")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dc.yaml")
	t.Setenv(config.EnvPUE, "1.4")

	stdout, _, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration written to "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.4, cfg.Embodied.PUE)
	assert.Equal(t, carbon.DefaultPowerCapacityKW, cfg.Embodied.PowerCapacityKW)

	// The written file drives an estimate: 4000 × 0.5 / 1.4
	t.Setenv(config.EnvPUE, "")
	got := estimate(t, "--config", path)
	assert.InDelta(t, 1428.57, got.Report.Embodied.ITPowerKW, 0.01)
}

func TestConfigInit_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embodied:\n  pue: 1.9\n"), 0o600))

	_, _, err := execute(t, "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = execute(t, "config", "init", path, "--force")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, carbon.DefaultPUE, cfg.Embodied.PUE)
}

func TestConfigInit_DefaultPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, _, err = execute(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, defaultConfigPath)
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "inventory.xlsx")
	require.NoError(t, os.WriteFile(xlsx, []byte("PK"), 0o600))

	_, _, err := execute(t, "analyze", xlsx)
	assert.ErrorIs(t, err, dataset.ErrNotImplemented)

	_, _, err = execute(t, "analyze", filepath.Join(dir, "inventory.csv"))
	assert.ErrorIs(t, err, dataset.ErrUnsupportedFormat)

	_, _, err = execute(t, "analyze", filepath.Join(dir, "missing.xlsx"))
	assert.ErrorContains(t, err, "opening dataset")

	_, _, err = execute(t, "analyze")
	assert.Error(t, err)
}

type fakeAnalyzer struct{}

func (fakeAnalyzer) Analyze(_ context.Context, name string, _ io.Reader) (dataset.Summary, error) {
	return dataset.Summary{FileName: filepath.Base(name), Rows: 12, ServerCount: 40}, nil
}

// TestRunAnalyze_Summary verifies a working analyzer's summary is printed.
func TestRunAnalyze_Summary(t *testing.T) {
	xlsx := filepath.Join(t.TempDir(), "racks.xlsx")
	require.NoError(t, os.WriteFile(xlsx, []byte("PK"), 0o600))

	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())

	s := &session{logger: zerolog.Nop()}
	require.NoError(t, s.runAnalyze(cmd, fakeAnalyzer{}, xlsx))
	assert.Equal(t, "racks.xlsx: 12 rows, 40.00 servers\n", out.String())
}
