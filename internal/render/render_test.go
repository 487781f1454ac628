package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonmeter/internal/carbon"
	"github.com/rshade/carbonmeter/internal/greenops"
)

func defaultDocument(t *testing.T) Document {
	t.Helper()
	report, err := carbon.Compute(carbon.DefaultInputs())
	require.NoError(t, err)

	eq, err := greenops.CalculateKg(report.Totals.NetLifecycleKg)
	require.NoError(t, err)

	return Document{
		RunID:         "3f1c2a9e-0000-4000-8000-000000000000",
		Report:        report,
		Equivalencies: &eq,
		Details:       report.Details(),
		Warnings:      []string{"unknown server model \"Dell R750\", using Dell R710"},
	}
}

func TestWrite_JSON(t *testing.T) {
	doc := defaultDocument(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, doc))

	var got struct {
		RunID  string `json:"run_id"`
		Report struct {
			Embodied struct {
				Network struct {
					Topology string `json:"topology"`
				} `json:"network"`
			} `json:"embodied"`
			Operational struct {
				Formula string `json:"daily_carbon_formula"`
			} `json:"operational"`
			Totals struct {
				ConstructionKg float64 `json:"construction_kg"`
				NetLifecycleKg float64 `json:"net_lifecycle_kg"`
			} `json:"totals"`
		} `json:"report"`
		Equivalencies struct {
			Results []struct {
				Type string `json:"type"`
			} `json:"results"`
		} `json:"equivalencies"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, doc.RunID, got.RunID)
	assert.Equal(t, "fat-tree", got.Report.Embodied.Network.Topology)
	assert.Equal(t, "legacy", got.Report.Operational.Formula)
	assert.InDelta(t, 32_660.0, got.Report.Totals.ConstructionKg, 1e-6)
	assert.InDelta(t, doc.Report.Totals.NetLifecycleKg, got.Report.Totals.NetLifecycleKg, 1e-3)
	require.NotEmpty(t, got.Equivalencies.Results)
	assert.Equal(t, "MilesDriven", got.Equivalencies.Results[0].Type)
	assert.Equal(t, doc.Report.Details(), got.Details)
}

func TestWrite_YAML(t *testing.T) {
	doc := defaultDocument(t)
	doc.Equivalencies = nil

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, doc))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.NotContains(t, got, "equivalencies")

	report, ok := got["report"].(map[string]any)
	require.True(t, ok)
	totals, ok := report["totals"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 32_660.0, totals["construction_kg"], 1e-6)
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, defaultDocument(t)))
	out := buf.String()

	for _, want := range []string{
		"DATA CENTER CARBON FOOTPRINT",
		"Run: 3f1c2a9e",
		"LIFECYCLE TOTALS",
		"EMBODIED IT",
		"CONSTRUCTION",
		"OPERATIONAL",
		"RECYCLING",
		"EQUIVALENCIES",
		"DETAILS",
		"NOTES",
		"32,660.00",     // worst-case construction
		"45,555,425.51", // total operational incl. water
		"-198.80",       // net recycling per server
		"fat-tree, 4 ports, 4 pods",
		"Dell R750",
	} {
		assert.Contains(t, out, want)
	}
}

// valueColumn returns where the value starts after a label column.
func valueColumn(line string) int {
	gap := strings.Index(line, "  ")
	if gap < 0 {
		return -1
	}
	return gap + len(line[gap:]) - len(strings.TrimLeft(line[gap:], " "))
}

// TestWrite_TableAligned verifies tabwriter aligns the value column.
func TestWrite_TableAligned(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, defaultDocument(t)))

	var cols []int
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(l, "IT manufacturing") || strings.HasPrefix(l, "Net lifecycle") {
			cols = append(cols, valueColumn(l))
		}
	}
	require.Len(t, cols, 2)
	assert.Positive(t, cols[0])
	assert.Equal(t, cols[0], cols[1])
}

// TestWrite_TableDetails verifies each stage explanation is printed in order
// and the section is omitted when there are none.
func TestWrite_TableDetails(t *testing.T) {
	doc := defaultDocument(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, doc))
	out := buf.String()

	start := strings.Index(out, "DETAILS")
	require.Positive(t, start)
	prev := start
	for _, d := range doc.Details {
		idx := strings.Index(out, d)
		require.Positive(t, idx, "missing detail %q", d)
		assert.Greater(t, idx, prev)
		prev = idx
	}
	assert.Less(t, prev, strings.Index(out, "NOTES"))

	doc.Details = nil
	buf.Reset()
	require.NoError(t, Write(&buf, FormatTable, doc))
	assert.NotContains(t, buf.String(), "DETAILS")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", defaultDocument(t))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
