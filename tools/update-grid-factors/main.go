// Command update-grid-factors regenerates the grid carbon intensity presets
// (internal/carbon/grid_factors_data.go) from the Cloud Carbon Footprint
// (CCF) cloud-carbon-coefficients repository.
//
// Usage:
//
//	go run ./tools/update-grid-factors [--dry-run] [--validate] [--output FILE]
//
// When the CCF data cannot be fetched the current presets are written back
// unchanged.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	ccfGridFactorsURL = "https://raw.githubusercontent.com/cloud-carbon-footprint/" +
		"cloud-carbon-coefficients/main/data/grid-emissions-factors-aws.json"

	fetchTimeout = 30 * time.Second

	// Valid range in metric tons CO2e per kWh.
	minValidFactor = 0.0
	maxValidFactor = 2.0

	fileHeader = `// Code generated by tools/update-grid-factors; DO NOT EDIT.

package carbon

// GridEmissionFactors maps grid regions to carbon intensity in metric tons
// CO2-eq per kWh.
//
// Source: Cloud Carbon Footprint methodology
// Data vintage: %s
// Reference: https://www.cloudcarbonfootprint.org/docs/methodology
var GridEmissionFactors = map[string]float64{
%s}
`
)

// regionLocations names the grid regions offered as presets. Regions in the
// CCF data but not listed here are skipped.
var regionLocations = map[string]struct {
	location string
	note     string
}{
	"us-east-1":      {"Virginia", "SERC"},
	"us-east-2":      {"Ohio", "RFC"},
	"us-west-1":      {"N. California", "WECC"},
	"us-west-2":      {"Oregon", "WECC"},
	"ca-central-1":   {"Canada", ""},
	"eu-west-1":      {"Ireland", ""},
	"eu-west-2":      {"London", ""},
	"eu-west-3":      {"Paris", ""},
	"eu-central-1":   {"Frankfurt", ""},
	"eu-north-1":     {"Sweden", "very low carbon"},
	"eu-south-1":     {"Milan", ""},
	"ap-southeast-1": {"Singapore", ""},
	"ap-southeast-2": {"Sydney", ""},
	"ap-northeast-1": {"Tokyo", ""},
	"ap-northeast-2": {"Seoul", ""},
	"ap-northeast-3": {"Osaka", ""},
	"ap-south-1":     {"Mumbai", ""},
	"ap-east-1":      {"Hong Kong", ""},
	"me-south-1":     {"Bahrain", ""},
	"sa-east-1":      {"São Paulo", "very low carbon"},
	"af-south-1":     {"Cape Town", ""},
}

// gridFactor is one preset row.
type gridFactor struct {
	Region string
	Factor float64
}

// ccfGridData is one entry of the CCF JSON document.
type ccfGridData struct {
	Region       string  `json:"region"`
	MtCO2ePerKwh float64 `json:"mtCO2ePerKwh"`
}

func main() {
	dryRun := flag.Bool("dry-run", false, "print the generated file instead of writing it")
	validate := flag.Bool("validate", true, "fail when a factor is outside the valid range")
	output := flag.String("output", "./internal/carbon/grid_factors_data.go", "file to generate")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(context.Background(), logger, ccfGridFactorsURL, *output, *dryRun, *validate, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("update failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, logger zerolog.Logger, url, output string, dryRun, validate bool, stdout io.Writer) error {
	logger.Info().Str("source", url).Msg("fetching grid emission factors")

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	factors, err := fetchGridFactors(ctx, http.DefaultClient, url)
	if err != nil {
		logger.Warn().Err(err).Msg("fetch failed, keeping current presets")
		factors = currentFactors()
	}

	if validate {
		if err := validateFactors(factors); err != nil {
			return err
		}
	}

	content, err := generateGridFactorsFile(factors, time.Now().Format("2006"))
	if err != nil {
		return err
	}

	if dryRun {
		_, err := stdout.Write(content)
		return err
	}

	if err := os.WriteFile(output, content, 0o644); err != nil { //nolint:gosec // generated source file
		return fmt.Errorf("writing %s: %w", output, err)
	}
	logger.Info().Str("output", output).Int("regions", len(factors)).Msg("grid factors updated")
	return nil
}

func fetchGridFactors(ctx context.Context, client *http.Client, url string) ([]gridFactor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching grid factors: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var data []ccfGridData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding grid factors: %w", err)
	}

	var factors []gridFactor
	for _, d := range data {
		if _, ok := regionLocations[d.Region]; ok {
			factors = append(factors, gridFactor{Region: d.Region, Factor: d.MtCO2ePerKwh})
		}
	}
	if len(factors) == 0 {
		return nil, errors.New("no known regions in grid factor data")
	}
	return factors, nil
}

// currentFactors mirrors the checked-in presets.
func currentFactors() []gridFactor {
	return []gridFactor{
		{"us-east-1", 0.000379},
		{"us-east-2", 0.000411},
		{"us-west-1", 0.000322},
		{"us-west-2", 0.000322},
		{"ca-central-1", 0.00012},
		{"eu-west-1", 0.0002786},
		{"eu-north-1", 0.0000088},
		{"ap-southeast-1", 0.000408},
		{"ap-southeast-2", 0.00079},
		{"ap-northeast-1", 0.000506},
		{"ap-south-1", 0.000708},
		{"sa-east-1", 0.0000617},
	}
}

func validateFactors(factors []gridFactor) error {
	var problems []string
	for _, f := range factors {
		if f.Factor < minValidFactor || f.Factor > maxValidFactor {
			problems = append(problems, fmt.Sprintf("%s: factor %.8f is outside [%.1f, %.1f] t/kWh",
				f.Region, f.Factor, minValidFactor, maxValidFactor))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("validation failed:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

// generateGridFactorsFile renders the data file, sorted by region and gofmt'd.
func generateGridFactorsFile(factors []gridFactor, vintage string) ([]byte, error) {
	sorted := append([]gridFactor(nil), factors...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Region < sorted[j].Region })

	var entries strings.Builder
	for _, f := range sorted {
		comment := regionLocations[f.Region].location
		if note := regionLocations[f.Region].note; note != "" {
			comment += " (" + note + ")"
		}
		fmt.Fprintf(&entries, "\t%q: %.8f, // %s\n", f.Region, f.Factor, comment)
	}

	src := fmt.Sprintf(fileHeader, vintage, entries.String())
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}
