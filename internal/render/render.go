// Package render writes footprint reports and reference catalogs as
// aligned text tables, JSON or YAML.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonmeter/internal/carbon"
	"github.com/rshade/carbonmeter/internal/greenops"
)

// Format names accepted by Write.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned for a format Write does not support.
var ErrUnknownFormat = errors.New("unknown output format")

// Document is everything one estimate run prints.
type Document struct {
	RunID         string                      `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Report        carbon.Report               `json:"report" yaml:"report"`
	Equivalencies *greenops.EquivalencyOutput `json:"equivalencies,omitempty" yaml:"equivalencies,omitempty"`

	// Details explains how each stage was derived, one line per stage.
	Details  []string `json:"details,omitempty" yaml:"details,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Write renders doc to w in format.
func Write(w io.Writer, format string, doc Document) error {
	switch format {
	case FormatTable:
		return writeReportTable(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing YAML encoder: %w", err)
	}
	return nil
}
