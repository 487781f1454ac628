// Package dataset is the extension point for analyzing uploaded data center
// inventory spreadsheets. Only the interface and a placeholder exist.
package dataset

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrNotImplemented is returned by Unimplemented for every supported file.
	ErrNotImplemented = constError("dataset analysis is not implemented")

	// ErrUnsupportedFormat is returned for files that are not .xlsx workbooks.
	ErrUnsupportedFormat = constError("unsupported dataset format")
)

// Extension is the only accepted spreadsheet extension.
const Extension = ".xlsx"

// Summary is what an analysis of one spreadsheet produces.
type Summary struct {
	FileName string `json:"file_name" yaml:"file_name"`
	Rows     int    `json:"rows" yaml:"rows"`

	// ServerCount is the number of servers found, if the sheet lists any.
	ServerCount float64 `json:"server_count" yaml:"server_count"`
}

// Analyzer inspects an uploaded spreadsheet.
type Analyzer interface {
	Analyze(ctx context.Context, name string, r io.Reader) (Summary, error)
}

// Unimplemented rejects everything: unsupported files with
// ErrUnsupportedFormat and .xlsx files with ErrNotImplemented.
type Unimplemented struct{}

var _ Analyzer = Unimplemented{}

// Analyze implements Analyzer.
func (Unimplemented) Analyze(ctx context.Context, name string, _ io.Reader) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	if err := CheckExtension(name); err != nil {
		return Summary{}, err
	}
	return Summary{}, fmt.Errorf("%s: %w", filepath.Base(name), ErrNotImplemented)
}

// CheckExtension returns ErrUnsupportedFormat unless name ends in .xlsx.
func CheckExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != Extension {
		return fmt.Errorf("%w: %q (want %s)", ErrUnsupportedFormat, filepath.Base(name), Extension)
	}
	return nil
}
