package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonmeter/internal/dataset"
)

func newAnalyzeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze an inventory spreadsheet (.xlsx); not yet available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runAnalyze(cmd, dataset.Unimplemented{}, args[0])
		},
	}
}

func (s *session) runAnalyze(cmd *cobra.Command, analyzer dataset.Analyzer, path string) error {
	if err := dataset.CheckExtension(path); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn().Err(cerr).Str("file", path).Msg("closing dataset")
		}
	}()

	summary, err := analyzer.Analyze(cmd.Context(), path, f)
	if err != nil {
		return err
	}

	s.logger.Info().Str("file", summary.FileName).Int("rows", summary.Rows).Msg("dataset analyzed")
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows, %.2f servers\n", summary.FileName, summary.Rows, summary.ServerCount)
	return nil
}
