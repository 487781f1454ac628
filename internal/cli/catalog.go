package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/carbonmeter/internal/carbon"
	"github.com/rshade/carbonmeter/internal/render"
)

func newServersCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List the server manufacturing footprint catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.cfg.Validate(); err != nil {
				return err
			}
			return render.ServerProfiles(cmd.OutOrStdout(), s.cfg.Output.Format, carbon.ServerProfiles())
		},
	}
}

func newGridsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "grids",
		Short: "List grid carbon intensity presets by region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.cfg.Validate(); err != nil {
				return err
			}
			return render.GridIntensities(cmd.OutOrStdout(), s.cfg.Output.Format, carbon.GridIntensities())
		},
	}
}
