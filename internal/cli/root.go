// Package cli implements the carbonmeter command tree.
package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonmeter/internal/carbon"
	"github.com/rshade/carbonmeter/internal/config"
)

// session is the per-invocation state shared by every subcommand.
type session struct {
	cfg    *config.Config
	logger zerolog.Logger
	runID  string
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd(ver string) *cobra.Command {
	s := &session{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "carbonmeter",
		Short: "Estimate the lifecycle carbon footprint of a data center",
		Long: "carbonmeter estimates the embodied IT, construction, operational and " +
			"end-of-life recycling carbon footprint of a data center in kg CO2e.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "path to a YAML config file")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "log format (console or json)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format (table, json or yaml)")

	cmd.AddCommand(newEstimateCmd(s), newServersCmd(s), newGridsCmd(s), newAnalyzeCmd(s), newConfigCmd(s))
	return cmd
}

const rootCmdExample = `  # Estimate with the default 4 MW facility
  carbonmeter estimate

  # A larger facility on a specific grid, as JSON
  carbonmeter estimate --power-capacity 10000 --grid-region eu-west-1 -o json

  # Use settings from a file and show equivalencies
  carbonmeter estimate --config datacenter.yaml --equivalencies

  # Write the current settings to a config file
  carbonmeter config init datacenter.yaml

  # List the server catalog and grid presets
  carbonmeter servers
  carbonmeter grids`

// setup loads configuration (file, then env, then root flags), builds the
// logger and tags it with a fresh run ID.
func (s *session) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// Env warnings are logged once the real logger exists.
	var envLog deferredWarnings
	cfg.ApplyEnv(zerolog.New(&envLog))

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format, _ = flags.GetString("log-format")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.Logging.Level = zerolog.LevelDebugValue
	}
	if flags.Changed("output") {
		cfg.Output.Format, _ = flags.GetString("output")
	}

	logger, err := config.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}

	s.cfg = cfg
	s.runID = uuid.New().String()
	s.logger = logger.With().Str("run_id", s.runID).Str("command", cmd.Name()).Logger()
	carbon.SetLogger(s.logger.With().Str("component", "carbon").Logger())
	envLog.replay(s.logger)

	cmd.SetContext(s.logger.WithContext(cmd.Context()))
	s.logger.Debug().Str("config", path).Msg("command started")
	return nil
}
