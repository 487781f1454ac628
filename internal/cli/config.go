package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultConfigPath is where config init writes when no path is given.
const defaultConfigPath = "carbonmeter.yaml"

func newConfigCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage carbonmeter configuration files",
	}
	cmd.AddCommand(newConfigInitCmd(s))
	return cmd
}

// newConfigInitCmd writes the effective settings (defaults overlaid with
// --config, CARBONMETER_* and root flags) to a YAML file.
func newConfigInitCmd(s *session) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the current settings to a YAML config file",
		Long: "Writes the defaults, overlaid with any --config file and CARBONMETER_* " +
			"environment variables, to PATH (default " + defaultConfigPath + ").",
		Example: `  # Start from the built-in defaults
  carbonmeter config init

  # Capture environment overrides, overwriting an existing file
  CARBONMETER_PUE=1.4 carbonmeter config init dc.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			return s.runConfigInit(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	return cmd
}

func (s *session) runConfigInit(cmd *cobra.Command, path string, force bool) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("configuration file %s already exists, use --force to overwrite", path)
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := s.cfg.Save(path); err != nil {
		return err
	}

	s.logger.Info().Str("path", path).Msg("configuration written")
	cmd.Printf("Configuration written to %s\n", path)
	return nil
}
