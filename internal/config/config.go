// Package config loads carbonmeter settings from a YAML file and
// CARBONMETER_* environment variables on top of built-in defaults.
//
// Precedence, highest first: command-line flags (applied by the CLI),
// environment, config file, defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonmeter/internal/carbon"
	"github.com/rshade/carbonmeter/internal/render"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config is the full set of estimator settings.
type Config struct {
	Embodied     EmbodiedConfig     `yaml:"embodied"`
	Construction ConstructionConfig `yaml:"construction"`
	Operational  OperationalConfig  `yaml:"operational"`
	Output       OutputConfig       `yaml:"output"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// EmbodiedConfig covers the power profile, server model and network.
type EmbodiedConfig struct {
	ServerModel     string          `yaml:"server_model"`
	PowerCapacityKW float64         `yaml:"power_capacity_kw"`
	PUE             float64         `yaml:"pue"`
	Utilization     float64         `yaml:"utilization"`
	PerRackPowerKW  float64         `yaml:"per_rack_power_kw"`
	PortCount       int             `yaml:"port_count"`
	Topology        carbon.Topology `yaml:"topology"`

	// ServerCount overrides the rack-derived server count used to size the
	// network. Nil means derive it.
	ServerCount *float64 `yaml:"server_count,omitempty"`
}

// ConstructionConfig holds the building size.
type ConstructionConfig struct {
	FloorAreaSqft float64 `yaml:"floor_area_sqft"`
}

// OperationalConfig holds the grid and lifetime settings.
type OperationalConfig struct {
	// CarbonIntensity is kg CO2e per kWh. Ignored when GridRegion is set.
	CarbonIntensity float64                   `yaml:"carbon_intensity"`
	GridRegion      string                    `yaml:"grid_region,omitempty"`
	LifetimeYears   int                       `yaml:"lifetime_years"`
	WUE             float64                   `yaml:"wue"`
	Formula         carbon.DailyCarbonFormula `yaml:"formula"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format        string `yaml:"format"`
	Equivalencies bool   `yaml:"equivalencies"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	in := carbon.DefaultInputs()
	return &Config{
		Embodied: EmbodiedConfig{
			ServerModel:     in.Embodied.ServerModel,
			PowerCapacityKW: in.Embodied.Power.PowerCapacityKW,
			PUE:             in.Embodied.Power.PUE,
			Utilization:     in.Embodied.Power.Utilization,
			PerRackPowerKW:  in.Embodied.Power.PerRackPowerKW,
			PortCount:       in.Embodied.PortCount,
			Topology:        in.Embodied.Topology,
		},
		Construction: ConstructionConfig{
			FloorAreaSqft: in.FloorAreaSqft,
		},
		Operational: OperationalConfig{
			CarbonIntensity: in.Operational.CarbonIntensity,
			LifetimeYears:   in.Operational.LifetimeYears,
			WUE:             in.Operational.WUE,
			Formula:         in.Operational.Formula,
		},
		Output: OutputConfig{
			Format: render.FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func (c *Config) Save(path string) error {
	if c == nil {
		return errors.New("nil *Config in Save")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
