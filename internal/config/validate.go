package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/carbonmeter/internal/carbon"
	"github.com/rshade/carbonmeter/internal/render"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Ranges offered by the interactive controls. Values outside them still
// compute; they only produce warnings.
const (
	MinUtilization    = 0.2
	MaxUtilization    = 1.0
	MinPerRackPowerKW = 10.0
	MaxPerRackPowerKW = 25.0
	MinLifetimeYears  = 2
	MaxLifetimeYears  = 10
	MinWUE            = 0.1
	MaxWUE            = 2.0
)

// Validate checks the settings that are not calculator parameters: output
// and log formats and the grid region. Calculator parameters are checked by
// the carbon package when the report is computed.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case render.FormatTable, render.FormatJSON, render.FormatYAML:
	default:
		return fmt.Errorf("%w: output format %q (want %s, %s or %s)",
			ErrInvalidConfig, c.Output.Format, render.FormatTable, render.FormatJSON, render.FormatYAML)
	}

	switch c.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log format %q (want %s or %s)",
			ErrInvalidConfig, c.Logging.Format, LogFormatConsole, LogFormatJSON)
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: log level %q: %w", ErrInvalidConfig, c.Logging.Level, err)
	}

	if c.Operational.GridRegion != "" {
		if _, ok := carbon.LookupGridIntensity(c.Operational.GridRegion); !ok {
			return fmt.Errorf("%w: unknown grid region %q (run 'carbonmeter grids' for the list)",
				ErrInvalidConfig, c.Operational.GridRegion)
		}
	}
	return nil
}

// Warnings lists parameters outside the interactive ranges, plus an unknown
// server model, which silently falls back to the default.
func (c *Config) Warnings() []string {
	var warnings []string
	outside := func(name string, v, lo, hi float64) {
		if v < lo || v > hi {
			warnings = append(warnings, fmt.Sprintf("%s=%g is outside the usual range %g-%g", name, v, lo, hi))
		}
	}

	outside(carbon.FieldUtilization, c.Embodied.Utilization, MinUtilization, MaxUtilization)
	outside(carbon.FieldPerRackPower, c.Embodied.PerRackPowerKW, MinPerRackPowerKW, MaxPerRackPowerKW)
	outside(carbon.FieldLifetimeYears, float64(c.Operational.LifetimeYears), MinLifetimeYears, MaxLifetimeYears)
	outside(carbon.FieldWUE, c.Operational.WUE, MinWUE, MaxWUE)

	if _, ok := carbon.LookupServerProfile(c.Embodied.ServerModel); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown server model %q, using %s",
			strings.TrimSpace(c.Embodied.ServerModel), carbon.DefaultServerModel))
	}
	return warnings
}

// Inputs converts c into calculator inputs, resolving GridRegion into a
// carbon intensity.
func (c *Config) Inputs() (carbon.Inputs, error) {
	intensity := c.Operational.CarbonIntensity
	if c.Operational.GridRegion != "" {
		v, ok := carbon.LookupGridIntensity(c.Operational.GridRegion)
		if !ok {
			return carbon.Inputs{}, fmt.Errorf("%w: unknown grid region %q", ErrInvalidConfig, c.Operational.GridRegion)
		}
		intensity = v
	}

	var override *float64
	if c.Embodied.ServerCount != nil {
		v := *c.Embodied.ServerCount
		override = &v
	}

	return carbon.Inputs{
		Embodied: carbon.EmbodiedConfig{
			ServerModel: c.Embodied.ServerModel,
			Power: carbon.DataCenterPowerProfile{
				PowerCapacityKW: c.Embodied.PowerCapacityKW,
				PUE:             c.Embodied.PUE,
				Utilization:     c.Embodied.Utilization,
				PerRackPowerKW:  c.Embodied.PerRackPowerKW,
			},
			PortCount:           c.Embodied.PortCount,
			Topology:            c.Embodied.Topology,
			ServerCountOverride: override,
		},
		FloorAreaSqft: c.Construction.FloorAreaSqft,
		Operational: carbon.OperationalProfile{
			CarbonIntensity: intensity,
			LifetimeYears:   c.Operational.LifetimeYears,
			WUE:             c.Operational.WUE,
			Formula:         c.Operational.Formula,
		},
	}, nil
}
