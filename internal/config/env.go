package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/carbonmeter/internal/carbon"
)

// Environment variables read by ApplyEnv.
const (
	EnvPowerCapacityKW = "CARBONMETER_POWER_CAPACITY_KW"
	EnvPUE             = "CARBONMETER_PUE"
	EnvUtilization     = "CARBONMETER_UTILIZATION"
	EnvPerRackPowerKW  = "CARBONMETER_PER_RACK_POWER_KW"
	EnvPortCount       = "CARBONMETER_PORT_COUNT"
	EnvTopology        = "CARBONMETER_TOPOLOGY"
	EnvFloorAreaSqft   = "CARBONMETER_FLOOR_AREA_SQFT"
	EnvCarbonIntensity = "CARBONMETER_CARBON_INTENSITY"
	EnvGridRegion      = "CARBONMETER_GRID_REGION"
	EnvLifetimeYears   = "CARBONMETER_LIFETIME_YEARS"
	EnvWUE             = "CARBONMETER_WUE"
	EnvServerModel     = "CARBONMETER_SERVER_MODEL"
	EnvOutput          = "CARBONMETER_OUTPUT"
	EnvLogLevel        = "CARBONMETER_LOG_LEVEL"
	EnvLogFormat       = "CARBONMETER_LOG_FORMAT"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays CARBONMETER_* environment variables onto c.
// Values that do not parse are logged and ignored.
func (c *Config) ApplyEnv(logger zerolog.Logger) {
	c.applyEnv(os.LookupEnv, logger)
}

func (c *Config) applyEnv(lookup LookupFunc, logger zerolog.Logger) {
	e := envReader{lookup: lookup, logger: logger}

	e.floatVar(EnvPowerCapacityKW, &c.Embodied.PowerCapacityKW)
	e.floatVar(EnvPUE, &c.Embodied.PUE)
	e.floatVar(EnvUtilization, &c.Embodied.Utilization)
	e.floatVar(EnvPerRackPowerKW, &c.Embodied.PerRackPowerKW)
	e.intVar(EnvPortCount, &c.Embodied.PortCount)
	e.stringVar(EnvServerModel, &c.Embodied.ServerModel)
	if v, ok := e.get(EnvTopology); ok {
		if t, err := carbon.ParseTopology(v); err == nil {
			c.Embodied.Topology = t
		} else {
			e.invalid(EnvTopology, v)
		}
	}

	e.floatVar(EnvFloorAreaSqft, &c.Construction.FloorAreaSqft)

	intensitySet := e.floatVar(EnvCarbonIntensity, &c.Operational.CarbonIntensity)
	if intensitySet {
		// An explicit intensity wins over a region from the config file.
		c.Operational.GridRegion = ""
	}
	if e.stringVar(EnvGridRegion, &c.Operational.GridRegion) && intensitySet {
		e.logger.Warn().
			Str("variable", EnvCarbonIntensity).
			Str("overridden_by", EnvGridRegion).
			Msg("carbon intensity and grid region both set, using grid region")
	}
	e.intVar(EnvLifetimeYears, &c.Operational.LifetimeYears)
	e.floatVar(EnvWUE, &c.Operational.WUE)

	e.stringVar(EnvOutput, &c.Output.Format)
	e.stringVar(EnvLogLevel, &c.Logging.Level)
	e.stringVar(EnvLogFormat, &c.Logging.Format)
}

type envReader struct {
	lookup LookupFunc
	logger zerolog.Logger
}

func (e envReader) get(key string) (string, bool) {
	v, ok := e.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (e envReader) invalid(key, value string) {
	e.logger.Warn().Str("variable", key).Str("value", value).Msg("invalid environment value, ignoring")
}

// floatVar reports whether dst was set.
func (e envReader) floatVar(key string, dst *float64) bool {
	v, ok := e.get(key)
	if !ok {
		return false
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.invalid(key, v)
		return false
	}
	*dst = parsed
	return true
}

func (e envReader) intVar(key string, dst *int) {
	v, ok := e.get(key)
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		e.invalid(key, v)
		return
	}
	*dst = parsed
}

// stringVar reports whether dst was set.
func (e envReader) stringVar(key string, dst *string) bool {
	v, ok := e.get(key)
	if ok {
		*dst = v
	}
	return ok
}
