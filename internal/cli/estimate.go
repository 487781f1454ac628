package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rshade/carbonmeter/internal/carbon"
	"github.com/rshade/carbonmeter/internal/config"
	"github.com/rshade/carbonmeter/internal/greenops"
	"github.com/rshade/carbonmeter/internal/render"
)

// Estimate flag names.
const (
	flagServerModel     = "server-model"
	flagPowerCapacity   = "power-capacity"
	flagPUE             = "pue"
	flagUtilization     = "utilization"
	flagPerRackPower    = "per-rack-power"
	flagPortCount       = "port-count"
	flagTopology        = "topology"
	flagServerCount     = "server-count"
	flagFloorArea       = "floor-area"
	flagCarbonIntensity = "carbon-intensity"
	flagGridRegion      = "grid-region"
	flagLifetimeYears   = "lifetime-years"
	flagWUE             = "wue"
	flagCorrected       = "corrected-daily-carbon"
	flagEquivalencies   = "equivalencies"
)

func newEstimateCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the lifecycle footprint of a data center",
		Long: "Computes embodied IT (servers and network), construction, operational " +
			"(energy and water) and recycling footprints and their lifecycle totals.\n\n" +
			"Settings come from flags, then CARBONMETER_* environment variables, " +
			"then the --config file, then built-in defaults.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.runEstimate(cmd)
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.String(flagServerModel, def.Embodied.ServerModel, "server model from the catalog (see 'carbonmeter servers')")
	f.Float64(flagPowerCapacity, def.Embodied.PowerCapacityKW, "facility power capacity in kW")
	f.Float64(flagPUE, def.Embodied.PUE, "power usage effectiveness (>= 1.0)")
	f.Float64(flagUtilization, def.Embodied.Utilization, "average utilization (0 to 1)")
	f.Float64(flagPerRackPower, def.Embodied.PerRackPowerKW, "power per rack in kW")
	f.Int(flagPortCount, def.Embodied.PortCount, "ports per network switch (even)")
	f.String(flagTopology, def.Embodied.Topology.String(), "network topology (fat-tree, clos, three-tier, spine-leaf)")
	f.Float64(flagServerCount, 0, "server count used to size the network (default: derived from racks)")
	f.Float64(flagFloorArea, def.Construction.FloorAreaSqft, "building floor area in sqft")
	f.Float64(flagCarbonIntensity, def.Operational.CarbonIntensity, "grid carbon intensity in kg CO2e/kWh")
	f.String(flagGridRegion, "", "take carbon intensity from a grid region preset (see 'carbonmeter grids')")
	f.Int(flagLifetimeYears, def.Operational.LifetimeYears, "equipment lifetime in years")
	f.Float64(flagWUE, def.Operational.WUE, "water usage effectiveness in L/kWh")
	f.Bool(flagCorrected, false, "compute daily carbon without the legacy second factor of 24")
	f.Bool(flagEquivalencies, false, "show EPA equivalencies for the net lifecycle footprint")
	cmd.MarkFlagsMutuallyExclusive(flagCarbonIntensity, flagGridRegion)

	return cmd
}

func (s *session) runEstimate(cmd *cobra.Command) error {
	cfg := s.cfg
	if err := applyEstimateFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	warnings := cfg.Warnings()
	for _, w := range warnings {
		s.logger.Warn().Msg(w)
	}

	in, err := cfg.Inputs()
	if err != nil {
		return err
	}

	report, err := carbon.Compute(in)
	if err != nil {
		s.logger.Error().Err(err).Msg("estimate failed")
		return err
	}

	doc := render.Document{
		RunID:    s.runID,
		Report:   report,
		Details:  report.Details(),
		Warnings: warnings,
	}
	if cfg.Output.Equivalencies {
		eq, err := greenops.CalculateKg(report.Totals.NetLifecycleKg)
		if err != nil {
			s.logger.Warn().Err(err).Float64("net_lifecycle_kg", report.Totals.NetLifecycleKg).
				Msg("skipping equivalencies")
		} else {
			doc.Equivalencies = &eq
		}
	}

	s.logger.Info().
		Float64("it_power_kw", report.Embodied.ITPowerKW).
		Float64("servers", report.Embodied.NumberOfServers).
		Float64("net_lifecycle_kg", report.Totals.NetLifecycleKg).
		Str("formula", report.Operational.Formula.String()).
		Msg("estimate complete")

	return render.Write(cmd.OutOrStdout(), cfg.Output.Format, doc)
}

// applyEstimateFlags copies explicitly set flags onto cfg, so flags win
// over env and file values.
func applyEstimateFlags(f *pflag.FlagSet, cfg *config.Config) error {
	setFloat := func(name string, dst *float64) {
		if f.Changed(name) {
			*dst, _ = f.GetFloat64(name)
		}
	}
	setInt := func(name string, dst *int) {
		if f.Changed(name) {
			*dst, _ = f.GetInt(name)
		}
	}

	if f.Changed(flagServerModel) {
		cfg.Embodied.ServerModel, _ = f.GetString(flagServerModel)
	}
	setFloat(flagPowerCapacity, &cfg.Embodied.PowerCapacityKW)
	setFloat(flagPUE, &cfg.Embodied.PUE)
	setFloat(flagUtilization, &cfg.Embodied.Utilization)
	setFloat(flagPerRackPower, &cfg.Embodied.PerRackPowerKW)
	setInt(flagPortCount, &cfg.Embodied.PortCount)
	if f.Changed(flagTopology) {
		name, _ := f.GetString(flagTopology)
		t, err := carbon.ParseTopology(name)
		if err != nil {
			return err
		}
		cfg.Embodied.Topology = t
	}
	if f.Changed(flagServerCount) {
		v, _ := f.GetFloat64(flagServerCount)
		cfg.Embodied.ServerCount = &v
	}

	setFloat(flagFloorArea, &cfg.Construction.FloorAreaSqft)

	if f.Changed(flagCarbonIntensity) {
		cfg.Operational.CarbonIntensity, _ = f.GetFloat64(flagCarbonIntensity)
		cfg.Operational.GridRegion = ""
	}
	if f.Changed(flagGridRegion) {
		cfg.Operational.GridRegion, _ = f.GetString(flagGridRegion)
	}
	setInt(flagLifetimeYears, &cfg.Operational.LifetimeYears)
	setFloat(flagWUE, &cfg.Operational.WUE)
	if corrected, _ := f.GetBool(flagCorrected); corrected {
		cfg.Operational.Formula = carbon.FormulaCorrected
	}

	if eq, _ := f.GetBool(flagEquivalencies); eq {
		cfg.Output.Equivalencies = true
	}
	return nil
}
