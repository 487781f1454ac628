package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/carbonmeter/internal/carbon"
	"github.com/rshade/carbonmeter/internal/greenops"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// decimals is the number of decimals shown for quantities.
const decimals = 2

func num(v float64) string {
	return greenops.FormatFloat(v, decimals)
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

// table collects tab-separated rows and flushes them aligned.
type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer, header ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)}
	if len(header) > 0 {
		t.row(header...)
	}
	return t
}

func (t *table) row(cols ...string) {
	fmt.Fprintln(t.tw, strings.Join(cols, "\t"))
}

func (t *table) flush() error {
	if err := t.tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}
	return nil
}

func writeReportTable(w io.Writer, doc Document) error {
	r := doc.Report

	fmt.Fprintln(w, "DATA CENTER CARBON FOOTPRINT")
	fmt.Fprintln(w, "============================")
	if doc.RunID != "" {
		fmt.Fprintf(w, "Run: %s\n", doc.RunID)
	}

	sections := []func(io.Writer, carbon.Report) error{
		writeTotals,
		writeEmbodied,
		writeConstruction,
		writeOperational,
		writeRecycling,
	}
	for _, section := range sections {
		if err := section(w, r); err != nil {
			return err
		}
	}

	if eq := doc.Equivalencies; eq != nil && !eq.IsEmpty {
		heading(w, "EQUIVALENCIES")
		fmt.Fprintln(w, eq.DisplayText)
		t := newTable(w)
		for _, res := range eq.Results {
			t.row(res.FormattedValue, res.Label)
		}
		if err := t.flush(); err != nil {
			return err
		}
	}

	if len(doc.Details) > 0 {
		heading(w, "DETAILS")
		for _, d := range doc.Details {
			fmt.Fprintln(w, d)
		}
	}

	notes := append(append([]string{}, r.Operational.Quirks...), doc.Warnings...)
	if len(notes) > 0 {
		heading(w, "NOTES")
		for _, n := range notes {
			fmt.Fprintf(w, "* %s\n", n)
		}
	}
	return nil
}

func writeTotals(w io.Writer, r carbon.Report) error {
	heading(w, "LIFECYCLE TOTALS")
	t := newTable(w, "STAGE", "KG CO2E")
	t.row("IT manufacturing", num(r.Totals.ITManufacturingKg))
	t.row("Construction", num(r.Totals.ConstructionKg))
	t.row("Operational", num(r.Totals.OperationalKg))
	t.row("Recycling", num(r.Totals.RecyclingKg))
	t.row("Net lifecycle", num(r.Totals.NetLifecycleKg))
	if err := t.flush(); err != nil {
		return err
	}

	heading(w, "LIFETIME BREAKDOWN")
	t = newTable(w, "STAGE", "KG CO2E", "SHARE")
	for _, s := range r.TotalBreakdown {
		t.row(s.Label, num(s.ValueKg), percent(s.Proportion))
	}
	return t.flush()
}

func writeEmbodied(w io.Writer, r carbon.Report) error {
	e := r.Embodied
	heading(w, "EMBODIED IT")
	t := newTable(w)
	t.row("Server model", fmt.Sprintf("%s (%s kg CO2e/unit)", e.Server.Model, num(e.Server.ManufacturingKg)))
	t.row("IT power (kW)", num(e.ITPowerKW))
	t.row("Racks", num(e.NumberOfRacks))
	t.row("Servers", num(e.NumberOfServers))
	t.row("Server manufacturing", num(e.ServerManufacturingKg))
	t.row("Topology", fmt.Sprintf("%s, %d ports, %d pods", e.Network.Topology, e.Network.PortCount, e.Network.Pods))
	t.row("Servers per switch", num(e.Network.ServersPerSwitch))
	t.row("Switches", num(e.Network.NumberOfSwitches))
	t.row("Core switches", num(e.Network.CoreSwitches))
	t.row("Network manufacturing", num(e.Network.ManufacturingKg))
	return t.flush()
}

func writeConstruction(w io.Writer, r carbon.Report) error {
	c := r.Construction
	heading(w, "CONSTRUCTION")
	fmt.Fprintf(w, "Floor area %s sqft, worst case %s kg CO2e\n", num(c.FloorAreaSqft), num(c.WorstCaseFootprintKg))
	t := newTable(w, "MATERIAL", "KG CO2E", "SHARE")
	for _, m := range c.Breakdown {
		t.row(m.Label, num(m.FootprintKg), percent(m.Proportion))
	}
	t.row("Material sum", num(c.ConstructionFootprintKg), "")
	return t.flush()
}

func writeOperational(w io.Writer, r carbon.Report) error {
	o := r.Operational
	heading(w, "OPERATIONAL")
	t := newTable(w)
	t.row("Formula", o.Formula.String())
	t.row("Daily energy (kWh)", num(o.DailyEnergyKWh))
	t.row("Daily carbon", num(o.DailyCarbonKg))
	t.row("Lifetime operational", num(o.LifetimeOperationalKg))
	t.row("Water consumption (L)", num(o.WaterConsumptionLiters))
	t.row("Lifetime water", num(o.LifetimeWaterKg))
	t.row("Total operational", num(o.TotalOperationalKg))
	return t.flush()
}

func writeRecycling(w io.Writer, r carbon.Report) error {
	rc := r.Recycling
	heading(w, "RECYCLING")
	t := newTable(w, "MATERIAL", "KG CO2E PER SERVER")
	for _, c := range rc.PerCategory {
		t.row(c.Material, num(c.KgPerServer))
	}
	t.row("Net per server", num(rc.NetPerServerKg))
	if err := t.flush(); err != nil {
		return err
	}

	t = newTable(w)
	t.row("Server recycling", num(rc.TotalServerRecyclingKg))
	t.row("Network recycling", num(rc.NetworkRecyclingKg))
	t.row("Total recycling", num(rc.TotalRecyclingKg))
	return t.flush()
}
