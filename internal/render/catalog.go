package render

import (
	"fmt"
	"io"

	"github.com/rshade/carbonmeter/internal/carbon"
)

// ServerProfiles renders the server catalog.
func ServerProfiles(w io.Writer, format string, profiles []carbon.ServerProfile) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, profiles)
	case FormatYAML:
		return writeYAML(w, profiles)
	case FormatTable:
		t := newTable(w, "MODEL", "VENDOR", "KG CO2E/UNIT")
		for _, p := range profiles {
			t.row(p.Model, p.Vendor, num(p.ManufacturingKg))
		}
		return t.flush()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// GridIntensities renders the grid carbon intensity presets.
func GridIntensities(w io.Writer, format string, grids []carbon.GridIntensity) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, grids)
	case FormatYAML:
		return writeYAML(w, grids)
	case FormatTable:
		t := newTable(w, "REGION", "KG CO2E/KWH")
		for _, g := range grids {
			t.row(g.Region, fmt.Sprintf("%.4f", g.KgPerKWh))
		}
		return t.flush()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
