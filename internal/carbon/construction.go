package carbon

import "fmt"

// Material is a building material category.
type Material string

// Building material categories, in report order.
const (
	MaterialFoundation    Material = "foundation"
	MaterialFlooring      Material = "flooring"
	MaterialCeilings      Material = "ceilings"
	MaterialStructure     Material = "structure"
	MaterialExternalWalls Material = "external_walls"
	MaterialInternalWalls Material = "internal_walls"
	MaterialStairs        Material = "stairs"
	MaterialWindows       Material = "windows"
	MaterialRoof          Material = "roof"
)

// materialReference is a material's footprint in the reference building.
type materialReference struct {
	Material Material
	Label    string
	RefKg    float64
}

// constructionReferences holds the material footprints measured on a
// ReferenceBuildingAreaSqft building.
var constructionReferences = []materialReference{
	{MaterialFoundation, "Foundation", 4.7},
	{MaterialFlooring, "Flooring", 39.9},
	{MaterialCeilings, "Ceilings", 2.3},
	{MaterialStructure, "Structure", 15.4},
	{MaterialExternalWalls, "External Walls", 32.1},
	{MaterialInternalWalls, "Internal Walls", 8.7},
	{MaterialStairs, "Stairs", 1.1},
	{MaterialWindows, "Windows", 0.59},
	{MaterialRoof, "Roof", 23.4},
}

// MaterialShare is one material's scaled footprint and share of the material total.
type MaterialShare struct {
	Category Material `json:"category" yaml:"category"`
	Label    string   `json:"label" yaml:"label"`

	FootprintKg float64 `json:"footprint_kg" yaml:"footprint_kg"`

	// Proportion is FootprintKg / ConstructionFootprintKg, in [0, 1].
	Proportion float64 `json:"proportion" yaml:"proportion"`
}

// ConstructionResult is the building construction footprint.
//
// WorstCaseFootprintKg is the headline number. It comes from a flat-rate
// formula and is NOT the sum of the material breakdown; the breakdown is
// only meaningful as proportions.
type ConstructionResult struct {
	FloorAreaSqft float64 `json:"floor_area_sqft" yaml:"floor_area_sqft"`

	Breakdown []MaterialShare `json:"breakdown" yaml:"breakdown"`

	// ConstructionFootprintKg is the sum of the scaled material footprints.
	ConstructionFootprintKg float64 `json:"construction_footprint_kg" yaml:"construction_footprint_kg"`

	// WorstCaseFootprintKg is floor area × 0.092 × 71.
	WorstCaseFootprintKg float64 `json:"worst_case_footprint_kg" yaml:"worst_case_footprint_kg"`
}

// WorstCaseFootprintKg returns the flat-rate construction footprint for a
// floor area, without validation.
func WorstCaseFootprintKg(floorAreaSqft float64) float64 {
	return floorAreaSqft * WorstCaseSqmPerSqft * WorstCaseKgPerSqm
}

// ComputeConstruction scales the reference material footprints linearly by
// floorAreaSqft / 5700 and computes the flat-rate worst-case footprint.
// Proportions do not depend on the floor area.
func ComputeConstruction(floorAreaSqft float64) (ConstructionResult, error) {
	if err := requireFinite(fieldValue{FieldFloorArea, floorAreaSqft}); err != nil {
		return ConstructionResult{}, err
	}
	if floorAreaSqft <= 0 {
		return ConstructionResult{}, invalidParam(FieldFloorArea, floorAreaSqft, "must be > 0")
	}

	scale := floorAreaSqft / ReferenceBuildingAreaSqft

	breakdown := make([]MaterialShare, len(constructionReferences))
	var total float64
	for i, ref := range constructionReferences {
		kg := ref.RefKg * scale
		breakdown[i] = MaterialShare{
			Category:    ref.Material,
			Label:       ref.Label,
			FootprintKg: kg,
		}
		total += kg
	}
	for i := range breakdown {
		breakdown[i].Proportion = breakdown[i].FootprintKg / total
	}

	return ConstructionResult{
		FloorAreaSqft:           floorAreaSqft,
		Breakdown:               breakdown,
		ConstructionFootprintKg: total,
		WorstCaseFootprintKg:    WorstCaseFootprintKg(floorAreaSqft),
	}, nil
}

// Detail returns a human-readable explanation of the construction estimate.
func (r ConstructionResult) Detail() string {
	return "Construction: " + formatFloat(r.FloorAreaSqft) + " sqft × " +
		fmt.Sprintf("%.3f", WorstCaseSqmPerSqft) + " sqm/sqft × " + formatFloat(WorstCaseKgPerSqm) +
		" kgCO2e/sqm (worst case); material breakdown scaled from a " +
		formatFloat(ReferenceBuildingAreaSqft) + " sqft reference building, shown as proportions only"
}
