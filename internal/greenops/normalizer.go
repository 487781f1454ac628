package greenops

import (
	"math"
	"strings"
)

// unitFactor maps a case-insensitive unit name to its kilogram factor.
func unitFactor(unit string) (float64, bool) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(unit)), "co2e") {
	case "g":
		return GramsToKg, true
	case "kg":
		return KgToKg, true
	case "t":
		return TonsToKg, true
	case "lb":
		return PoundsToKg, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts value in unit to kilograms.
//
// Returns ErrCalculationOverflow for Inf/NaN, ErrNegativeValue for
// negative values and ErrInvalidUnit for unknown units.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	result := value * factor
	if math.IsInf(result, 0) {
		return 0, ErrCalculationOverflow
	}
	return result, nil
}
