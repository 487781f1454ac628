package greenops

import (
	"fmt"
	"math"
)

type equivalencyFactor struct {
	kind   EquivalencyType
	factor float64
	label  string
}

// equivalencyFactors is in display priority order.
var equivalencyFactors = []equivalencyFactor{
	{EquivalencyMilesDriven, EPAMilesDrivenFactor, "miles driven"},
	{EquivalencySmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged"},
	{EquivalencyTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{EquivalencyHomeDays, EPAHomeDayFactor, "days of home electricity"},
}

// Calculate normalizes input to kilograms and computes every equivalency.
//
// Inputs below MinEquivalencyThresholdKg yield an empty output with InputKg
// set and no error. Normalization failures yield an empty output and the
// normalization error.
//
//	out, err := Calculate(CarbonInput{Value: 150, Unit: "kg"})
//	// out.DisplayText == "Equivalent to driving ~781 miles or charging ~18,248 smartphones"
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(equivalencyFactors))
	for _, f := range equivalencyFactors {
		v := kg / f.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           f.kind,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          f.label,
		})
	}

	miles, phones := results[0].FormattedValue, results[1].FormattedValue
	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones),
	}, nil
}

// CalculateKg is Calculate for a value already in kilograms.
func CalculateKg(kg float64) (EquivalencyOutput, error) {
	return Calculate(CarbonInput{Value: kg, Unit: "kg"})
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
