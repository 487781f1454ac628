package carbon

import (
	"fmt"
	"math"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidParameter matches every *InvalidParameterError via errors.Is.
const ErrInvalidParameter = constError("invalid parameter")

// InvalidParameterError reports an input outside the domain a formula is
// defined on. Calculators never clamp; they return this error instead.
type InvalidParameterError struct {
	// Field is the input name, e.g. "pue" or "port_count".
	Field string

	// Reason describes the violated constraint, e.g. "must be >= 1.0".
	Reason string

	// Value is the rejected input.
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%s: %s", e.Field, formatFloat(e.Value), e.Reason)
}

// Is lets errors.Is(err, ErrInvalidParameter) succeed.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func invalidParam(field string, value float64, reason string) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Reason: reason, Value: value}
}

// fieldValue pairs an input with its field name for requireFinite.
type fieldValue struct {
	field string
	value float64
}

// requireFinite rejects NaN and ±Inf, which slip past ordered range checks.
func requireFinite(values ...fieldValue) error {
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return invalidParam(v.field, v.value, "must be a finite number")
		}
	}
	return nil
}

// Field names used in InvalidParameterError.
const (
	FieldPowerCapacity    = "power_capacity_kw"
	FieldPUE              = "pue"
	FieldUtilization      = "utilization"
	FieldPerRackPower     = "per_rack_power_kw"
	FieldPortCount        = "port_count"
	FieldServerCount      = "server_count"
	FieldFloorArea        = "floor_area_sqft"
	FieldITPower          = "it_power_kw"
	FieldCarbonIntensity  = "carbon_intensity_kg_per_kwh"
	FieldLifetimeYears    = "lifetime_years"
	FieldWUE              = "wue"
	FieldFormula          = "daily_carbon_formula"
	FieldNumberOfServers  = "number_of_servers"
	FieldNetworkFootprint = "network_manufacturing_kg"
)
