package greenops

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrInvalidUnit is returned for a carbon unit NormalizeToKg does not know.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue is returned for negative inputs. Net lifecycle
	// footprints that go negative through recycling credits have no
	// meaningful equivalency.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow is returned for Inf/NaN inputs or results.
	ErrCalculationOverflow = constError("calculation overflow")
)
