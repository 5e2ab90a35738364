package burn

import (
	"fmt"
	"math"
)

// RangeError reports a numeric input outside the clinically valid domain.
// Out-of-range values always fail the call; they are never silently clamped,
// because a clamped input would misrepresent the calculation as valid.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// ValidationError reports a malformed discrete input, naming the offending value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// checkRange validates that v is a finite number within [min, max].
func checkRange(field string, v, min, max float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Value: fmt.Sprintf("%v", v), Reason: "must be a finite number"}
	}
	if v < min || v > max {
		return &RangeError{Field: field, Value: v, Min: min, Max: max}
	}
	return nil
}

// round1 rounds to one decimal place. Applied only at output boundaries;
// intermediate arithmetic keeps full float64 precision.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
