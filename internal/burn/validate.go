package burn

import "errors"

// PatientAttributes are the raw numeric inputs for one assessment. They may
// be edited freely before calculation; a single computation call treats them
// as immutable.
type PatientAttributes struct {
	AgeMonths        float64 `json:"age_months"`
	WeightKg         float64 `json:"weight_kg"`
	HoursSinceInjury float64 `json:"hours_since_injury"`
}

// ValidationResult separates fatal input errors from non-blocking clinical
// advisories. Warnings are expected, common, and never fail a call.
type ValidationResult struct {
	Errors   []error  `json:"-"`
	Warnings []string `json:"warnings,omitempty"`
}

// OK reports whether the input passed with no fatal errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Err joins the fatal errors, or nil when the input is valid.
func (r ValidationResult) Err() error {
	return errors.Join(r.Errors...)
}

// ValidatePatient range-checks patient attributes and collects clinical
// advisories. Edge-of-range values that are clinically unusual but valid
// (an infant, a late presentation) warn rather than fail.
func ValidatePatient(p PatientAttributes) ValidationResult {
	var res ValidationResult

	ageErr := checkRange("ageMonths", p.AgeMonths, MinAgeMonths, MaxAgeMonths)
	if ageErr != nil {
		res.Errors = append(res.Errors, ageErr)
	}
	if err := checkRange("weightKg", p.WeightKg, MinWeightKg, MaxWeightKg); err != nil {
		res.Errors = append(res.Errors, err)
	}
	hoursErr := checkRange("hoursSinceInjury", p.HoursSinceInjury, 0, MaxHoursSinceInjury)
	if hoursErr != nil {
		res.Errors = append(res.Errors, hoursErr)
	}

	if ageErr == nil && p.AgeMonths < infantAgeMonths {
		res.Warnings = append(res.Warnings, "infant patient: narrow fluid tolerance, reassess frequently")
	}
	if hoursErr == nil && p.HoursSinceInjury > 24 {
		res.Warnings = append(res.Warnings, "delayed presentation (>24h since injury): resuscitation window has elapsed")
	}
	return res
}
