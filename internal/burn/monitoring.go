package burn

// Urine output window (ml/hr) the resuscitation rate is titrated against,
// and the step applied on each adjustment.
const (
	UrineOutputLowMlPerHr  = 30.0
	UrineOutputHighMlPerHr = 50.0
	rateAdjustmentStep     = 0.20
)

// maxRateMlPerHr bounds the plausible infusion rate input.
const maxRateMlPerHr = 10000.0

// RateAdjustment is a recommendation for the next infusion rate. The caller
// applies it and calls again with fresh observations; nothing is retained
// between calls.
type RateAdjustment struct {
	NewRateMlPerHr float64 `json:"new_rate_ml_per_hr"`
	Adjustment     string  `json:"adjustment"`
	Reason         string  `json:"reason"`
}

// AdjustRateByUrineOutput titrates the infusion rate against observed urine
// output: +20% below the target window, -20% above it, unchanged within it.
func AdjustRateByUrineOutput(currentRateMlPerHr, urineOutputMlPerHr float64) (RateAdjustment, error) {
	if err := checkRange("currentRateMlPerHr", currentRateMlPerHr, 0, maxRateMlPerHr); err != nil {
		return RateAdjustment{}, err
	}
	if err := checkRange("urineOutputMlPerHr", urineOutputMlPerHr, 0, maxRateMlPerHr); err != nil {
		return RateAdjustment{}, err
	}

	switch {
	case urineOutputMlPerHr < UrineOutputLowMlPerHr:
		return RateAdjustment{
			NewRateMlPerHr: round1(currentRateMlPerHr * (1 + rateAdjustmentStep)),
			Adjustment:     "increase",
			Reason:         "urine output below 30 ml/hr target",
		}, nil
	case urineOutputMlPerHr > UrineOutputHighMlPerHr:
		return RateAdjustment{
			NewRateMlPerHr: round1(currentRateMlPerHr * (1 - rateAdjustmentStep)),
			Adjustment:     "decrease",
			Reason:         "urine output above 50 ml/hr target",
		}, nil
	default:
		return RateAdjustment{
			NewRateMlPerHr: round1(currentRateMlPerHr),
			Adjustment:     "maintain",
			Reason:         "urine output within 30-50 ml/hr target",
		}, nil
	}
}

// Vitals is one set of observed vital signs. Every field is optional;
// absent vitals are skipped, never treated as failing.
type Vitals struct {
	HeartRate        *float64 `json:"heart_rate,omitempty"`
	SystolicBP       *float64 `json:"systolic_bp,omitempty"`
	DiastolicBP      *float64 `json:"diastolic_bp,omitempty"`
	OxygenSaturation *float64 `json:"oxygen_saturation,omitempty"`
}

// StabilityAssessment reports whether observed vitals are within the
// protocol's bounds, with itemized reasons and follow-up recommendations.
type StabilityAssessment struct {
	Stable          bool     `json:"is_stable"`
	UnstableReasons []string `json:"unstable_reasons"`
	Recommendations []string `json:"recommendations"`
}

// Instability thresholds. The heart-rate bound is the protocol's
// deliberately conservative convention: 60 bpm and above is flagged.
const (
	unstableHeartRate  = 60.0
	unstableSystolicBP = 90.0
	unstableDiastolic  = 60.0
	unstableSpO2       = 90.0
)

// AssessVitalStability checks each provided vital sign against the
// protocol's fixed thresholds. Stable means no provided vital crossed a
// threshold; with no vitals provided, the patient is reported stable.
func AssessVitalStability(v Vitals) StabilityAssessment {
	out := StabilityAssessment{
		UnstableReasons: []string{},
		Recommendations: []string{},
	}

	if v.HeartRate != nil && *v.HeartRate >= unstableHeartRate {
		out.UnstableReasons = append(out.UnstableReasons, "heart rate at or above 60 bpm")
		out.Recommendations = append(out.Recommendations, "reassess perfusion and current infusion rate")
	}
	if v.SystolicBP != nil && *v.SystolicBP <= unstableSystolicBP {
		out.UnstableReasons = append(out.UnstableReasons, "systolic blood pressure at or below 90 mmHg")
		out.Recommendations = append(out.Recommendations, "evaluate for hypovolemia; consider fluid bolus per protocol")
	}
	if v.DiastolicBP != nil && *v.DiastolicBP <= unstableDiastolic {
		out.UnstableReasons = append(out.UnstableReasons, "diastolic blood pressure at or below 60 mmHg")
		out.Recommendations = append(out.Recommendations, "evaluate for hypovolemia; consider fluid bolus per protocol")
	}
	if v.OxygenSaturation != nil && *v.OxygenSaturation <= unstableSpO2 {
		out.UnstableReasons = append(out.UnstableReasons, "oxygen saturation at or below 90%")
		out.Recommendations = append(out.Recommendations, "assess airway and oxygenation; consider inhalation injury")
	}

	out.Stable = len(out.UnstableReasons) == 0
	return out
}

// UrineTarget is the urine output range (ml/hr) resuscitation is titrated
// toward, with the method used to derive it.
type UrineTarget struct {
	MinMlPerHr float64 `json:"min"`
	MaxMlPerHr float64 `json:"max"`
	Method     string  `json:"method"`
}

// adultAgeMonths is the pediatric/adult boundary (18 years).
const adultAgeMonths = 216.0

// UrineOutputTarget returns the protocol's urine output goal. Patients over
// 20 kg get the fixed 30-50 ml/hr window; lighter patients get a
// weight-scaled range, 1-2 ml/kg/hr for children and 0.5-1 ml/kg/hr for
// adults.
func UrineOutputTarget(weightKg, ageMonths float64) (UrineTarget, error) {
	if err := checkRange("weightKg", weightKg, MinWeightKg, MaxWeightKg); err != nil {
		return UrineTarget{}, err
	}
	if err := checkRange("ageMonths", ageMonths, MinAgeMonths, MaxAgeMonths); err != nil {
		return UrineTarget{}, err
	}

	if weightKg > 20 {
		return UrineTarget{MinMlPerHr: UrineOutputLowMlPerHr, MaxMlPerHr: UrineOutputHighMlPerHr, Method: "fixed"}, nil
	}
	if ageMonths < adultAgeMonths {
		return UrineTarget{
			MinMlPerHr: round1(1 * weightKg),
			MaxMlPerHr: round1(2 * weightKg),
			Method:     "weight-based-pediatric",
		}, nil
	}
	return UrineTarget{
		MinMlPerHr: round1(0.5 * weightKg),
		MaxMlPerHr: round1(1 * weightKg),
		Method:     "weight-based-adult",
	}, nil
}
