package burn

// Phase tags which half of the 24-hour Parkland window a value belongs to.
type Phase string

const (
	PhaseFirst8 Phase = "first8"
	PhaseNext16 Phase = "next16"
)

// Valid input domains for the fluid calculator.
const (
	MinWeightKg         = 0.5
	MaxWeightKg         = 300.0
	MaxTBSAPct          = 100.0
	MaxHoursSinceInjury = 168.0
)

// parklandMlPerKgPct is the Parkland coefficient: 4 ml per kg per %TBSA over
// the first 24 hours.
const parklandMlPerKgPct = 4.0

// TimelinePoint is one entry of the hourly cumulative delivery schedule.
type TimelinePoint struct {
	Hour     int     `json:"hour"`
	TargetMl float64 `json:"target_ml"`
	Phase    Phase   `json:"phase"`
}

// FluidPlan is the full resuscitation picture for one point in time:
// fixed 24-hour volumes, progress given the elapsed hours, the rate needed
// from now on, the hour-by-hour schedule, and the separate maintenance rate.
type FluidPlan struct {
	TotalMl            float64         `json:"total_ml"`
	First8hMl          float64         `json:"first_8h_ml"`
	Next16hMl          float64         `json:"next_16h_ml"`
	DeliveredFirst8hMl float64         `json:"delivered_first_8h_ml"`
	DeliveredNext16hMl float64         `json:"delivered_next_16h_ml"`
	RemainingFirst8hMl float64         `json:"remaining_first_8h_ml"`
	RemainingNext16hMl float64         `json:"remaining_next_16h_ml"`
	RateNowMlPerHr     float64         `json:"rate_now_ml_per_hr"`
	Phase              Phase           `json:"phase"`
	Timeline           []TimelinePoint `json:"timeline"`
	MaintenanceMlPerHr float64         `json:"maintenance_ml_per_hr"`
	Notices            []string        `json:"notices,omitempty"`
}

// CalculateFluids builds a Parkland fluid plan. The 24-hour total depends
// only on weight and TBSA; hoursSinceInjury redistributes that fixed total
// across what has been delivered and what remains. Volumes and rates are
// rounded to one decimal at output only.
func CalculateFluids(weightKg, tbsaPct, hoursSinceInjury float64) (*FluidPlan, error) {
	if err := checkRange("weightKg", weightKg, MinWeightKg, MaxWeightKg); err != nil {
		return nil, err
	}
	if err := checkRange("tbsaPct", tbsaPct, 0, MaxTBSAPct); err != nil {
		return nil, err
	}
	if err := checkRange("hoursSinceInjury", hoursSinceInjury, 0, MaxHoursSinceInjury); err != nil {
		return nil, err
	}

	total := parklandMlPerKgPct * weightKg * tbsaPct
	first8 := total / 2
	next16 := total / 2

	var (
		deliveredFirst8, deliveredNext16 float64
		remainingFirst8, remainingNext16 float64
		rate                             float64
		phase                            Phase
	)
	switch {
	case hoursSinceInjury < 8:
		deliveredFirst8 = (hoursSinceInjury / 8) * first8
		remainingFirst8 = first8 - deliveredFirst8
		remainingNext16 = next16
		rate = remainingFirst8 / (8 - hoursSinceInjury)
		phase = PhaseFirst8
	case hoursSinceInjury <= 24:
		deliveredFirst8 = first8
		elapsed := (hoursSinceInjury - 8) / 16
		deliveredNext16 = next16 * elapsed
		remainingNext16 = next16 * (1 - elapsed)
		if hoursSinceInjury < 24 {
			rate = remainingNext16 / (24 - hoursSinceInjury)
		}
		phase = PhaseNext16
	default:
		// Resuscitation window elapsed; maintenance-only regime.
		deliveredFirst8 = first8
		deliveredNext16 = next16
		phase = PhaseNext16
	}
	if rate < 0 {
		rate = 0
	}

	timeline := make([]TimelinePoint, 0, 25)
	for hour := 0; hour <= 24; hour++ {
		point := TimelinePoint{Hour: hour}
		if hour < 8 {
			point.TargetMl = round1(float64(hour) / 8 * first8)
			point.Phase = PhaseFirst8
		} else {
			point.TargetMl = round1(first8 + float64(hour-8)/16*next16)
			point.Phase = PhaseNext16
		}
		timeline = append(timeline, point)
	}

	maintenance := maintenanceMlPerHr(weightKg)

	plan := &FluidPlan{
		TotalMl:            round1(total),
		First8hMl:          round1(first8),
		Next16hMl:          round1(next16),
		DeliveredFirst8hMl: round1(deliveredFirst8),
		DeliveredNext16hMl: round1(deliveredNext16),
		RemainingFirst8hMl: round1(remainingFirst8),
		RemainingNext16hMl: round1(remainingNext16),
		RateNowMlPerHr:     round1(rate),
		Phase:              phase,
		Timeline:           timeline,
		MaintenanceMlPerHr: round1(maintenance),
	}
	if tbsaPct < 10 {
		plan.Notices = append(plan.Notices, "Parkland formula is typically reserved for burns >=10% TBSA")
	}
	if hoursSinceInjury > 24 {
		plan.Notices = append(plan.Notices, "delayed presentation (>24h since injury): resuscitation window has elapsed")
	}
	return plan, nil
}

// MaintenanceRate returns the Holliday-Segar (4-2-1) hourly maintenance
// fluid rate for the given weight, rounded to one decimal.
func MaintenanceRate(weightKg float64) (float64, error) {
	if err := checkRange("weightKg", weightKg, MinWeightKg, MaxWeightKg); err != nil {
		return 0, err
	}
	return round1(maintenanceMlPerHr(weightKg)), nil
}

// maintenanceMlPerHr applies the cumulative 4-2-1 tiers: 4 ml/kg/hr for the
// first 10 kg, 2 ml/kg/hr for the next 10 kg, 1 ml/kg/hr for the remainder.
func maintenanceMlPerHr(weightKg float64) float64 {
	switch {
	case weightKg <= 10:
		return 4 * weightKg
	case weightKg <= 20:
		return 40 + 2*(weightKg-10)
	default:
		return 60 + (weightKg - 20)
	}
}
