package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Assessment maps to the burn_assessment table. The computed columns
// (tbsa_pct through maintenance_ml_per_hr) are derived server-side from the
// patient attributes and region entries; client-supplied values for them are
// ignored on create and update.
type Assessment struct {
	ID               uuid.UUID     `db:"id" json:"id"`
	PatientRef       *string       `db:"patient_ref" json:"patient_ref,omitempty"`
	AgeMonths        float64       `db:"age_months" json:"age_months"`
	WeightKg         float64       `db:"weight_kg" json:"weight_kg"`
	HoursSinceInjury float64       `db:"hours_since_injury" json:"hours_since_injury"`
	Regions          []RegionEntry `db:"-" json:"regions"`
	TBSAPct          float64       `db:"tbsa_pct" json:"tbsa_pct"`
	AgeGroup         string        `db:"age_group" json:"age_group"`
	TotalMl          float64       `db:"total_ml" json:"total_ml"`
	First8hMl        float64       `db:"first_8h_ml" json:"first_8h_ml"`
	Next16hMl        float64       `db:"next_16h_ml" json:"next_16h_ml"`
	RateNowMlPerHr   float64       `db:"rate_now_ml_per_hr" json:"rate_now_ml_per_hr"`
	MaintenanceMlHr  float64       `db:"maintenance_ml_per_hr" json:"maintenance_ml_per_hr"`
	Phase            string        `db:"phase" json:"phase"`
	Warnings         []string      `db:"warnings" json:"warnings,omitempty"`
	Note             *string       `db:"note" json:"note,omitempty"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at" json:"updated_at"`
}

// RegionEntry maps to the burn_region table, one row per burned body region
// of an assessment. ContributionPct is derived.
type RegionEntry struct {
	ID              uuid.UUID `db:"id" json:"id"`
	AssessmentID    uuid.UUID `db:"assessment_id" json:"assessment_id"`
	Region          string    `db:"region" json:"region"`
	Fraction        float64   `db:"fraction" json:"fraction"`
	Depth           *string   `db:"depth" json:"depth,omitempty"`
	ContributionPct float64   `db:"contribution_pct" json:"contribution_pct"`
}

// MonitoringEntry maps to the monitoring_entry table. Observations are
// optional; the derived columns (new_rate_ml_per_hr, adjustment, reason,
// stable, unstable_reasons) are filled in from whichever observations were
// provided.
type MonitoringEntry struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	AssessmentID       uuid.UUID `db:"assessment_id" json:"assessment_id"`
	RecordedAt         time.Time `db:"recorded_at" json:"recorded_at"`
	UrineOutputMlPerHr *float64  `db:"urine_output_ml_per_hr" json:"urine_output_ml_per_hr,omitempty"`
	CurrentRateMlPerHr *float64  `db:"current_rate_ml_per_hr" json:"current_rate_ml_per_hr,omitempty"`
	HeartRate          *float64  `db:"heart_rate" json:"heart_rate,omitempty"`
	SystolicBP         *float64  `db:"systolic_bp" json:"systolic_bp,omitempty"`
	DiastolicBP        *float64  `db:"diastolic_bp" json:"diastolic_bp,omitempty"`
	OxygenSaturation   *float64  `db:"oxygen_saturation" json:"oxygen_saturation,omitempty"`
	NewRateMlPerHr     *float64  `db:"new_rate_ml_per_hr" json:"new_rate_ml_per_hr,omitempty"`
	Adjustment         *string   `db:"adjustment" json:"adjustment,omitempty"`
	Reason             *string   `db:"reason" json:"reason,omitempty"`
	Stable             *bool     `db:"stable" json:"stable,omitempty"`
	UnstableReasons    []string  `db:"unstable_reasons" json:"unstable_reasons,omitempty"`
	Note               *string   `db:"note" json:"note,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}
