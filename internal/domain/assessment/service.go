package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/burncare/burncare/internal/burn"
)

type Service struct {
	assessments AssessmentRepository
	monitoring  MonitoringRepository
	calc        *burn.Calculator
}

func NewService(assessments AssessmentRepository, monitoring MonitoringRepository, calc *burn.Calculator) *Service {
	return &Service{assessments: assessments, monitoring: monitoring, calc: calc}
}

// Calculator exposes the reference calculator for stateless endpoints.
func (s *Service) Calculator() *burn.Calculator {
	return s.calc
}

// compute validates the patient attributes and region entries, then fills the
// derived fields of the assessment. All numbers the record carries come from
// here; nothing client-supplied survives into the computed columns.
func (s *Service) compute(a *Assessment) error {
	attrs := burn.PatientAttributes{
		AgeMonths:        a.AgeMonths,
		WeightKg:         a.WeightKg,
		HoursSinceInjury: a.HoursSinceInjury,
	}
	validation := burn.ValidatePatient(attrs)
	if !validation.OK() {
		return validation.Err()
	}

	seen := make(map[string]bool, len(a.Regions))
	selections := make([]burn.RegionSelection, 0, len(a.Regions))
	for _, reg := range a.Regions {
		if seen[reg.Region] {
			return &burn.ValidationError{Field: "region", Value: reg.Region, Reason: "region selected more than once"}
		}
		seen[reg.Region] = true
		sel := burn.RegionSelection{
			Region:   burn.BodyRegion(reg.Region),
			Fraction: burn.BurnFraction(reg.Fraction),
		}
		if reg.Depth != nil {
			sel.Depth = burn.BurnDepth(*reg.Depth)
		}
		selections = append(selections, sel)
	}

	tbsa, err := s.calc.TBSA(a.AgeMonths, selections)
	if err != nil {
		return err
	}
	plan, err := burn.CalculateFluids(a.WeightKg, tbsa.TotalPct, a.HoursSinceInjury)
	if err != nil {
		return err
	}

	for i := range a.Regions {
		a.Regions[i].ContributionPct = tbsa.Breakdown[burn.BodyRegion(a.Regions[i].Region)]
	}
	a.TBSAPct = tbsa.TotalPct
	a.AgeGroup = string(tbsa.AgeGroup)
	a.TotalMl = plan.TotalMl
	a.First8hMl = plan.First8hMl
	a.Next16hMl = plan.Next16hMl
	a.RateNowMlPerHr = plan.RateNowMlPerHr
	a.MaintenanceMlHr = plan.MaintenanceMlPerHr
	a.Phase = string(plan.Phase)

	// The validator and the calculators can raise the same advisory
	// (infant, delayed presentation); keep one copy of each.
	a.Warnings = a.Warnings[:0]
	dedup := make(map[string]bool)
	for _, w := range append(append(validation.Warnings, tbsa.Warnings...), plan.Notices...) {
		if !dedup[w] {
			dedup[w] = true
			a.Warnings = append(a.Warnings, w)
		}
	}
	return nil
}

func (s *Service) CreateAssessment(ctx context.Context, a *Assessment) error {
	if err := s.compute(a); err != nil {
		return err
	}
	return s.assessments.Create(ctx, a)
}

func (s *Service) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.assessments.GetByID(ctx, id)
}

// UpdateAssessment recomputes every derived field from the submitted
// attributes and regions before persisting.
func (s *Service) UpdateAssessment(ctx context.Context, a *Assessment) error {
	if err := s.compute(a); err != nil {
		return err
	}
	return s.assessments.Update(ctx, a)
}

func (s *Service) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	return s.assessments.Delete(ctx, id)
}

func (s *Service) ListAssessments(ctx context.Context, limit, offset int) ([]*Assessment, int, error) {
	return s.assessments.List(ctx, limit, offset)
}

func (s *Service) ListAssessmentsByPatientRef(ctx context.Context, patientRef string, limit, offset int) ([]*Assessment, int, error) {
	return s.assessments.ListByPatientRef(ctx, patientRef, limit, offset)
}

// AddMonitoringEntry stores one set of bedside observations against an
// assessment, deriving a rate recommendation when urine output and the
// current rate were both provided, and a stability assessment when any
// vital sign was provided.
func (s *Service) AddMonitoringEntry(ctx context.Context, e *MonitoringEntry) error {
	if _, err := s.assessments.GetByID(ctx, e.AssessmentID); err != nil {
		return err
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}

	if e.UrineOutputMlPerHr != nil && e.CurrentRateMlPerHr != nil {
		adj, err := burn.AdjustRateByUrineOutput(*e.CurrentRateMlPerHr, *e.UrineOutputMlPerHr)
		if err != nil {
			return err
		}
		e.NewRateMlPerHr = &adj.NewRateMlPerHr
		e.Adjustment = &adj.Adjustment
		e.Reason = &adj.Reason
	}

	if e.HeartRate != nil || e.SystolicBP != nil || e.DiastolicBP != nil || e.OxygenSaturation != nil {
		stability := burn.AssessVitalStability(burn.Vitals{
			HeartRate:        e.HeartRate,
			SystolicBP:       e.SystolicBP,
			DiastolicBP:      e.DiastolicBP,
			OxygenSaturation: e.OxygenSaturation,
		})
		e.Stable = &stability.Stable
		e.UnstableReasons = stability.UnstableReasons
	}

	return s.monitoring.Add(ctx, e)
}

func (s *Service) ListMonitoringEntries(ctx context.Context, assessmentID uuid.UUID) ([]*MonitoringEntry, error) {
	if _, err := s.assessments.GetByID(ctx, assessmentID); err != nil {
		return nil, err
	}
	return s.monitoring.ListByAssessment(ctx, assessmentID)
}

// UrineOutputTarget returns the titration goal for a stored assessment.
func (s *Service) UrineOutputTarget(ctx context.Context, id uuid.UUID) (burn.UrineTarget, error) {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return burn.UrineTarget{}, err
	}
	return burn.UrineOutputTarget(a.WeightKg, a.AgeMonths)
}

// Summary renders the plain-text assessment note. The fluid plan is
// recomputed from the stored attributes so the note reflects the full
// timeline, not just the persisted scalar columns.
func (s *Service) Summary(ctx context.Context, id uuid.UUID) (string, error) {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	attrs := burn.PatientAttributes{
		AgeMonths:        a.AgeMonths,
		WeightKg:         a.WeightKg,
		HoursSinceInjury: a.HoursSinceInjury,
	}
	selections := make([]burn.RegionSelection, 0, len(a.Regions))
	for _, reg := range a.Regions {
		sel := burn.RegionSelection{
			Region:   burn.BodyRegion(reg.Region),
			Fraction: burn.BurnFraction(reg.Fraction),
		}
		if reg.Depth != nil {
			sel.Depth = burn.BurnDepth(*reg.Depth)
		}
		selections = append(selections, sel)
	}
	tbsa, err := s.calc.TBSA(a.AgeMonths, selections)
	if err != nil {
		return "", err
	}
	plan, err := burn.CalculateFluids(a.WeightKg, tbsa.TotalPct, a.HoursSinceInjury)
	if err != nil {
		return "", err
	}
	return burn.Summary(attrs, tbsa, plan), nil
}
