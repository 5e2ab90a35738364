package assessment

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Assessment Repository ===========

type assessmentRepoPG struct{ pool *pgxpool.Pool }

func NewAssessmentRepoPG(pool *pgxpool.Pool) AssessmentRepository {
	return &assessmentRepoPG{pool: pool}
}

const assessmentCols = `id, patient_ref, age_months, weight_kg, hours_since_injury,
	tbsa_pct, age_group, total_ml, first_8h_ml, next_16h_ml,
	rate_now_ml_per_hr, maintenance_ml_per_hr, phase, warnings, note, created_at, updated_at`

func scanAssessment(row pgx.Row) (*Assessment, error) {
	var a Assessment
	err := row.Scan(&a.ID, &a.PatientRef, &a.AgeMonths, &a.WeightKg, &a.HoursSinceInjury,
		&a.TBSAPct, &a.AgeGroup, &a.TotalMl, &a.First8hMl, &a.Next16hMl,
		&a.RateNowMlPerHr, &a.MaintenanceMlHr, &a.Phase, &a.Warnings, &a.Note, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func insertRegions(ctx context.Context, q queryable, a *Assessment) error {
	for i := range a.Regions {
		reg := &a.Regions[i]
		reg.ID = uuid.New()
		reg.AssessmentID = a.ID
		_, err := q.Exec(ctx, `
			INSERT INTO burn_region (id, assessment_id, region, fraction, depth, contribution_pct)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			reg.ID, reg.AssessmentID, reg.Region, reg.Fraction, reg.Depth, reg.ContributionPct)
		if err != nil {
			return err
		}
	}
	return nil
}

func loadRegions(ctx context.Context, q queryable, assessmentID uuid.UUID) ([]RegionEntry, error) {
	rows, err := q.Query(ctx, `
		SELECT id, assessment_id, region, fraction, depth, contribution_pct
		FROM burn_region WHERE assessment_id = $1 ORDER BY region`, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RegionEntry
	for rows.Next() {
		var reg RegionEntry
		if err := rows.Scan(&reg.ID, &reg.AssessmentID, &reg.Region, &reg.Fraction, &reg.Depth, &reg.ContributionPct); err != nil {
			return nil, err
		}
		items = append(items, reg)
	}
	return items, rows.Err()
}

// Create inserts the assessment and its region rows in one transaction.
func (r *assessmentRepoPG) Create(ctx context.Context, a *Assessment) error {
	a.ID = uuid.New()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO burn_assessment (id, patient_ref, age_months, weight_kg, hours_since_injury,
			tbsa_pct, age_group, total_ml, first_8h_ml, next_16h_ml,
			rate_now_ml_per_hr, maintenance_ml_per_hr, phase, warnings, note)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		a.ID, a.PatientRef, a.AgeMonths, a.WeightKg, a.HoursSinceInjury,
		a.TBSAPct, a.AgeGroup, a.TotalMl, a.First8hMl, a.Next16hMl,
		a.RateNowMlPerHr, a.MaintenanceMlHr, a.Phase, a.Warnings, a.Note)
	if err != nil {
		return err
	}
	if err := insertRegions(ctx, tx, a); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *assessmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	a, err := scanAssessment(r.pool.QueryRow(ctx, `SELECT `+assessmentCols+` FROM burn_assessment WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	a.Regions, err = loadRegions(ctx, r.pool, a.ID)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Update rewrites the assessment row and replaces its region rows in one
// transaction.
func (r *assessmentRepoPG) Update(ctx context.Context, a *Assessment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE burn_assessment SET patient_ref=$2, age_months=$3, weight_kg=$4, hours_since_injury=$5,
			tbsa_pct=$6, age_group=$7, total_ml=$8, first_8h_ml=$9, next_16h_ml=$10,
			rate_now_ml_per_hr=$11, maintenance_ml_per_hr=$12, phase=$13, warnings=$14,
			note=$15, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.PatientRef, a.AgeMonths, a.WeightKg, a.HoursSinceInjury,
		a.TBSAPct, a.AgeGroup, a.TotalMl, a.First8hMl, a.Next16hMl,
		a.RateNowMlPerHr, a.MaintenanceMlHr, a.Phase, a.Warnings, a.Note)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	if _, err := tx.Exec(ctx, `DELETE FROM burn_region WHERE assessment_id = $1`, a.ID); err != nil {
		return err
	}
	if err := insertRegions(ctx, tx, a); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *assessmentRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM burn_assessment WHERE id = $1`, id)
	return err
}

func (r *assessmentRepoPG) List(ctx context.Context, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM burn_assessment`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+assessmentCols+` FROM burn_assessment ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, a := range items {
		if a.Regions, err = loadRegions(ctx, r.pool, a.ID); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (r *assessmentRepoPG) ListByPatientRef(ctx context.Context, patientRef string, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM burn_assessment WHERE patient_ref = $1`, patientRef).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+assessmentCols+` FROM burn_assessment WHERE patient_ref = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientRef, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, a := range items {
		if a.Regions, err = loadRegions(ctx, r.pool, a.ID); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

// =========== Monitoring Repository ===========

type monitoringRepoPG struct{ pool *pgxpool.Pool }

func NewMonitoringRepoPG(pool *pgxpool.Pool) MonitoringRepository {
	return &monitoringRepoPG{pool: pool}
}

const monitoringCols = `id, assessment_id, recorded_at, urine_output_ml_per_hr, current_rate_ml_per_hr,
	heart_rate, systolic_bp, diastolic_bp, oxygen_saturation,
	new_rate_ml_per_hr, adjustment, reason, stable, unstable_reasons, note, created_at`

func (r *monitoringRepoPG) Add(ctx context.Context, e *MonitoringEntry) error {
	e.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO monitoring_entry (id, assessment_id, recorded_at, urine_output_ml_per_hr, current_rate_ml_per_hr,
			heart_rate, systolic_bp, diastolic_bp, oxygen_saturation,
			new_rate_ml_per_hr, adjustment, reason, stable, unstable_reasons, note)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		e.ID, e.AssessmentID, e.RecordedAt, e.UrineOutputMlPerHr, e.CurrentRateMlPerHr,
		e.HeartRate, e.SystolicBP, e.DiastolicBP, e.OxygenSaturation,
		e.NewRateMlPerHr, e.Adjustment, e.Reason, e.Stable, e.UnstableReasons, e.Note)
	return err
}

func (r *monitoringRepoPG) ListByAssessment(ctx context.Context, assessmentID uuid.UUID) ([]*MonitoringEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+monitoringCols+` FROM monitoring_entry
		WHERE assessment_id = $1 ORDER BY recorded_at`, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*MonitoringEntry
	for rows.Next() {
		var e MonitoringEntry
		if err := rows.Scan(&e.ID, &e.AssessmentID, &e.RecordedAt, &e.UrineOutputMlPerHr, &e.CurrentRateMlPerHr,
			&e.HeartRate, &e.SystolicBP, &e.DiastolicBP, &e.OxygenSaturation,
			&e.NewRateMlPerHr, &e.Adjustment, &e.Reason, &e.Stable, &e.UnstableReasons, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}
