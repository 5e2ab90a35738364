package assessment

import (
	"context"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	Create(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	Update(ctx context.Context, a *Assessment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Assessment, int, error)
	ListByPatientRef(ctx context.Context, patientRef string, limit, offset int) ([]*Assessment, int, error)
}

type MonitoringRepository interface {
	Add(ctx context.Context, e *MonitoringEntry) error
	ListByAssessment(ctx context.Context, assessmentID uuid.UUID) ([]*MonitoringEntry, error)
}
