package application

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	// ListByStudent returns the student's full application set across all
	// institutions and statuses, freshly read.
	ListByStudent(ctx context.Context, studentID common.UUID) ([]Application, error)
	ListByInstitution(ctx context.Context, institutionID common.UUID) ([]Application, error)
	CountActive(ctx context.Context, studentID, institutionID common.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
