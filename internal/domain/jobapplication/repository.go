package jobapplication

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app JobApplication) (*JobApplication, error)
	GetByID(ctx context.Context, id common.UUID) (*JobApplication, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]JobApplication, error)
	ListByStudent(ctx context.Context, studentID common.UUID) ([]JobApplication, error)
	FindByJobAndStudent(ctx context.Context, jobID, studentID common.UUID) (*JobApplication, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*JobApplication, error)
}
