package job

import (
	"context"
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	// Update persists the mutable fields (deadline, isActive) only.
	Update(ctx context.Context, id common.UUID, deadline time.Time, isActive bool) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	ListActive(ctx context.Context, limit, offset int) ([]Job, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]Job, error)
	// DeactivateExpired flips is_active off for jobs whose deadline has
	// passed and returns how many were touched.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
