package institution

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Repository interface {
	Create(ctx context.Context, inst Institution) (*Institution, error)
	GetByID(ctx context.Context, id common.UUID) (*Institution, error)
	List(ctx context.Context) ([]Institution, error)
}

type CourseRepository interface {
	Create(ctx context.Context, course Course) (*Course, error)
	GetByID(ctx context.Context, id common.UUID) (*Course, error)
	ListByInstitution(ctx context.Context, institutionID common.UUID) ([]Course, error)
}
