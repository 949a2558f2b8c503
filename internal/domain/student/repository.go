package student

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Repository interface {
	Upsert(ctx context.Context, profile Profile) (*Profile, error)
	GetByUserID(ctx context.Context, userID common.UUID) (*Profile, error)
	// ListPage returns profiles ordered by user id, starting strictly after
	// afterID. Used by the job-posting fan-out to stream the student set.
	ListPage(ctx context.Context, afterID common.UUID, limit int) ([]Profile, error)
	// GetByUserIDs batch-loads profiles for the id set. Missing profiles are
	// simply absent from the map.
	GetByUserIDs(ctx context.Context, userIDs []common.UUID) (map[common.UUID]Profile, error)
}
