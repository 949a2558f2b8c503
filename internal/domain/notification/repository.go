package notification

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Repository interface {
	Create(ctx context.Context, n Notification) error
	ListByUser(ctx context.Context, userID common.UUID, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID common.UUID) error
	Count(ctx context.Context) (int64, error)
}
