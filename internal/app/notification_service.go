package app

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
)

type NotificationService struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID common.UUID, limit int) ([]notification.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID common.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}
