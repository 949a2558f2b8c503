package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
)

// notify is fire-and-forget: a failed notification write is logged and
// swallowed so it can never fail the operation that triggered it.
func notify(ctx context.Context, logger *zap.Logger, repo notification.Repository, n notification.Notification) {
	if err := repo.Create(ctx, n); err != nil {
		logger.Warn("notification write failed",
			zap.String("user_id", n.UserID.String()),
			zap.String("kind", string(n.Kind)),
			zap.Error(err))
	}
}
