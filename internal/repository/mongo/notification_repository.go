package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
)

type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection("notifications")}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	if n.ID == "" {
		n.ID = common.NewUUID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, n); err != nil {
		return common.NewError(common.CodeInternal, "failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID common.UUID, limit int) ([]notification.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list notifications", err)
	}
	defer cursor.Close(ctx)
	var items []notification.Notification
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode notifications", err)
	}
	return items, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID common.UUID) error {
	now := time.Now().UTC()
	filter := bson.M{"_id": id, "user_id": userID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read_at": now}})
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to mark notification read", err)
	}
	if result.MatchedCount == 0 {
		return common.NewError(common.CodeNotFound, "notification not found", nil)
	}
	return nil
}

func (r *NotificationRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count notifications", err)
	}
	return count, nil
}
