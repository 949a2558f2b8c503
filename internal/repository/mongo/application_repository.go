package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/application"
)

type ApplicationRepository struct {
	collection *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{collection: db.Collection("applications")}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, app); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	var app application.Application
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.Application, error) {
	return r.list(ctx, bson.M{"student_id": studentID})
}

func (r *ApplicationRepository) ListByInstitution(ctx context.Context, institutionID common.UUID) ([]application.Application, error) {
	return r.list(ctx, bson.M{"institution_id": institutionID})
}

func (r *ApplicationRepository) list(ctx context.Context, filter bson.M) ([]application.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer cursor.Close(ctx)
	var items []application.Application
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode applications", err)
	}
	return items, nil
}

func (r *ApplicationRepository) CountActive(ctx context.Context, studentID, institutionID common.UUID) (int64, error) {
	filter := bson.M{
		"student_id":     studentID,
		"institution_id": institutionID,
		"status":         bson.M{"$ne": application.StatusWithdrawn},
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	return count, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	if result.MatchedCount == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[application.Status]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to aggregate applications", err)
	}
	defer cursor.Close(ctx)
	var rows []struct {
		Status application.Status `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode aggregation", err)
	}
	counts := make(map[application.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
