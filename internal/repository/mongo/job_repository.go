package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/job"
)

type JobRepository struct {
	collection *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{collection: db.Collection("jobs")}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, j); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, id common.UUID, deadline time.Time, isActive bool) (*job.Job, error) {
	update := bson.M{"$set": bson.M{
		"deadline":   deadline,
		"is_active":  isActive,
		"updated_at": time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	if result.MatchedCount == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	var j job.Job
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &j, nil
}

func (r *JobRepository) ListActive(ctx context.Context, limit, offset int) ([]job.Job, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer cursor.Close(ctx)
	var items []job.Job
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode jobs", err)
	}
	return items, nil
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company jobs", err)
	}
	defer cursor.Close(ctx)
	var items []job.Job
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode jobs", err)
	}
	return items, nil
}

func (r *JobRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{"is_active": true, "deadline": bson.M{"$lte": now}}
	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": now.UTC()}}
	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to deactivate expired jobs", err)
	}
	return result.ModifiedCount, nil
}

func (r *JobRepository) CountActive(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}
	return count, nil
}
