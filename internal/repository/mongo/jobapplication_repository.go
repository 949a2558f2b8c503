package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/jobapplication"
)

type JobApplicationRepository struct {
	collection *mongo.Collection
}

func NewJobApplicationRepository(db *mongo.Database) *JobApplicationRepository {
	return &JobApplicationRepository{collection: db.Collection("job_applications")}
}

func (r *JobApplicationRepository) Create(ctx context.Context, app jobapplication.JobApplication) (*jobapplication.JobApplication, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, app); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.NewError(common.CodeConflict, "already applied to this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create job application", err)
	}
	return &app, nil
}

func (r *JobApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*jobapplication.JobApplication, error) {
	var app jobapplication.JobApplication
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "job application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job application", err)
	}
	return &app, nil
}

func (r *JobApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]jobapplication.JobApplication, error) {
	return r.list(ctx, bson.M{"job_id": jobID})
}

func (r *JobApplicationRepository) ListByStudent(ctx context.Context, studentID common.UUID) ([]jobapplication.JobApplication, error) {
	return r.list(ctx, bson.M{"student_id": studentID})
}

func (r *JobApplicationRepository) list(ctx context.Context, filter bson.M) ([]jobapplication.JobApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list job applications", err)
	}
	defer cursor.Close(ctx)
	var items []jobapplication.JobApplication
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode job applications", err)
	}
	return items, nil
}

func (r *JobApplicationRepository) FindByJobAndStudent(ctx context.Context, jobID, studentID common.UUID) (*jobapplication.JobApplication, error) {
	var app jobapplication.JobApplication
	filter := bson.M{"job_id": jobID, "student_id": studentID}
	if err := r.collection.FindOne(ctx, filter).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "job application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job application", err)
	}
	return &app, nil
}

func (r *JobApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status jobapplication.Status) (*jobapplication.JobApplication, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job application", err)
	}
	if result.MatchedCount == 0 {
		return nil, common.NewError(common.CodeNotFound, "job application not found", nil)
	}
	return r.GetByID(ctx, id)
}
