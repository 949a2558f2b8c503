package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// (job_id, student_id) index is what turns a duplicate-apply race into a
// conflict error instead of a duplicate document.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"applications": {
			{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "institution_id", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "institution_id", Value: 1}, {Key: "applied_at", Value: -1}}},
		},
		"job_applications": {
			{Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "student_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"jobs": {
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "deadline", Value: 1}}},
		},
		"transcripts": {
			{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "uploaded_at", Value: -1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"courses": {
			{Keys: bson.D{{Key: "institution_id", Value: 1}}},
		},
	}
	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", collection, err)
		}
	}
	return nil
}
