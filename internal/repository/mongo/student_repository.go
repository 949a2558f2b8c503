package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/student"
)

type StudentProfileRepository struct {
	collection *mongo.Collection
}

func NewStudentProfileRepository(db *mongo.Database) *StudentProfileRepository {
	return &StudentProfileRepository{collection: db.Collection("student_profiles")}
}

func (r *StudentProfileRepository) Upsert(ctx context.Context, profile student.Profile) (*student.Profile, error) {
	now := time.Now().UTC()
	profile.UpdatedAt = now
	update := bson.M{
		"$set": bson.M{
			"full_name":    profile.FullName,
			"phone":        profile.Phone,
			"certificates": profile.Certificates,
			"experience":   profile.Experience,
			"updated_at":   profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": profile.UserID}, update, opts); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert profile", err)
	}
	return r.GetByUserID(ctx, profile.UserID)
}

func (r *StudentProfileRepository) GetByUserID(ctx context.Context, userID common.UUID) (*student.Profile, error) {
	var profile student.Profile
	if err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "student profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load profile", err)
	}
	return &profile, nil
}

func (r *StudentProfileRepository) GetByUserIDs(ctx context.Context, userIDs []common.UUID) (map[common.UUID]student.Profile, error) {
	if len(userIDs) == 0 {
		return map[common.UUID]student.Profile{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to batch-load profiles", err)
	}
	defer cursor.Close(ctx)
	profiles := make(map[common.UUID]student.Profile, len(userIDs))
	for cursor.Next(ctx) {
		var profile student.Profile
		if err := cursor.Decode(&profile); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to decode profile", err)
		}
		profiles[profile.UserID] = profile
	}
	if err := cursor.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate profiles", err)
	}
	return profiles, nil
}

func (r *StudentProfileRepository) ListPage(ctx context.Context, afterID common.UUID, limit int) ([]student.Profile, error) {
	filter := bson.M{}
	if afterID != "" {
		filter["_id"] = bson.M{"$gt": afterID}
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list profiles", err)
	}
	defer cursor.Close(ctx)
	var profiles []student.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode profiles", err)
	}
	return profiles, nil
}
