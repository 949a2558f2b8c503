package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/transcript"
)

type TranscriptRepository struct {
	collection *mongo.Collection
}

func NewTranscriptRepository(db *mongo.Database) *TranscriptRepository {
	return &TranscriptRepository{collection: db.Collection("transcripts")}
}

func (r *TranscriptRepository) Add(ctx context.Context, t transcript.Transcript) (*transcript.Transcript, error) {
	t.ID = common.NewUUID()
	if t.UploadedAt.IsZero() {
		t.UploadedAt = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, t); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to add transcript", err)
	}
	return &t, nil
}

func (r *TranscriptRepository) LatestByStudent(ctx context.Context, studentID common.UUID) (*transcript.Transcript, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	var t transcript.Transcript
	if err := r.collection.FindOne(ctx, bson.M{"student_id": studentID}, opts).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "no transcript on file", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load transcript", err)
	}
	return &t, nil
}

// LatestByStudents batch-loads every transcript for the id set in one query
// and keeps the newest per student, avoiding an N+1 fetch during ranking.
func (r *TranscriptRepository) LatestByStudents(ctx context.Context, studentIDs []common.UUID) (map[common.UUID]transcript.Transcript, error) {
	if len(studentIDs) == 0 {
		return map[common.UUID]transcript.Transcript{}, nil
	}
	filter := bson.M{"student_id": bson.M{"$in": studentIDs}}
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to batch-load transcripts", err)
	}
	defer cursor.Close(ctx)

	latest := make(map[common.UUID]transcript.Transcript, len(studentIDs))
	for cursor.Next(ctx) {
		var t transcript.Transcript
		if err := cursor.Decode(&t); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to decode transcript", err)
		}
		if _, seen := latest[t.StudentID]; !seen {
			latest[t.StudentID] = t
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate transcripts", err)
	}
	return latest, nil
}

func (r *TranscriptRepository) ListByStudent(ctx context.Context, studentID common.UUID) ([]transcript.Transcript, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID}, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list transcripts", err)
	}
	defer cursor.Close(ctx)
	var items []transcript.Transcript
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode transcripts", err)
	}
	return items, nil
}

func (r *TranscriptRepository) CountStudentsWithTranscript(ctx context.Context) (int64, error) {
	ids, err := r.collection.Distinct(ctx, "student_id", bson.M{})
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count transcript holders", err)
	}
	return int64(len(ids)), nil
}
