package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/institution"
)

type InstitutionRepository struct {
	collection *mongo.Collection
}

func NewInstitutionRepository(db *mongo.Database) *InstitutionRepository {
	return &InstitutionRepository{collection: db.Collection("institutions")}
}

func (r *InstitutionRepository) Create(ctx context.Context, inst institution.Institution) (*institution.Institution, error) {
	if inst.ID == "" {
		inst.ID = common.NewUUID()
	}
	inst.CreatedAt = time.Now().UTC()
	if _, err := r.collection.InsertOne(ctx, inst); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create institution", err)
	}
	return &inst, nil
}

func (r *InstitutionRepository) GetByID(ctx context.Context, id common.UUID) (*institution.Institution, error) {
	var inst institution.Institution
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inst); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "institution not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load institution", err)
	}
	return &inst, nil
}

func (r *InstitutionRepository) List(ctx context.Context) ([]institution.Institution, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list institutions", err)
	}
	defer cursor.Close(ctx)
	var items []institution.Institution
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode institutions", err)
	}
	return items, nil
}

type CourseRepository struct {
	collection *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{collection: db.Collection("courses")}
}

func (r *CourseRepository) Create(ctx context.Context, course institution.Course) (*institution.Course, error) {
	if course.ID == "" {
		course.ID = common.NewUUID()
	}
	course.CreatedAt = time.Now().UTC()
	if _, err := r.collection.InsertOne(ctx, course); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create course", err)
	}
	return &course, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id common.UUID) (*institution.Course, error) {
	var course institution.Course
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "course not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load course", err)
	}
	return &course, nil
}

func (r *CourseRepository) ListByInstitution(ctx context.Context, institutionID common.UUID) ([]institution.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"institution_id": institutionID}, opts)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list courses", err)
	}
	defer cursor.Close(ctx)
	var items []institution.Course
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode courses", err)
	}
	return items, nil
}
