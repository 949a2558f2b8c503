package app

import (
	"context"
	"strings"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/institution"
)

// CatalogService manages the institution and course catalog.
type CatalogService struct {
	institutions institution.Repository
	courses      institution.CourseRepository
}

func NewCatalogService(institutions institution.Repository, courses institution.CourseRepository) *CatalogService {
	return &CatalogService{institutions: institutions, courses: courses}
}

func (s *CatalogService) CreateInstitution(ctx context.Context, inst institution.Institution) (*institution.Institution, error) {
	inst.Name = strings.TrimSpace(inst.Name)
	if inst.Name == "" {
		return nil, common.NewError(common.CodeValidation, "name is required", nil)
	}
	return s.institutions.Create(ctx, inst)
}

func (s *CatalogService) ListInstitutions(ctx context.Context) ([]institution.Institution, error) {
	return s.institutions.List(ctx)
}

func (s *CatalogService) GetInstitution(ctx context.Context, id common.UUID) (*institution.Institution, error) {
	return s.institutions.GetByID(ctx, id)
}

// CreateCourse requires the acting institution user to own the course's
// institution.
func (s *CatalogService) CreateCourse(ctx context.Context, actorInstitutionID common.UUID, course institution.Course) (*institution.Course, error) {
	course.Name = strings.TrimSpace(course.Name)
	if course.Name == "" {
		return nil, common.NewError(common.CodeValidation, "name is required", nil)
	}
	if course.InstitutionID == "" {
		return nil, common.NewError(common.CodeValidation, "institution_id is required", nil)
	}
	if course.InstitutionID != actorInstitutionID {
		return nil, common.NewError(common.CodeForbidden, "course belongs to another institution", nil)
	}
	if _, err := s.institutions.GetByID(ctx, course.InstitutionID); err != nil {
		return nil, err
	}
	return s.courses.Create(ctx, course)
}

func (s *CatalogService) ListCourses(ctx context.Context, institutionID common.UUID) ([]institution.Course, error) {
	return s.courses.ListByInstitution(ctx, institutionID)
}

func (s *CatalogService) GetCourse(ctx context.Context, id common.UUID) (*institution.Course, error) {
	return s.courses.GetByID(ctx, id)
}
