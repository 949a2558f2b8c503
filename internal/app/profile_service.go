package app

import (
	"context"
	"strings"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/student"
)

type ProfileService struct {
	students student.Repository
}

func NewProfileService(students student.Repository) *ProfileService {
	return &ProfileService{students: students}
}

func (s *ProfileService) Get(ctx context.Context, userID common.UUID) (*student.Profile, error) {
	return s.students.GetByUserID(ctx, userID)
}

func (s *ProfileService) Upsert(ctx context.Context, profile student.Profile) (*student.Profile, error) {
	profile.FullName = strings.TrimSpace(profile.FullName)
	if profile.FullName == "" {
		return nil, common.NewError(common.CodeValidation, "full name is required", nil)
	}
	for _, emp := range profile.Experience {
		if emp.To != nil && emp.To.Before(emp.From) {
			return nil, common.NewValidationError("invalid experience entry", map[string]string{"experience": "end date precedes start date"})
		}
	}
	return s.students.Upsert(ctx, profile)
}
