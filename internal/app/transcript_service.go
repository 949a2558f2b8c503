package app

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/transcript"
)

type TranscriptService struct {
	repo transcript.Repository
}

func NewTranscriptService(repo transcript.Repository) *TranscriptService {
	return &TranscriptService{repo: repo}
}

// Upload records a new transcript. The newest upload becomes authoritative
// for matching; older records are kept for history.
func (s *TranscriptService) Upload(ctx context.Context, studentID common.UUID, gpa float64, certificates []string) (*transcript.Transcript, error) {
	if gpa < 0 || gpa > 4 {
		return nil, common.NewValidationError("invalid gpa", map[string]string{"gpa": "gpa must be between 0.0 and 4.0"})
	}
	return s.repo.Add(ctx, transcript.Transcript{
		StudentID:    studentID,
		GPA:          gpa,
		Certificates: certificates,
	})
}

func (s *TranscriptService) Latest(ctx context.Context, studentID common.UUID) (*transcript.Transcript, error) {
	return s.repo.LatestByStudent(ctx, studentID)
}

func (s *TranscriptService) ListByStudent(ctx context.Context, studentID common.UUID) ([]transcript.Transcript, error) {
	return s.repo.ListByStudent(ctx, studentID)
}
