package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/job"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/student"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/transcript"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/engine"
)

type JobService struct {
	jobs          job.Repository
	students      student.Repository
	transcripts   transcript.Repository
	notifications notification.Repository
	engine        *engine.Engine
	logger        *zap.Logger
	fanoutPage    int
}

func NewJobService(
	jobs job.Repository,
	students student.Repository,
	transcripts transcript.Repository,
	notifications notification.Repository,
	eng *engine.Engine,
	logger *zap.Logger,
	fanoutPageSize int,
) *JobService {
	if fanoutPageSize <= 0 {
		fanoutPageSize = 200
	}
	return &JobService{
		jobs:          jobs,
		students:      students,
		transcripts:   transcripts,
		notifications: notifications,
		engine:        eng,
		logger:        logger,
		fanoutPage:    fanoutPageSize,
	}
}

// Create posts a job and fans out match notifications to qualifying
// students. Fan-out problems are logged and never fail the posting.
func (s *JobService) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	if j.Title == "" {
		return nil, common.NewError(common.CodeValidation, "title is required", nil)
	}
	if j.Deadline.IsZero() || !j.Deadline.After(time.Now()) {
		return nil, common.NewValidationError("invalid deadline", map[string]string{"deadline": "deadline must be in the future"})
	}
	if err := validateRequirements(j.Requirements); err != nil {
		return nil, err
	}
	j.IsActive = true

	created, err := s.jobs.Create(ctx, j)
	if err != nil {
		return nil, err
	}
	s.notifyQualified(ctx, *created)
	return created, nil
}

func validateRequirements(req job.Requirements) error {
	fields := map[string]string{}
	if req.MinGPA < 0 || req.MinGPA > 4 {
		fields["min_gpa"] = "min_gpa must be between 0.0 and 4.0"
	}
	if req.MinYearsExperience < 0 {
		fields["min_years_experience"] = "min_years_experience cannot be negative"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid requirements", fields)
	}
	return nil
}

// notifyQualified streams the student set page by page, evaluates the
// qualification gate against each student's authoritative transcript, and
// writes one notification per qualifying student. At-least-once is fine;
// individual failures are skipped.
func (s *JobService) notifyQualified(ctx context.Context, j job.Job) {
	now := time.Now()
	var after common.UUID
	notified := 0
	for {
		page, err := s.students.ListPage(ctx, after, s.fanoutPage)
		if err != nil {
			s.logger.Warn("fan-out aborted: student page load failed",
				zap.String("job_id", j.ID.String()), zap.Error(err))
			return
		}
		if len(page) == 0 {
			break
		}

		ids := make([]common.UUID, 0, len(page))
		for _, profile := range page {
			ids = append(ids, profile.UserID)
		}
		latest, err := s.transcripts.LatestByStudents(ctx, ids)
		if err != nil {
			s.logger.Warn("fan-out aborted: transcript batch load failed",
				zap.String("job_id", j.ID.String()), zap.Error(err))
			return
		}

		for _, profile := range page {
			t, hasTranscript := latest[profile.UserID]
			if !hasTranscript {
				continue
			}
			applicant := engine.Applicant{
				StudentID:       profile.UserID,
				Transcript:      &t,
				YearsExperience: profile.YearsExperience(now),
			}
			if !s.engine.Qualified(applicant, j) {
				continue
			}
			notify(ctx, s.logger, s.notifications, notification.Notification{
				UserID: profile.UserID,
				Kind:   notification.KindJobMatch,
				Title:  "New job matches your profile",
				Body:   j.Title + " — you meet the stated requirements.",
				RefID:  j.ID,
			})
			notified++
		}

		after = page[len(page)-1].UserID
		if len(page) < s.fanoutPage {
			break
		}
	}
	s.logger.Info("job match fan-out complete",
		zap.String("job_id", j.ID.String()), zap.Int("notified", notified))
}

// Update edits the mutable fields only: deadline and isActive. Core fields
// are immutable after creation.
func (s *JobService) Update(ctx context.Context, companyID, jobID common.UUID, deadline time.Time, isActive bool) (*job.Job, error) {
	current, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if current.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	if deadline.IsZero() {
		deadline = current.Deadline
	}
	return s.jobs.Update(ctx, jobID, deadline, isActive)
}

func (s *JobService) Deactivate(ctx context.Context, companyID, jobID common.UUID) (*job.Job, error) {
	current, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if current.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	return s.jobs.Update(ctx, jobID, current.Deadline, false)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) ListActive(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.jobs.ListActive(ctx, limit, offset)
}

func (s *JobService) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	return s.jobs.ListByCompany(ctx, companyID)
}

// DeactivateExpired is the sweeper entry point.
func (s *JobService) DeactivateExpired(ctx context.Context) (int64, error) {
	count, err := s.jobs.DeactivateExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Info("deactivated expired jobs", zap.Int64("count", count))
	}
	return count, nil
}
