package app

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/jobapplication"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/job"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/student"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/transcript"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/engine"
)

type JobApplicationService struct {
	repo          jobapplication.Repository
	jobs          job.Repository
	students      student.Repository
	transcripts   transcript.Repository
	notifications notification.Repository
	engine        *engine.Engine
	logger        *zap.Logger
}

func NewJobApplicationService(
	repo jobapplication.Repository,
	jobs job.Repository,
	students student.Repository,
	transcripts transcript.Repository,
	notifications notification.Repository,
	eng *engine.Engine,
	logger *zap.Logger,
) *JobApplicationService {
	return &JobApplicationService{
		repo:          repo,
		jobs:          jobs,
		students:      students,
		transcripts:   transcripts,
		notifications: notifications,
		engine:        eng,
		logger:        logger,
	}
}

// Apply records a student's application to a job, snapshotting the
// authoritative transcript at apply time. Applying without a transcript is
// allowed; the applicant simply ranks as unqualified.
func (s *JobApplicationService) Apply(ctx context.Context, studentID, jobID common.UUID) (*jobapplication.JobApplication, error) {
	profile, err := s.students.GetByUserID(ctx, studentID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeValidation, "student profile is required", nil)
		}
		return nil, err
	}
	if strings.TrimSpace(profile.FullName) == "" {
		return nil, common.NewError(common.CodeValidation, "student profile is incomplete", nil)
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !j.Open(time.Now()) {
		return nil, common.NewError(common.CodeValidation, "job is not accepting applications", nil)
	}

	if _, err := s.repo.FindByJobAndStudent(ctx, jobID, studentID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	var snapshot jobapplication.TranscriptSnapshot
	if t, err := s.transcripts.LatestByStudent(ctx, studentID); err == nil {
		snapshot = jobapplication.TranscriptSnapshot{
			TranscriptID: t.ID,
			GPA:          t.GPA,
			Certificates: t.Certificates,
			UploadedAt:   t.UploadedAt,
		}
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	return s.repo.Create(ctx, jobapplication.JobApplication{
		StudentID:  studentID,
		JobID:      jobID,
		Status:     jobapplication.StatusApplied,
		Transcript: snapshot,
	})
}

// RankApplicants returns the company's view of a job's applicant list,
// ordered by the engine's total order. Ranking uses each student's current
// authoritative transcript; the stored snapshot remains what was submitted.
func (s *JobApplicationService) RankApplicants(ctx context.Context, companyID, jobID common.UUID) ([]engine.Ranked, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}

	apps, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return []engine.Ranked{}, nil
	}

	studentIDs := make([]common.UUID, 0, len(apps))
	for _, app := range apps {
		studentIDs = append(studentIDs, app.StudentID)
	}
	latest, err := s.transcripts.LatestByStudents(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	profiles, err := s.students.GetByUserIDs(ctx, studentIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	applicants := make([]engine.Applicant, 0, len(apps))
	for _, app := range apps {
		applicant := engine.Applicant{
			ID:        app.ID,
			StudentID: app.StudentID,
			AppliedAt: app.AppliedAt,
		}
		if t, ok := latest[app.StudentID]; ok {
			copied := t
			applicant.Transcript = &copied
		}
		if profile, ok := profiles[app.StudentID]; ok {
			applicant.YearsExperience = profile.YearsExperience(now)
		}
		applicants = append(applicants, applicant)
	}

	return s.engine.Rank(applicants, *j), nil
}

// UpdateStatus moves a job application through applied → shortlisted →
// rejected. Shortlisting notifies the student.
func (s *JobApplicationService) UpdateStatus(ctx context.Context, companyID, jobAppID common.UUID, status jobapplication.Status) (*jobapplication.JobApplication, error) {
	app, err := s.repo.GetByID(ctx, jobAppID)
	if err != nil {
		return nil, err
	}
	j, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if j.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "job application belongs to another company", nil)
	}

	next := jobapplication.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if next != jobapplication.StatusShortlisted && next != jobapplication.StatusRejected {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be shortlisted or rejected"})
	}
	if !isJobAppTransitionAllowed(app.Status, next) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}

	updated, err := s.repo.UpdateStatus(ctx, jobAppID, next)
	if err != nil {
		return nil, err
	}
	if next == jobapplication.StatusShortlisted {
		notify(ctx, s.logger, s.notifications, notification.Notification{
			UserID: app.StudentID,
			Kind:   notification.KindShortlisted,
			Title:  "You have been shortlisted",
			Body:   "You were shortlisted for " + j.Title + ".",
			RefID:  j.ID,
		})
	}
	return updated, nil
}

func isJobAppTransitionAllowed(from, to jobapplication.Status) bool {
	switch from {
	case jobapplication.StatusApplied:
		return to == jobapplication.StatusShortlisted || to == jobapplication.StatusRejected
	case jobapplication.StatusShortlisted:
		return to == jobapplication.StatusRejected
	default:
		return false
	}
}

func (s *JobApplicationService) ListByStudent(ctx context.Context, studentID common.UUID) ([]jobapplication.JobApplication, error) {
	return s.repo.ListByStudent(ctx, studentID)
}
