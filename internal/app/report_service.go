package app

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/application"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/job"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/transcript"
)

// Overview is the admin dashboard aggregate.
type Overview struct {
	ApplicationsByStatus    map[application.Status]int64 `json:"applications_by_status"`
	ActiveJobs              int64                        `json:"active_jobs"`
	StudentsWithTranscripts int64                        `json:"students_with_transcripts"`
	NotificationsEmitted    int64                        `json:"notifications_emitted"`
}

type ReportService struct {
	applications  application.Repository
	jobs          job.Repository
	transcripts   transcript.Repository
	notifications notification.Repository
}

func NewReportService(
	applications application.Repository,
	jobs job.Repository,
	transcripts transcript.Repository,
	notifications notification.Repository,
) *ReportService {
	return &ReportService{
		applications:  applications,
		jobs:          jobs,
		transcripts:   transcripts,
		notifications: notifications,
	}
}

func (s *ReportService) Overview(ctx context.Context) (*Overview, error) {
	byStatus, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	activeJobs, err := s.jobs.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	withTranscripts, err := s.transcripts.CountStudentsWithTranscript(ctx)
	if err != nil {
		return nil, err
	}
	emitted, err := s.notifications.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{
		ApplicationsByStatus:    byStatus,
		ActiveJobs:              activeJobs,
		StudentsWithTranscripts: withTranscripts,
		NotificationsEmitted:    emitted,
	}, nil
}
