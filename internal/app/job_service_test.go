package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/job"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/student"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/transcript"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/engine"
)

type jobFixture struct {
	svc           *JobService
	jobs          *fakeJobRepo
	students      *fakeStudentRepo
	transcripts   *fakeTranscriptRepo
	notifications *fakeNotificationRepo
}

func newJobFixture(t *testing.T, fanoutPage int) *jobFixture {
	t.Helper()
	f := &jobFixture{
		jobs:          newFakeJobRepo(),
		students:      newFakeStudentRepo(),
		transcripts:   newFakeTranscriptRepo(),
		notifications: newFakeNotificationRepo(),
	}
	f.svc = NewJobService(
		f.jobs, f.students, f.transcripts, f.notifications,
		engine.New(engine.DefaultConfig()),
		zap.NewNop(),
		fanoutPage,
	)
	return f
}

func (f *jobFixture) addStudent(t *testing.T, gpa float64, certificates []string) common.UUID {
	t.Helper()
	ctx := context.Background()
	id := common.NewUUID()
	if _, err := f.students.Upsert(ctx, student.Profile{UserID: id, FullName: "Student"}); err != nil {
		t.Fatalf("upsert profile: %v", err)
	}
	if gpa >= 0 {
		if _, err := f.transcripts.Add(ctx, transcript.Transcript{
			StudentID:    id,
			GPA:          gpa,
			Certificates: certificates,
		}); err != nil {
			t.Fatalf("add transcript: %v", err)
		}
	}
	return id
}

func TestJobServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t, 0)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name string
		job  job.Job
	}{
		{"empty title", job.Job{Deadline: future}},
		{"zero deadline", job.Job{Title: "Dev"}},
		{"past deadline", job.Job{Title: "Dev", Deadline: time.Now().Add(-time.Hour)}},
		{"gpa out of range", job.Job{Title: "Dev", Deadline: future, Requirements: job.Requirements{MinGPA: 4.5}}},
		{"negative experience", job.Job{Title: "Dev", Deadline: future, Requirements: job.Requirements{MinYearsExperience: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.svc.Create(ctx, tt.job); !common.Is(err, common.CodeValidation) {
				t.Errorf("Create() error = %v, want validation", err)
			}
		})
	}
}

func TestJobServiceCreateNotifiesQualifiedOnly(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t, 0)

	qualified := f.addStudent(t, 3.6, []string{"AWS Certified"})
	lowGPA := f.addStudent(t, 2.9, []string{"AWS Certified"})
	missingCert := f.addStudent(t, 3.8, nil)
	noTranscript := f.addStudent(t, -1, nil)

	created, err := f.svc.Create(ctx, job.Job{
		CompanyID: common.NewUUID(),
		Title:     "Cloud Engineer",
		Deadline:  time.Now().Add(72 * time.Hour),
		Requirements: job.Requirements{
			MinGPA:               3.0,
			RequiredCertificates: []string{"aws certified"},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !created.IsActive {
		t.Error("created job is not active")
	}

	matches := f.notifications.byKind(notification.KindJobMatch)
	if len(matches) != 1 {
		t.Fatalf("got %d match notifications, want 1", len(matches))
	}
	if matches[0].UserID != qualified {
		t.Errorf("notified %q, want %q", matches[0].UserID, qualified)
	}
	if matches[0].RefID != created.ID {
		t.Errorf("RefID = %q, want job id %q", matches[0].RefID, created.ID)
	}

	for _, id := range []common.UUID{lowGPA, missingCert, noTranscript} {
		got, err := f.notifications.ListByUser(ctx, id, 10)
		if err != nil {
			t.Fatalf("ListByUser() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("student %q got %d notifications, want 0", id, len(got))
		}
	}
}

func TestJobServiceCreateFanoutPaginates(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t, 2)

	want := make(map[common.UUID]bool)
	for i := 0; i < 5; i++ {
		want[f.addStudent(t, 3.5, nil)] = true
	}

	if _, err := f.svc.Create(ctx, job.Job{
		CompanyID:    common.NewUUID(),
		Title:        "Graduate Trainee",
		Deadline:     time.Now().Add(24 * time.Hour),
		Requirements: job.Requirements{MinGPA: 3.0},
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	matches := f.notifications.byKind(notification.KindJobMatch)
	if len(matches) != len(want) {
		t.Fatalf("got %d match notifications, want %d", len(matches), len(want))
	}
	for _, n := range matches {
		if !want[n.UserID] {
			t.Errorf("unexpected notification for %q", n.UserID)
		}
		delete(want, n.UserID)
	}
}

func TestJobServiceCreateSurvivesNotificationFailure(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t, 0)
	f.addStudent(t, 3.9, nil)
	f.notifications.failErr = errors.New("store down")

	created, err := f.svc.Create(ctx, job.Job{
		CompanyID:    common.NewUUID(),
		Title:        "Analyst",
		Deadline:     time.Now().Add(24 * time.Hour),
		Requirements: job.Requirements{MinGPA: 3.0},
	})
	if err != nil {
		t.Fatalf("Create() error = %v, posting must not fail on fan-out", err)
	}
	if created == nil || !created.IsActive {
		t.Error("job was not posted")
	}
}

func TestJobServiceUpdate(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t, 0)
	companyID := common.NewUUID()

	created, err := f.svc.Create(ctx, job.Job{
		CompanyID: companyID,
		Title:     "Dev",
		Deadline:  time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := f.svc.Update(ctx, common.NewUUID(), created.ID, time.Time{}, false); !common.Is(err, common.CodeForbidden) {
		t.Errorf("Update() by other company error = %v, want forbidden", err)
	}

	newDeadline := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	updated, err := f.svc.Update(ctx, companyID, created.ID, newDeadline, true)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !updated.Deadline.Equal(newDeadline) {
		t.Errorf("Deadline = %v, want %v", updated.Deadline, newDeadline)
	}

	// Zero deadline keeps the current one.
	kept, err := f.svc.Update(ctx, companyID, created.ID, time.Time{}, false)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !kept.Deadline.Equal(newDeadline) {
		t.Errorf("Deadline = %v, want unchanged %v", kept.Deadline, newDeadline)
	}
	if kept.IsActive {
		t.Error("IsActive = true, want false")
	}
}

func TestJobServiceDeactivateExpired(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t, 0)
	companyID := common.NewUUID()

	live, err := f.svc.Create(ctx, job.Job{
		CompanyID: companyID,
		Title:     "Live",
		Deadline:  time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	expired, err := f.jobs.Create(ctx, job.Job{
		CompanyID: companyID,
		Title:     "Expired",
		Deadline:  time.Now().Add(-time.Hour),
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create expired job: %v", err)
	}

	count, err := f.svc.DeactivateExpired(ctx)
	if err != nil {
		t.Fatalf("DeactivateExpired() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	got, err := f.jobs.GetByID(ctx, expired.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.IsActive {
		t.Error("expired job still active")
	}
	got, err = f.jobs.GetByID(ctx, live.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.IsActive {
		t.Error("live job was deactivated")
	}
}
