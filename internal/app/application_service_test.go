package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/application"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/institution"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/engine"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/locker"
)

type applicationFixture struct {
	svc           *ApplicationService
	apps          *fakeApplicationRepo
	institutions  *fakeInstitutionRepo
	courses       *fakeCourseRepo
	notifications *fakeNotificationRepo
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	f := &applicationFixture{
		apps:          newFakeApplicationRepo(),
		institutions:  newFakeInstitutionRepo(),
		courses:       newFakeCourseRepo(),
		notifications: newFakeNotificationRepo(),
	}
	f.svc = NewApplicationService(
		f.apps, f.courses, f.institutions,
		engine.New(engine.DefaultConfig()),
		locker.NewMemoryLocker(),
		f.notifications,
		zap.NewNop(),
		5*time.Second,
	)
	return f
}

func (f *applicationFixture) addCourse(t *testing.T, instName, courseName string) (*institution.Institution, *institution.Course) {
	t.Helper()
	inst, err := f.institutions.Create(context.Background(), institution.Institution{Name: instName})
	if err != nil {
		t.Fatalf("create institution: %v", err)
	}
	course, err := f.courses.Create(context.Background(), institution.Course{
		InstitutionID: inst.ID,
		Name:          courseName,
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	return inst, course
}

func TestApplicationServiceApply(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture(t)
	_, course := f.addCourse(t, "Limkokwing", "Software Engineering")
	studentID := common.NewUUID()

	created, err := f.svc.Apply(ctx, studentID, course.ID, "  I want in  ", []string{"cv.pdf"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if created.Status != application.StatusPending {
		t.Errorf("Status = %q, want %q", created.Status, application.StatusPending)
	}
	if created.PersonalStatement != "I want in" {
		t.Errorf("PersonalStatement = %q, want trimmed", created.PersonalStatement)
	}
	if created.InstitutionID != course.InstitutionID {
		t.Errorf("InstitutionID = %q, want %q", created.InstitutionID, course.InstitutionID)
	}

	received := f.notifications.byKind(notification.KindApplicationReceived)
	if len(received) != 1 {
		t.Fatalf("got %d received notifications, want 1", len(received))
	}
	if received[0].UserID != studentID {
		t.Errorf("notification UserID = %q, want %q", received[0].UserID, studentID)
	}
}

func TestApplicationServiceApplyUnknownCourse(t *testing.T) {
	f := newApplicationFixture(t)
	_, err := f.svc.Apply(context.Background(), common.NewUUID(), common.NewUUID(), "", nil)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("Apply() error = %v, want not found", err)
	}
}

func TestApplicationServiceApplyInstitutionLimit(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture(t)
	inst, _ := f.addCourse(t, "NUL", "Computer Science")
	courses := make([]*institution.Course, 3)
	for i, name := range []string{"CS", "IT", "IS"} {
		course, err := f.courses.Create(ctx, institution.Course{InstitutionID: inst.ID, Name: name})
		if err != nil {
			t.Fatalf("create course: %v", err)
		}
		courses[i] = course
	}
	studentID := common.NewUUID()

	for i := 0; i < 2; i++ {
		if _, err := f.svc.Apply(ctx, studentID, courses[i].ID, "", nil); err != nil {
			t.Fatalf("Apply() #%d error = %v", i+1, err)
		}
	}

	_, err := f.svc.Apply(ctx, studentID, courses[2].ID, "", nil)
	if !common.Is(err, common.CodeEligibility) {
		t.Fatalf("third Apply() error = %v, want eligibility denial", err)
	}
}

func TestApplicationServiceApplyAfterWithdraw(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture(t)
	inst, first := f.addCourse(t, "Botho", "Accounting")
	second, err := f.courses.Create(ctx, institution.Course{InstitutionID: inst.ID, Name: "Finance"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	third, err := f.courses.Create(ctx, institution.Course{InstitutionID: inst.ID, Name: "Economics"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	studentID := common.NewUUID()

	firstApp, err := f.svc.Apply(ctx, studentID, first.ID, "", nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := f.svc.Apply(ctx, studentID, second.ID, "", nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Withdrawing frees a slot at the institution.
	if _, err := f.svc.Withdraw(ctx, studentID, firstApp.ID); err != nil {
		t.Fatalf("Withdraw() error = %v", err)
	}
	if _, err := f.svc.Apply(ctx, studentID, third.ID, "", nil); err != nil {
		t.Fatalf("Apply() after withdraw error = %v", err)
	}
}

func TestApplicationServiceApplyAdmittedElsewhere(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture(t)
	instA, courseA := f.addCourse(t, "Inst A", "Course A")
	_, courseB := f.addCourse(t, "Inst B", "Course B")
	studentID := common.NewUUID()

	app, err := f.svc.Apply(ctx, studentID, courseA.ID, "", nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := f.svc.UpdateStatus(ctx, instA.ID, app.ID, application.StatusAdmitted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	_, err = f.svc.Apply(ctx, studentID, courseB.ID, "", nil)
	if !common.Is(err, common.CodeEligibility) {
		t.Fatalf("Apply() after admission error = %v, want eligibility denial", err)
	}
}

// Concurrent submissions to the same institution must never overshoot the
// per-institution limit. Attempts that lose the lock retry until they get a
// real decision.
func TestApplicationServiceApplyConcurrent(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture(t)
	inst, _ := f.addCourse(t, "Race U", "seed")

	const attempts = 16
	courses := make([]common.UUID, attempts)
	for i := range courses {
		course, err := f.courses.Create(ctx, institution.Course{InstitutionID: inst.ID, Name: "course"})
		if err != nil {
			t.Fatalf("create course: %v", err)
		}
		courses[i] = course.ID
	}
	studentID := common.NewUUID()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	denied := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(courseID common.UUID) {
			defer wg.Done()
			for {
				_, err := f.svc.Apply(ctx, studentID, courseID, "", nil)
				if common.Is(err, common.CodeConflict) {
					time.Sleep(time.Millisecond)
					continue
				}
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					succeeded++
				} else if common.Is(err, common.CodeEligibility) {
					denied++
				} else {
					t.Errorf("unexpected Apply() error: %v", err)
				}
				return
			}
		}(courses[i])
	}
	wg.Wait()

	if succeeded != 2 {
		t.Errorf("succeeded = %d, want exactly 2", succeeded)
	}
	if denied != attempts-2 {
		t.Errorf("denied = %d, want %d", denied, attempts-2)
	}
	count, err := f.apps.CountActive(ctx, studentID, inst.ID)
	if err != nil {
		t.Fatalf("CountActive() error = %v", err)
	}
	if count > 2 {
		t.Errorf("active applications = %d, limit is 2", count)
	}
}

func TestApplicationServiceWithdraw(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture(t)
	_, course := f.addCourse(t, "Inst", "Course")
	studentID := common.NewUUID()

	app, err := f.svc.Apply(ctx, studentID, course.ID, "", nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if _, err := f.svc.Withdraw(ctx, common.NewUUID(), app.ID); !common.Is(err, common.CodeForbidden) {
		t.Errorf("Withdraw() by stranger error = %v, want forbidden", err)
	}

	withdrawn, err := f.svc.Withdraw(ctx, studentID, app.ID)
	if err != nil {
		t.Fatalf("Withdraw() error = %v", err)
	}
	if withdrawn.Status != application.StatusWithdrawn {
		t.Errorf("Status = %q, want %q", withdrawn.Status, application.StatusWithdrawn)
	}

	if _, err := f.svc.Withdraw(ctx, studentID, app.ID); !common.Is(err, common.CodeValidation) {
		t.Errorf("second Withdraw() error = %v, want validation", err)
	}
}

func TestApplicationServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture(t)
	inst, course := f.addCourse(t, "Inst", "Course")
	studentID := common.NewUUID()

	app, err := f.svc.Apply(ctx, studentID, course.ID, "", nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if _, err := f.svc.UpdateStatus(ctx, common.NewUUID(), app.ID, application.StatusAdmitted); !common.Is(err, common.CodeForbidden) {
		t.Errorf("UpdateStatus() by other institution error = %v, want forbidden", err)
	}
	if _, err := f.svc.UpdateStatus(ctx, inst.ID, app.ID, application.Status("pending")); !common.Is(err, common.CodeValidation) {
		t.Errorf("UpdateStatus(pending) error = %v, want validation", err)
	}

	updated, err := f.svc.UpdateStatus(ctx, inst.ID, app.ID, application.Status(" Admitted "))
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != application.StatusAdmitted {
		t.Errorf("Status = %q, want %q", updated.Status, application.StatusAdmitted)
	}

	// Decisions are final.
	if _, err := f.svc.UpdateStatus(ctx, inst.ID, app.ID, application.StatusRejected); !common.Is(err, common.CodeValidation) {
		t.Errorf("UpdateStatus() on decided application error = %v, want validation", err)
	}

	decided := f.notifications.byKind(notification.KindApplicationDecided)
	if len(decided) != 1 {
		t.Fatalf("got %d decision notifications, want 1", len(decided))
	}
	if decided[0].UserID != studentID {
		t.Errorf("notification UserID = %q, want %q", decided[0].UserID, studentID)
	}
}

func TestApplicationServiceCanApply(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture(t)
	inst, _ := f.addCourse(t, "Inst", "Course")
	studentID := common.NewUUID()

	decision, err := f.svc.CanApply(ctx, studentID, inst.ID)
	if err != nil {
		t.Fatalf("CanApply() error = %v", err)
	}
	if !decision.Allowed {
		t.Errorf("CanApply() = denied (%s), want allowed", decision.Reason)
	}

	for i := 0; i < 2; i++ {
		c, err := f.courses.Create(ctx, institution.Course{InstitutionID: inst.ID, Name: "c"})
		if err != nil {
			t.Fatalf("create course: %v", err)
		}
		if _, err := f.svc.Apply(ctx, studentID, c.ID, "", nil); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
	}
	decision, err = f.svc.CanApply(ctx, studentID, inst.ID)
	if err != nil {
		t.Fatalf("CanApply() error = %v", err)
	}
	if decision.Allowed {
		t.Error("CanApply() = allowed, want denied at limit")
	}
	if decision.Reason != engine.ReasonInstitutionLimit {
		t.Errorf("Reason = %q, want %q", decision.Reason, engine.ReasonInstitutionLimit)
	}
}
