package app

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/application"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/institution"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/engine"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/locker"
)

type ApplicationService struct {
	repo          application.Repository
	courses       institution.CourseRepository
	institutions  institution.Repository
	engine        *engine.Engine
	locks         locker.Locker
	notifications notification.Repository
	logger        *zap.Logger
	lockTTL       time.Duration
}

func NewApplicationService(
	repo application.Repository,
	courses institution.CourseRepository,
	institutions institution.Repository,
	eng *engine.Engine,
	locks locker.Locker,
	notifications notification.Repository,
	logger *zap.Logger,
	lockTTL time.Duration,
) *ApplicationService {
	return &ApplicationService{
		repo:          repo,
		courses:       courses,
		institutions:  institutions,
		engine:        eng,
		locks:         locks,
		notifications: notifications,
		logger:        logger,
		lockTTL:       lockTTL,
	}
}

// CanApply runs the eligibility check against a freshly loaded application
// set without taking the lock. Advisory only: Apply re-checks under the lock
// before persisting.
func (s *ApplicationService) CanApply(ctx context.Context, studentID, institutionID common.UUID) (engine.Decision, error) {
	apps, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return engine.Decision{}, err
	}
	return s.engine.CheckEligibility(apps, institutionID), nil
}

// Apply creates a course application if the student is eligible. The
// check-then-create sequence is serialized per (student, institution) so
// concurrent submissions cannot overshoot the institution limit.
func (s *ApplicationService) Apply(ctx context.Context, studentID, courseID common.UUID, personalStatement string, documents []string) (*application.Application, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	inst, err := s.institutions.GetByID(ctx, course.InstitutionID)
	if err != nil {
		return nil, err
	}

	key := "apply:" + studentID.String() + ":" + inst.ID.String()
	release, ok, err := s.locks.Acquire(ctx, key, s.lockTTL)
	if err != nil {
		return nil, common.NewError(common.CodeUnavailable, "lock service unavailable", err)
	}
	if !ok {
		return nil, common.NewError(common.CodeConflict, "another application is being processed, retry shortly", nil)
	}
	defer release()

	apps, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if decision := s.engine.CheckEligibility(apps, inst.ID); !decision.Allowed {
		return nil, common.NewEligibilityError(decision.Reason)
	}

	created, err := s.repo.Create(ctx, application.Application{
		StudentID:         studentID,
		CourseID:          course.ID,
		InstitutionID:     inst.ID,
		PersonalStatement: strings.TrimSpace(personalStatement),
		Documents:         documents,
		Status:            application.StatusPending,
	})
	if err != nil {
		return nil, err
	}

	notify(ctx, s.logger, s.notifications, notification.Notification{
		UserID: studentID,
		Kind:   notification.KindApplicationReceived,
		Title:  "Application received",
		Body:   "Your application to " + course.Name + " at " + inst.Name + " was received.",
		RefID:  created.ID,
	})
	return created, nil
}

// Withdraw lets a student pull a pending application. Withdrawn applications
// stop counting toward the institution limit.
func (s *ApplicationService) Withdraw(ctx context.Context, studentID, applicationID common.UUID) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.StudentID != studentID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another student", nil)
	}
	if app.Status != application.StatusPending {
		return nil, common.NewError(common.CodeValidation, "only pending applications can be withdrawn", nil)
	}
	return s.repo.UpdateStatus(ctx, applicationID, application.StatusWithdrawn)
}

// UpdateStatus is the institution decision path: pending applications may be
// admitted or rejected, nothing else moves.
func (s *ApplicationService) UpdateStatus(ctx context.Context, institutionID, applicationID common.UUID, status application.Status) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.InstitutionID != institutionID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another institution", nil)
	}
	next := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if next != application.StatusAdmitted && next != application.StatusRejected {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be admitted or rejected"})
	}
	if app.Status != application.StatusPending {
		return nil, common.NewError(common.CodeValidation, "application status is final", nil)
	}

	updated, err := s.repo.UpdateStatus(ctx, applicationID, next)
	if err != nil {
		return nil, err
	}

	title := "Application update"
	body := "Your application was rejected."
	if next == application.StatusAdmitted {
		body = "Congratulations, you have been admitted."
	}
	notify(ctx, s.logger, s.notifications, notification.Notification{
		UserID: app.StudentID,
		Kind:   notification.KindApplicationDecided,
		Title:  title,
		Body:   body,
		RefID:  app.ID,
	})
	return updated, nil
}

func (s *ApplicationService) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.Application, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *ApplicationService) ListByInstitution(ctx context.Context, institutionID common.UUID) ([]application.Application, error) {
	return s.repo.ListByInstitution(ctx, institutionID)
}
