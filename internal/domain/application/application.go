package application

import (
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAdmitted  Status = "admitted"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// Application is a student's application to an institution course.
// StudentID, CourseID and InstitutionID are immutable after creation; only
// Status and UpdatedAt change afterwards.
type Application struct {
	ID                common.UUID `json:"id" bson:"_id"`
	StudentID         common.UUID `json:"student_id" bson:"student_id"`
	CourseID          common.UUID `json:"course_id" bson:"course_id"`
	InstitutionID     common.UUID `json:"institution_id" bson:"institution_id"`
	PersonalStatement string      `json:"personal_statement,omitempty" bson:"personal_statement,omitempty"`
	Documents         []string    `json:"documents,omitempty" bson:"documents,omitempty"`
	Status            Status      `json:"status" bson:"status"`
	AppliedAt         time.Time   `json:"applied_at" bson:"applied_at"`
	UpdatedAt         time.Time   `json:"updated_at" bson:"updated_at"`
}

// Active reports whether the application counts toward the per-institution
// limit. Withdrawn applications never count.
func (a Application) Active() bool {
	return a.Status != StatusWithdrawn
}
