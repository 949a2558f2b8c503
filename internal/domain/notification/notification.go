package notification

import (
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Kind string

const (
	KindJobMatch            Kind = "job_match"
	KindApplicationReceived Kind = "application_received"
	KindApplicationDecided  Kind = "application_decided"
	KindShortlisted         Kind = "shortlisted"
)

type Notification struct {
	ID        common.UUID `json:"id" bson:"_id"`
	UserID    common.UUID `json:"user_id" bson:"user_id"`
	Kind      Kind        `json:"kind" bson:"kind"`
	Title     string      `json:"title" bson:"title"`
	Body      string      `json:"body,omitempty" bson:"body,omitempty"`
	// RefID points at the triggering record (job, application).
	RefID     common.UUID `json:"ref_id,omitempty" bson:"ref_id,omitempty"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	ReadAt    *time.Time  `json:"read_at,omitempty" bson:"read_at,omitempty"`
}
