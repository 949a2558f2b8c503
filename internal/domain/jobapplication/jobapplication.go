package jobapplication

import (
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Status string

const (
	StatusApplied     Status = "applied"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
)

// TranscriptSnapshot freezes the academic record at apply time so later
// uploads do not rewrite history for the reviewing company.
type TranscriptSnapshot struct {
	TranscriptID common.UUID `json:"transcript_id,omitempty" bson:"transcript_id,omitempty"`
	GPA          float64     `json:"gpa" bson:"gpa"`
	Certificates []string    `json:"certificates,omitempty" bson:"certificates,omitempty"`
	UploadedAt   time.Time   `json:"uploaded_at,omitempty" bson:"uploaded_at,omitempty"`
}

type JobApplication struct {
	ID         common.UUID        `json:"id" bson:"_id"`
	StudentID  common.UUID        `json:"student_id" bson:"student_id"`
	JobID      common.UUID        `json:"job_id" bson:"job_id"`
	Status     Status             `json:"status" bson:"status"`
	Transcript TranscriptSnapshot `json:"transcript" bson:"transcript"`
	AppliedAt  time.Time          `json:"applied_at" bson:"applied_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}
