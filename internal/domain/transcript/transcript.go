package transcript

import (
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

// Transcript is an uploaded academic record. A student may hold several;
// only the most recently uploaded one is authoritative.
type Transcript struct {
	ID           common.UUID `json:"id" bson:"_id"`
	StudentID    common.UUID `json:"student_id" bson:"student_id"`
	GPA          float64     `json:"gpa" bson:"gpa"`
	Certificates []string    `json:"certificates,omitempty" bson:"certificates,omitempty"`
	UploadedAt   time.Time   `json:"uploaded_at" bson:"uploaded_at"`
}
