package job

import (
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

// Requirements are the stated minimums a job asks for. Zero values mean
// "not specified" and are skipped by the qualification gate.
type Requirements struct {
	MinGPA               float64  `json:"min_gpa,omitempty" bson:"min_gpa,omitempty"`
	RequiredCertificates []string `json:"required_certificates,omitempty" bson:"required_certificates,omitempty"`
	MinYearsExperience   float64  `json:"min_years_experience,omitempty" bson:"min_years_experience,omitempty"`
}

type Job struct {
	ID           common.UUID  `json:"id" bson:"_id"`
	CompanyID    common.UUID  `json:"company_id" bson:"company_id"`
	Title        string       `json:"title" bson:"title"`
	Description  string       `json:"description,omitempty" bson:"description,omitempty"`
	Requirements Requirements `json:"requirements" bson:"requirements"`
	Deadline     time.Time    `json:"deadline" bson:"deadline"`
	IsActive     bool         `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updated_at"`
}

// Open reports whether the job accepts applications at the given instant.
func (j Job) Open(now time.Time) bool {
	return j.IsActive && now.Before(j.Deadline)
}
