package student

import (
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Certificate struct {
	Name     string    `json:"name" bson:"name"`
	Issuer   string    `json:"issuer,omitempty" bson:"issuer,omitempty"`
	IssuedAt time.Time `json:"issued_at,omitempty" bson:"issued_at,omitempty"`
}

type Employment struct {
	Employer string     `json:"employer" bson:"employer"`
	Title    string     `json:"title" bson:"title"`
	From     time.Time  `json:"from" bson:"from"`
	// To is nil for a current position.
	To *time.Time `json:"to,omitempty" bson:"to,omitempty"`
}

type Profile struct {
	UserID       common.UUID  `json:"user_id" bson:"_id"`
	FullName     string       `json:"full_name" bson:"full_name"`
	Phone        string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Certificates []Certificate `json:"certificates" bson:"certificates"`
	Experience   []Employment `json:"experience" bson:"experience"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updated_at"`
}

// CertificateNames flattens held certificates for the matching engine.
func (p Profile) CertificateNames() []string {
	names := make([]string, 0, len(p.Certificates))
	for _, cert := range p.Certificates {
		names = append(names, cert.Name)
	}
	return names
}

// YearsExperience sums employment durations in fractional years. Open-ended
// positions count up to now. Overlapping positions are summed as-is; the
// engine caps the total anyway.
func (p Profile) YearsExperience(now time.Time) float64 {
	const hoursPerYear = 24 * 365.25
	var total float64
	for _, emp := range p.Experience {
		end := now
		if emp.To != nil {
			end = *emp.To
		}
		if end.Before(emp.From) {
			continue
		}
		total += end.Sub(emp.From).Hours() / hoursPerYear
	}
	return total
}
