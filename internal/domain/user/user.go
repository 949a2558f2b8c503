package user

import (
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Role string

const (
	RoleStudent     Role = "student"
	RoleCompany     Role = "company"
	RoleInstitution Role = "institution"
	RoleAdmin       Role = "admin"
)

type User struct {
	ID            common.UUID `json:"id" bson:"_id"`
	Email         string      `json:"email" bson:"email"`
	EmailVerified bool        `json:"email_verified" bson:"email_verified"`
	DisplayName   string      `json:"display_name" bson:"display_name"`
	Role          Role        `json:"role" bson:"role"`
	// InstitutionID is set for institution-role users and scopes which
	// applications and courses they may act on.
	InstitutionID common.UUID `json:"institution_id,omitempty" bson:"institution_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}
