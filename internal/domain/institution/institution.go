package institution

import (
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Institution struct {
	ID        common.UUID `json:"id" bson:"_id"`
	Name      string      `json:"name" bson:"name"`
	City      string      `json:"city,omitempty" bson:"city,omitempty"`
	Website   string      `json:"website,omitempty" bson:"website,omitempty"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

type Course struct {
	ID            common.UUID `json:"id" bson:"_id"`
	InstitutionID common.UUID `json:"institution_id" bson:"institution_id"`
	Name          string      `json:"name" bson:"name"`
	Faculty       string      `json:"faculty,omitempty" bson:"faculty,omitempty"`
	Description   string      `json:"description,omitempty" bson:"description,omitempty"`
	DurationYears int         `json:"duration_years,omitempty" bson:"duration_years,omitempty"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
}
