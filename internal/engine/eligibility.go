package engine

import (
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/application"
)

const (
	ReasonInstitutionLimit = "institution application limit reached"
	ReasonAlreadyAdmitted  = "already admitted elsewhere"
)

// Decision is the outcome of an admission-control check.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CheckEligibility decides whether a student may submit a new application to
// the given institution, based on their full application set. The set must
// be freshly loaded by the caller; the caller is also responsible for
// re-running this check under a serializing lock right before persisting.
//
// The admitted-elsewhere check is a hard gate: it fires regardless of the
// per-institution count, and a withdrawal elsewhere does not soften it as
// long as an admitted application exists in the set.
func (e *Engine) CheckEligibility(apps []application.Application, institutionID common.UUID) Decision {
	active := 0
	for _, app := range apps {
		if app.Status == application.StatusAdmitted {
			return Deny(ReasonAlreadyAdmitted)
		}
		if app.InstitutionID == institutionID && app.Active() {
			active++
		}
	}
	if active >= e.cfg.InstitutionLimit {
		return Deny(ReasonInstitutionLimit)
	}
	return Allow()
}
