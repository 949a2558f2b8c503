package engine

import (
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/job"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/transcript"
)

// Applicant is the joined view the engine scores: one student's authoritative
// transcript plus their profile-derived experience. ID and AppliedAt come
// from the job application and drive tie-breaking.
type Applicant struct {
	ID              common.UUID
	StudentID       common.UUID
	AppliedAt       time.Time
	Transcript      *transcript.Transcript
	YearsExperience float64
}

type Breakdown struct {
	Academic     float64 `json:"academic"`
	Certificates float64 `json:"certificates"`
	Experience   float64 `json:"experience"`
}

// Score is a ranking signal plus its explanation. Qualification is reported
// separately from the numeric value: a missing transcript is flagged, never
// silently scored as zero.
type Score struct {
	Value             float64   `json:"value"`
	Breakdown         Breakdown `json:"breakdown"`
	Qualified         bool      `json:"qualified"`
	MissingTranscript bool      `json:"missing_transcript,omitempty"`
}

// Score computes the deterministic match score for an applicant against a
// job. GPA is expected on the 0.0–4.0 scale.
func (e *Engine) Score(a Applicant, j job.Job) Score {
	var s Score
	if a.Transcript == nil {
		s.MissingTranscript = true
	} else {
		s.Breakdown.Academic = a.Transcript.GPA * e.cfg.AcademicWeight

		held := certificateSet(a.Transcript.Certificates)
		matched := 0
		for _, required := range j.Requirements.RequiredCertificates {
			if held[normalizeCertificate(required)] {
				matched++
			}
		}
		extra := len(held) - matched
		if extra < 0 {
			extra = 0
		}
		bonus := float64(extra) * e.cfg.ExtraCertificateBonus
		if bonus > e.cfg.ExtraCertificateBonusCap {
			bonus = e.cfg.ExtraCertificateBonusCap
		}
		s.Breakdown.Certificates = float64(matched)*e.cfg.CertificateWeight + bonus
	}

	years := a.YearsExperience
	if years > e.cfg.ExperienceCapYears {
		years = e.cfg.ExperienceCapYears
	}
	if years < 0 {
		years = 0
	}
	s.Breakdown.Experience = years * e.cfg.ExperienceWeight

	s.Value = s.Breakdown.Academic + s.Breakdown.Certificates + s.Breakdown.Experience
	s.Qualified = e.Qualified(a, j)
	return s
}

// Qualified applies the job's stated minimums. Unset requirements (zero
// minGPA, empty certificate list, zero minYears) are skipped. An applicant
// without a transcript never qualifies.
func (e *Engine) Qualified(a Applicant, j job.Job) bool {
	if a.Transcript == nil {
		return false
	}
	req := j.Requirements
	if req.MinGPA > 0 && a.Transcript.GPA < req.MinGPA {
		return false
	}
	if len(req.RequiredCertificates) > 0 {
		held := certificateSet(a.Transcript.Certificates)
		for _, required := range req.RequiredCertificates {
			if !held[normalizeCertificate(required)] {
				return false
			}
		}
	}
	if req.MinYearsExperience > 0 && a.YearsExperience < req.MinYearsExperience {
		return false
	}
	return true
}
