package engine

import (
	"sort"
	"strings"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/job"
)

// Ranked pairs an applicant with its computed score. Position is 1-based.
type Ranked struct {
	Applicant Applicant `json:"applicant"`
	Score     Score     `json:"score"`
	Position  int       `json:"position"`
}

// Rank orders applicants for a job into a total order:
//
//	1. qualified before unqualified, regardless of numeric score
//	2. score value descending
//	3. appliedAt ascending (earlier application wins)
//	4. id ascending
//
// The final id key guarantees no two distinct applicants ever compare equal,
// so repeated runs over the same input produce identical output.
func (e *Engine) Rank(applicants []Applicant, j job.Job) []Ranked {
	ranked := make([]Ranked, 0, len(applicants))
	for _, a := range applicants {
		ranked = append(ranked, Ranked{Applicant: a, Score: e.Score(a, j)})
	}

	sort.SliceStable(ranked, func(i, k int) bool {
		a, b := ranked[i], ranked[k]
		if a.Score.Qualified != b.Score.Qualified {
			return a.Score.Qualified
		}
		if a.Score.Value != b.Score.Value {
			return a.Score.Value > b.Score.Value
		}
		if !a.Applicant.AppliedAt.Equal(b.Applicant.AppliedAt) {
			return a.Applicant.AppliedAt.Before(b.Applicant.AppliedAt)
		}
		return a.Applicant.ID < b.Applicant.ID
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

func certificateSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[normalizeCertificate(name)] = true
	}
	return set
}

// Certificate matching is case-insensitive and whitespace-tolerant;
// "aws" on a transcript satisfies a required "AWS".
func normalizeCertificate(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
