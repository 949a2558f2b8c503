package transcript

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Repository interface {
	Add(ctx context.Context, t Transcript) (*Transcript, error)
	// LatestByStudent returns the authoritative (most recently uploaded)
	// transcript, or a not_found error when the student has none.
	LatestByStudent(ctx context.Context, studentID common.UUID) (*Transcript, error)
	// LatestByStudents batch-loads the authoritative transcript per student
	// for the given id set. Students without one are absent from the map.
	LatestByStudents(ctx context.Context, studentIDs []common.UUID) (map[common.UUID]Transcript, error)
	ListByStudent(ctx context.Context, studentID common.UUID) ([]Transcript, error)
	CountStudentsWithTranscript(ctx context.Context) (int64, error)
}
