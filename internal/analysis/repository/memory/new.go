package memory

import (
	"sync"
	"time"

	"egy-discovery/internal/analysis"
	repo "egy-discovery/internal/analysis/repository"
	"egy-discovery/pkg/sequence"
)

type implRepository struct {
	mu          sync.RWMutex
	seq         *sequence.Sequence
	now         func() time.Time
	insights    []analysis.Insight
	suggestions []analysis.Suggestion
}

var _ repo.Repository = (*implRepository)(nil)

// New creates an in-memory analysis repository drawing IDs from seq.
func New(seq *sequence.Sequence) *implRepository {
	return &implRepository{
		seq: seq,
		now: time.Now,
	}
}
