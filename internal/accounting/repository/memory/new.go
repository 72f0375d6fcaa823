package memory

import (
	"sync"
	"time"

	"egy-discovery/internal/accounting"
	repo "egy-discovery/internal/accounting/repository"
	"egy-discovery/pkg/sequence"
)

type implRepository struct {
	mu           sync.RWMutex
	seq          *sequence.Sequence
	now          func() time.Time
	transactions []accounting.Transaction
}

var _ repo.Repository = (*implRepository)(nil)

// New creates an in-memory accounting repository drawing IDs from seq.
func New(seq *sequence.Sequence) *implRepository {
	return &implRepository{
		seq: seq,
		now: time.Now,
	}
}
