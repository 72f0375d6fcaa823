package memory

import (
	"sync"
	"time"

	"egy-discovery/internal/marketing"
	repo "egy-discovery/internal/marketing/repository"
	"egy-discovery/pkg/sequence"
)

type implRepository struct {
	mu        sync.RWMutex
	seq       *sequence.Sequence
	now       func() time.Time
	campaigns []marketing.Campaign
	metrics   []marketing.Metric
}

var _ repo.Repository = (*implRepository)(nil)

// New creates an in-memory marketing repository drawing IDs from seq.
func New(seq *sequence.Sequence) *implRepository {
	return &implRepository{
		seq: seq,
		now: time.Now,
	}
}
