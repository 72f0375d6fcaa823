// Package sequence hands out monotonically increasing record IDs.
package sequence

import "sync/atomic"

// Sequence is a goroutine-safe ID generator shared by the record stores.
type Sequence struct {
	last atomic.Int64
}

// New returns a Sequence whose first Next() is start.
func New(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start - 1)
	return s
}

// Next returns the next ID.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
