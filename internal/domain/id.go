package domain

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// generateID creates a new unique identifier for sessions and profiles.
func generateID() string {
	return uuid.New().String()
}

// IDSequence hands out task ids. Ids come from a counter rather than the
// clock so two adds in the same millisecond still get distinct ids.
type IDSequence struct {
	last atomic.Int64
}

// NewIDSequence returns a sequence whose first id is 1.
func NewIDSequence() *IDSequence {
	return &IDSequence{}
}

// Next returns the next id.
func (s *IDSequence) Next() int64 {
	return s.last.Add(1)
}
