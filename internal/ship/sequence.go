package ship

import "sync"

// SequenceSource is a deterministic Source that replays a fixed sequence of
// values, cycling when exhausted. It exists so firing outcomes can be pinned
// exactly in tests and canned scenario runs.
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
	draws  int
}

// NewSequenceSource creates a SequenceSource over the given values.
//
// Precondition: at least one value must be supplied, each in [0, 1).
func NewSequenceSource(values ...float64) *SequenceSource {
	if len(values) == 0 {
		panic("ship: NewSequenceSource requires at least one value")
	}
	for _, v := range values {
		if v < 0 || v >= 1 {
			panic("ship: SequenceSource values must be in [0, 1)")
		}
	}
	return &SequenceSource{values: values}
}

// Float64 returns the next value in the sequence, cycling at the end.
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	s.draws++
	return v
}

// Draws reports how many values have been consumed.
func (s *SequenceSource) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draws
}
