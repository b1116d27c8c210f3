package testutil

// Sequence is a logical step counter for trace events.
//
// Scenario runs are single-threaded, so Sequence carries no lock. The same
// scenario always yields the same seq values, which keeps golden transcripts
// byte-identical across runs.
type Sequence struct {
	seq int64
}

// NewSequence creates a counter starting at 0. The first call to Next returns 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next increments and returns the step number.
func (s *Sequence) Next() int64 {
	s.seq++
	return s.seq
}

// Current returns the last step number handed out, 0 if none.
func (s *Sequence) Current() int64 {
	return s.seq
}

// Reset rewinds the counter to 0.
func (s *Sequence) Reset() {
	s.seq = 0
}
