package types

import "strconv"

// DefaultParameterPrefix is the root under which generated parameters are
// looked up by the executing layer.
const DefaultParameterPrefix = "parameters"

// Sequence seeds generated parameter names. A Sequence belongs to exactly one
// render and is passed by pointer to every nested render (sub-selects, where
// clauses) so that names stay unique across the whole statement.
// It is not safe for concurrent use.
type Sequence struct {
	next int
}

// NewSequence returns a sequence whose first value is 1.
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next returns the current value and advances the sequence.
func (s *Sequence) Next() int {
	if s.next == 0 {
		s.next = 1
	}
	n := s.next
	s.next++
	return n
}

// FormatParameterName returns "p" followed by the next sequence value.
func FormatParameterName(seq *Sequence) string {
	return "p" + strconv.Itoa(seq.Next())
}
