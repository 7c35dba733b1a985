package bspregexp

import (
	"errors"
	"fmt"

	"github.com/spewspews/bspregexp/nfa"
)

// ErrInvalidRange is returned by ExecRange for offsets outside the input.
var ErrInvalidRange = errors.New("bspregexp: invalid search range")

// Span is the half-open byte range [Start, End) of a group. Both are -1
// when the group did not take part in the match.
type Span struct {
	Start int
	End   int
}

// IsSet reports whether the group took part in the match.
func (s Span) IsSet() bool {
	return s.Start >= 0
}

// MatchResult is the outcome of one Exec call.
type MatchResult struct {
	// Matched reports whether the pattern matched.
	Matched bool

	// Captures holds one span per recorded group, group 0 first.
	Captures []Span

	input []byte
}

// Group returns the text of group i, or nil if it is unset or was not
// recorded.
func (m *MatchResult) Group(i int) []byte {
	if m == nil || i < 0 || i >= len(m.Captures) || !m.Captures[i].IsSet() {
		return nil
	}
	s := m.Captures[i]
	return m.input[s.Start:s.End:s.End]
}

// GroupString is like Group but returns a string.
func (m *MatchResult) GroupString(i int) string {
	return string(m.Group(i))
}

// Exec finds the leftmost match in input. At most limit groups are
// recorded, group 0 included; a negative limit records as many as the
// configuration allows. Groups that are not recorded still match.
//
// The error is non-nil only when input is not valid UTF-8 where the
// search needed to decode it.
func (r *Regex) Exec(input []byte, limit int) (*MatchResult, error) {
	return r.exec(input, limit, nfa.NewInput(input))
}

// ExecRange is Exec restricted to input[start:end]. Offsets in the result
// are relative to input. '^' matches at start and '$' at end, as if the
// range were the whole input.
func (r *Regex) ExecRange(input []byte, limit, start, end int) (*MatchResult, error) {
	if start < 0 || end > len(input) || start > end {
		return nil, fmt.Errorf("%w: [%d:%d] of %d bytes", ErrInvalidRange, start, end, len(input))
	}
	return r.exec(input, limit, nfa.Input{Haystack: input, Start: start, At: start, End: end})
}

func (r *Regex) exec(input []byte, limit int, in nfa.Input) (*MatchResult, error) {
	ngroups := r.engine.NumCaptures()
	if limit >= 0 && limit < ngroups {
		ngroups = limit
	}
	slots := make([]int, 2*ngroups)
	ok, err := r.engine.Search(in, slots)
	if err != nil {
		return nil, err
	}
	m := &MatchResult{Matched: ok, input: input}
	if !ok {
		return m, nil
	}
	m.Captures = make([]Span, ngroups)
	for i := range m.Captures {
		m.Captures[i] = Span{Start: slots[2*i], End: slots[2*i+1]}
	}
	return m, nil
}
