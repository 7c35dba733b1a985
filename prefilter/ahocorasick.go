package prefilter

import (
	"github.com/coregx/ahocorasick"
)

// ahoCorasickPrefilter finds the leftmost occurrence of any of several literals.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	minLen   int
	complete bool
}

// newAhoCorasickPrefilter builds the automaton over lits cut to a common
// length, so the first occurrence found is also the leftmost one. A set
// that had to be cut is never complete.
func newAhoCorasickPrefilter(lits [][]byte, complete bool) (*ahoCorasickPrefilter, error) {
	lits, cut := truncateToShortest(lits)
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{auto: auto, minLen: len(lits[0]), complete: complete && !cut}, nil
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsMatch reports whether any literal occurs in haystack.
func (p *ahoCorasickPrefilter) IsMatch(haystack []byte) bool {
	return p.auto.IsMatch(haystack)
}

func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

func (p *ahoCorasickPrefilter) LiteralLen() int {
	return p.minLen
}

func (p *ahoCorasickPrefilter) String() string {
	return "aho-corasick"
}

// Matcher is implemented by prefilters that can decide a whole search on
// their own when IsComplete is true.
type Matcher interface {
	IsMatch(haystack []byte) bool
}
