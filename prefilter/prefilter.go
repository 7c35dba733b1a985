// Package prefilter provides fast candidate filtering for regex search using
// extracted literal sequences.
//
// A prefilter is used to skip positions in the haystack where no match can
// begin. The Pike VM consults it whenever it has no live thread, so input
// between candidates is never stepped through.
//
// The package selects a strategy based on the extracted literals:
//   - Single byte → memchr (bytes.IndexByte)
//   - Single substring → memmem (bytes.Index)
//   - Several single bytes → byte set scan
//   - Several literals → Aho-Corasick automaton
//
// Literals of different lengths are first cut to the shortest length.
//
// Example usage:
//
//	prog, _ := nfa.Compile("hello|world")
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(prog)
//	pf := prefilter.NewBuilder(prefixes).Build()
//	pos := pf.Find([]byte("foo hello bar world baz"), 0)
//	// pos == 4 (position of "hello")
package prefilter

import (
	"bytes"
	"slices"

	"github.com/spewspews/bspregexp/literal"
)

// Prefilter is used to quickly find candidate match positions before running
// the full regex engine.
type Prefilter interface {
	// Find returns the index of the first candidate match starting at or after
	// 'start', or -1 if no candidate is found.
	//
	// A candidate is a position where one of the literals begins. It does
	// NOT guarantee a full match unless IsComplete() is true.
	Find(haystack []byte, start int) int

	// IsComplete returns true if a candidate is always a whole match.
	IsComplete() bool

	// LiteralLen returns the length of the shortest literal.
	LiteralLen() int

	// String names the strategy for logs.
	String() string
}

// Builder constructs the best prefilter for a literal sequence.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a builder for the given prefix literals.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build constructs the best prefilter for the literals.
//
// Returns nil if no prefilter can be built (no literals, or the automaton
// failed to build).
func (b *Builder) Build() Prefilter {
	return selectPrefilter(b.prefixes)
}

// selectPrefilter chooses a prefilter strategy for seq.
func selectPrefilter(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() {
		return nil
	}
	complete := seq.AllComplete()

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newMemchrPrefilter(lit.Bytes[0], complete)
		}
		return newMemmemPrefilter(lit.Bytes, complete)
	}

	lits, cut := truncateToShortest(seq.Bytes())
	complete = complete && !cut
	switch {
	case len(lits) == 1 && len(lits[0]) == 1:
		return newMemchrPrefilter(lits[0][0], complete)
	case len(lits) == 1:
		return newMemmemPrefilter(lits[0], complete)
	case len(lits[0]) == 1:
		return newByteSetPrefilter(lits, complete)
	}

	pf, err := newAhoCorasickPrefilter(lits, complete)
	if err != nil {
		return nil
	}
	return pf
}

// truncateToShortest cuts every literal to the length of the shortest one
// and drops the duplicates this creates. A multi-literal scan reports the
// occurrence that ends first, which is the one that starts first only when
// all literals have the same length. cut reports whether any literal was
// shortened.
func truncateToShortest(lits [][]byte) (out [][]byte, cut bool) {
	n := len(lits[0])
	for _, lit := range lits {
		n = min(n, len(lit))
	}
	out = make([][]byte, 0, len(lits))
	for _, lit := range lits {
		if len(lit) > n {
			lit, cut = lit[:n:n], true
		}
		if !slices.ContainsFunc(out, func(b []byte) bool { return bytes.Equal(b, lit) }) {
			out = append(out, lit)
		}
	}
	return out, cut
}

// memchrPrefilter finds a single byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{needle: needle, complete: complete}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	i := bytes.IndexByte(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memchrPrefilter) LiteralLen() int {
	return 1
}

func (p *memchrPrefilter) String() string {
	return "memchr"
}

// memmemPrefilter finds a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	return &memmemPrefilter{needle: needle, complete: complete}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memmemPrefilter) LiteralLen() int {
	return len(p.needle)
}

func (p *memmemPrefilter) String() string {
	return "memmem"
}
