package prefilter

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// maxVectorNeedles is the largest byte set searched with one IndexByte
// pass per byte. bytes.IndexByte is vectorized on amd64 and arm64, so a few
// vector passes beat one scalar table scan.
const maxVectorNeedles = 3

// HasVectorSearch reports whether the CPU has the vector units the
// standard library's IndexByte uses.
func HasVectorSearch() bool {
	return cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}

// byteSetPrefilter finds any byte of a small set.
type byteSetPrefilter struct {
	needles  []byte
	table    [256]bool
	vector   bool
	complete bool
}

func newByteSetPrefilter(lits [][]byte, complete bool) Prefilter {
	p := &byteSetPrefilter{complete: complete}
	for _, lit := range lits {
		b := lit[0]
		if !p.table[b] {
			p.table[b] = true
			p.needles = append(p.needles, b)
		}
	}
	p.vector = HasVectorSearch() && len(p.needles) <= maxVectorNeedles
	return p
}

func (p *byteSetPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	if p.vector {
		return p.findVector(haystack, start)
	}
	for i := start; i < len(haystack); i++ {
		if p.table[haystack[i]] {
			return i
		}
	}
	return -1
}

// findVector runs one IndexByte per needle, each limited to the best
// position found so far.
func (p *byteSetPrefilter) findVector(haystack []byte, start int) int {
	best := -1
	hay := haystack[start:]
	for _, b := range p.needles {
		if i := bytes.IndexByte(hay, b); i >= 0 {
			best = start + i
			hay = hay[:i]
		}
	}
	return best
}

func (p *byteSetPrefilter) IsComplete() bool {
	return p.complete
}

func (p *byteSetPrefilter) LiteralLen() int {
	return 1
}

func (p *byteSetPrefilter) String() string {
	if p.vector {
		return "byteset/vector"
	}
	return "byteset/table"
}
