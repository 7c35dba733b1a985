package literal

import (
	"unicode/utf8"

	"github.com/spewspews/bspregexp/internal/sparse"
	"github.com/spewspews/bspregexp/nfa"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits keep extraction cheap on complex patterns:
//   - MaxLiterals: prevents blowup from alternations like (a|b|c|d|...)
//   - MaxLiteralLen: longer literals add little filtering power
//   - MaxClassSize: prevents expanding large character classes like [a-z]
type ExtractorConfig struct {
	// MaxLiterals limits the number of literals. If a program needs more,
	// extraction gives up. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length of each literal in bytes.
	// Default: 32.
	MaxLiteralLen int

	// MaxClassSize limits the number of runes in a class that is expanded
	// into one literal per rune. Default: 10.
	MaxClassSize int

	// Bytes matches the VM's single-byte mode: each rune is one byte and
	// runes above 0xFF can never match.
	Bytes bool
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 32,
		MaxClassSize:  10,
	}
}

// Extractor extracts literal prefixes from compiled programs.
//
// It explores every path from the program entry that does not consume
// input. Each path must reach a literal rune or a small class; a path that
// reaches '.', a large class, an anchor or a match means matches can begin
// anywhere, and extraction yields an empty Seq. Working on the program
// rather than the parse tree lets assembled programs use prefilters too.
//
// Example:
//
//	prog, _ := nfa.Compile("hello|world")
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(prog)
//	// prefixes = ["hello", "world"], both complete
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns literals one of which begins every match, or an
// empty Seq if no such set exists within the configured limits.
func (e *Extractor) ExtractPrefixes(prog *nfa.Program) *Seq {
	x := &extraction{
		e:       e,
		prog:    prog,
		visited: sparse.New(prog.Len()),
		exact:   true,
	}
	if !x.closure(prog.Start()) || len(x.lits) == 0 {
		return NewSeq()
	}
	if !x.exact {
		for i := range x.lits {
			x.lits[i].Complete = false
		}
	}
	seq := NewSeq(x.lits...)
	seq.Minimize()
	return seq
}

type extraction struct {
	e       *Extractor
	prog    *nfa.Program
	visited *sparse.Set
	lits    []Literal
	exact   bool
}

// closure walks the non-consuming instructions reachable from pc in
// priority order and collects a literal for each consuming instruction it
// reaches. It returns false when extraction must give up.
func (x *extraction) closure(pc nfa.InstID) bool {
	for {
		if !x.visited.Insert(uint32(pc)) {
			return true
		}
		inst := x.prog.Inst(pc)

		switch inst.Op() {
		case nfa.OpSave, nfa.OpJump:
			pc = inst.Out()
		case nfa.OpUnsave:
			if inst.IsMatch() {
				return false
			}
			pc = inst.Out()
		case nfa.OpNotNL:
			x.exact = false
			pc = inst.Out()
		case nfa.OpSplit:
			a, b := inst.Split()
			if !x.closure(a) {
				return false
			}
			pc = b
		case nfa.OpRune:
			return x.add([]rune{inst.Rune()}, inst.Out())
		case nfa.OpClass:
			return x.class(pc)
		default:
			// any, anchors
			return false
		}
	}
}

// class expands the chain starting at head into one literal per rune.
func (x *extraction) class(head nfa.InstID) bool {
	_, _, hit := x.prog.Inst(head).Class()
	var runes []rune
	for pc := head; pc < hit; pc++ {
		lo, hi, _ := x.prog.Inst(pc).Class()
		if lo > hi {
			continue
		}
		if int64(hi)-int64(lo)+1+int64(len(runes)) > int64(x.e.config.MaxClassSize) {
			return false
		}
		for r := lo; r <= hi; r++ {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		// a class that matches nothing constrains nothing useful
		return false
	}
	return x.add(runes, hit)
}

// add records one literal per first rune, each followed by the literal run
// starting at next.
func (x *extraction) add(first []rune, next nfa.InstID) bool {
	suffix, complete, ok := x.extend(next)
	for _, r := range first {
		if !x.fits(r) {
			continue
		}
		if len(x.lits) == x.e.config.MaxLiterals {
			return false
		}
		lit := x.encode(nil, r)
		if ok {
			lit = append(lit, suffix...)
		}
		full := complete && ok
		if len(lit) > x.e.config.MaxLiteralLen {
			lit = lit[:x.e.config.MaxLiteralLen]
			full = false
		}
		x.lits = append(x.lits, NewLiteral(lit, full))
	}
	return true
}

// extend follows the deterministic chain of literal runes from pc. It
// stops at the first branch, non-literal or match. ok is false if the run
// contains a rune the input can never hold, in which case only the first
// rune is usable.
func (x *extraction) extend(pc nfa.InstID) (suffix []byte, complete, ok bool) {
	for steps := 0; steps < x.prog.Len() && len(suffix) < x.e.config.MaxLiteralLen; steps++ {
		inst := x.prog.Inst(pc)
		switch inst.Op() {
		case nfa.OpSave, nfa.OpJump:
			pc = inst.Out()
		case nfa.OpUnsave:
			if inst.IsMatch() {
				return suffix, true, true
			}
			pc = inst.Out()
		case nfa.OpRune:
			if !x.fits(inst.Rune()) {
				return nil, false, false
			}
			suffix = x.encode(suffix, inst.Rune())
			pc = inst.Out()
		default:
			return suffix, false, true
		}
	}
	return suffix, false, true
}

func (x *extraction) fits(r rune) bool {
	return !x.e.config.Bytes || r <= 0xFF
}

func (x *extraction) encode(b []byte, r rune) []byte {
	if x.e.config.Bytes {
		return append(b, byte(r))
	}
	return utf8.AppendRune(b, r)
}
