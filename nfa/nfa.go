package nfa

import (
	"fmt"
	"strings"
)

// InstID indexes an instruction in a Program.
type InstID uint32

// InvalidInst marks an absent instruction target.
const InvalidInst InstID = 0xFFFFFFFF

// Op identifies the kind of an instruction and which of its fields are valid.
type Op uint8

const (
	// OpAny consumes any rune.
	OpAny Op = iota + 1

	// OpRune consumes one specific rune.
	OpRune

	// OpClass is one link of a class test chain. A rune below the link's
	// low bound falls through to the next instruction; otherwise the link
	// decides: the thread continues at the hit target if the rune is within
	// the high bound and dies if not.
	OpClass

	// OpBOL asserts the beginning of the input or of a line.
	OpBOL

	// OpEOL asserts the end of the input or of a line.
	OpEOL

	// OpNotNL fails on a newline without consuming it.
	OpNotNL

	// OpJump continues unconditionally at its target.
	OpJump

	// OpSplit continues at both targets, the first one preferred.
	OpSplit

	// OpSave records the start of a capture group.
	OpSave

	// OpUnsave records the end of a capture group. Unsave of group 0 is a match.
	OpUnsave
)

// String returns a human-readable name of the Op
func (op Op) String() string {
	switch op {
	case OpAny:
		return "any"
	case OpRune:
		return "rune"
	case OpClass:
		return "class"
	case OpBOL:
		return "bol"
	case OpEOL:
		return "eol"
	case OpNotNL:
		return "notnl"
	case OpJump:
		return "jump"
	case OpSplit:
		return "split"
	case OpSave:
		return "save"
	case OpUnsave:
		return "unsave"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Inst is a single instruction. Which fields are meaningful depends on the
// Op; use the accessor methods rather than reading fields directly.
type Inst struct {
	op    Op
	out   InstID
	out1  InstID
	lo    rune
	hi    rune
	group int
}

// AnyInst returns an instruction consuming any rune.
func AnyInst(next InstID) Inst { return Inst{op: OpAny, out: next} }

// RuneInst returns an instruction consuming r.
func RuneInst(r rune, next InstID) Inst { return Inst{op: OpRune, out: next, lo: r, hi: r} }

// ClassInst returns a class chain link deciding runes >= lo.
func ClassInst(lo, hi rune, hit InstID) Inst { return Inst{op: OpClass, out: hit, lo: lo, hi: hi} }

// BOLInst returns a beginning-of-line assertion.
func BOLInst(next InstID) Inst { return Inst{op: OpBOL, out: next} }

// EOLInst returns an end-of-line assertion.
func EOLInst(next InstID) Inst { return Inst{op: OpEOL, out: next} }

// NotNLInst returns a not-newline guard.
func NotNLInst(next InstID) Inst { return Inst{op: OpNotNL, out: next} }

// JumpInst returns an unconditional jump.
func JumpInst(to InstID) Inst { return Inst{op: OpJump, out: to} }

// SplitInst returns a split preferring x over y.
func SplitInst(x, y InstID) Inst { return Inst{op: OpSplit, out: x, out1: y} }

// SaveInst returns an instruction recording the start of group.
func SaveInst(group int, next InstID) Inst { return Inst{op: OpSave, out: next, group: group} }

// UnsaveInst returns an instruction recording the end of group.
func UnsaveInst(group int, next InstID) Inst { return Inst{op: OpUnsave, out: next, group: group} }

// Op returns the instruction kind.
func (i *Inst) Op() Op {
	return i.op
}

// Out returns the primary successor. For OpClass it is the hit target.
func (i *Inst) Out() InstID {
	return i.out
}

// Rune returns the rune consumed by an OpRune instruction.
// Returns -1 for other kinds.
func (i *Inst) Rune() rune {
	if i.op != OpRune {
		return -1
	}
	return i.lo
}

// Class returns the decision range and hit target of an OpClass link.
// Returns (0, -1, InvalidInst) for other kinds.
func (i *Inst) Class() (lo, hi rune, hit InstID) {
	if i.op != OpClass {
		return 0, -1, InvalidInst
	}
	return i.lo, i.hi, i.out
}

// Split returns both targets of an OpSplit, preferred first.
// Returns (InvalidInst, InvalidInst) for other kinds.
func (i *Inst) Split() (x, y InstID) {
	if i.op != OpSplit {
		return InvalidInst, InvalidInst
	}
	return i.out, i.out1
}

// Capture returns the group of an OpSave or OpUnsave and whether it opens
// the group. Returns (-1, false) for other kinds.
func (i *Inst) Capture() (group int, isStart bool) {
	switch i.op {
	case OpSave:
		return i.group, true
	case OpUnsave:
		return i.group, false
	}
	return -1, false
}

// IsMatch reports whether the instruction completes a match.
func (i *Inst) IsMatch() bool {
	return i.op == OpUnsave && i.group == 0
}

// consumes reports whether the instruction advances the input.
func (i *Inst) consumes() bool {
	return i.op == OpAny || i.op == OpRune || i.op == OpClass
}

// String returns a human-readable representation of the instruction
func (i *Inst) String() string {
	switch i.op {
	case OpRune:
		return fmt.Sprintf("rune %q -> %d", i.lo, i.out)
	case OpClass:
		return fmt.Sprintf("class %q-%q -> %d", i.lo, i.hi, i.out)
	case OpSplit:
		return fmt.Sprintf("split -> %d, %d", i.out, i.out1)
	case OpSave:
		return fmt.Sprintf("save %d -> %d", i.group, i.out)
	case OpUnsave:
		if i.group == 0 {
			return "unsave 0 (match)"
		}
		return fmt.Sprintf("unsave %d -> %d", i.group, i.out)
	default:
		return fmt.Sprintf("%s -> %d", i.op, i.out)
	}
}

// Program is a compiled pattern: a flat instruction array entered at
// instruction 0. A Program is immutable and safe for concurrent use; all
// per-search scratch space lives in PikeVMState.
type Program struct {
	insts      []Inst
	expr       string
	numCaps    int
	maxThreads int
	dotNL      bool
	anchored   bool
}

func newProgram(expr string, insts []Inst, numCaps, maxThreads int, dotNL bool) *Program {
	p := &Program{
		insts:      insts,
		expr:       expr,
		numCaps:    numCaps,
		maxThreads: maxThreads,
		dotNL:      dotNL,
	}
	p.anchored = p.startsWithBOL()
	return p
}

// startsWithBOL reports whether every path from the entry hits OpBOL before
// consuming anything or branching.
func (p *Program) startsWithBOL() bool {
	pc := InstID(0)
	for n := 0; n < len(p.insts) && int(pc) < len(p.insts); n++ {
		inst := &p.insts[pc]
		switch inst.op {
		case OpSave:
			pc = inst.out
		case OpBOL:
			return true
		default:
			return false
		}
	}
	return false
}

// Start returns the entry instruction.
func (p *Program) Start() InstID {
	return 0
}

// Inst returns the instruction with the given id.
func (p *Program) Inst(id InstID) *Inst {
	return &p.insts[id]
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.insts)
}

// Expr returns the source pattern.
func (p *Program) Expr() string {
	return p.expr
}

// NumCaps returns the number of capture groups including group 0.
func (p *Program) NumCaps() int {
	return p.numCaps
}

// MaxThreads returns the bound on simultaneously live threads during a search.
func (p *Program) MaxThreads() int {
	return p.maxThreads
}

// DotNL reports whether '.' was compiled to match newline.
func (p *Program) DotNL() bool {
	return p.dotNL
}

// IsAnchored reports whether every match must begin with a '^' assertion.
func (p *Program) IsAnchored() bool {
	return p.anchored
}

// String returns the program listing, one instruction per line.
func (p *Program) String() string {
	var b strings.Builder
	for pc := range p.insts {
		fmt.Fprintf(&b, "%3d: %s\n", pc, p.insts[pc].String())
	}
	return b.String()
}
