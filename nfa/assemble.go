package nfa

import (
	"fmt"

	"github.com/spewspews/bspregexp/internal/conv"
)

// Insts returns a copy of the instruction table.
func (p *Program) Insts() []Inst {
	return append([]Inst(nil), p.insts...)
}

// Assemble builds a Program from an instruction table, such as one written
// out by the code generator. The table is validated: every target must be
// in range and every group must be below numCaps. The thread bound is
// computed from the table rather than trusted.
func Assemble(expr string, numCaps int, dotNL bool, insts []Inst) (*Program, error) {
	if len(insts) == 0 {
		return nil, &AssembleError{Message: "empty instruction table", PC: InvalidInst}
	}
	if numCaps < 1 {
		return nil, &AssembleError{Message: fmt.Sprintf("group count %d < 1", numCaps), PC: InvalidInst}
	}

	n := InstID(conv.IntToUint32(len(insts)))
	inRange := func(id InstID) bool { return id < n }
	threads := 1
	for i := range insts {
		pc := InstID(conv.IntToUint32(i))
		inst := &insts[i]
		fail := func(format string, args ...any) error {
			return &AssembleError{Message: fmt.Sprintf(format, args...), PC: pc}
		}

		switch inst.op {
		case OpAny, OpRune, OpBOL, OpEOL, OpNotNL, OpJump:
			if !inRange(inst.out) {
				return nil, fail("%s target %d out of range", inst.op, inst.out)
			}
		case OpClass:
			if !inRange(inst.out) || !inRange(pc+1) {
				return nil, fail("class chain leaves the program")
			}
		case OpSplit:
			if !inRange(inst.out) || !inRange(inst.out1) {
				return nil, fail("split targets %d, %d out of range", inst.out, inst.out1)
			}
			threads++
		case OpSave, OpUnsave:
			if inst.group < 0 || inst.group >= numCaps {
				return nil, fail("group %d out of range", inst.group)
			}
			if !inst.IsMatch() && !inRange(inst.out) {
				return nil, fail("%s target %d out of range", inst.op, inst.out)
			}
		default:
			return nil, fail("unknown op %d", uint8(inst.op))
		}
		if inst.consumes() {
			threads++
		}
	}
	return newProgram(expr, append([]Inst(nil), insts...), numCaps, threads, dotNL), nil
}

// MustAssemble is like Assemble but panics on error.
func MustAssemble(expr string, numCaps int, dotNL bool, insts []Inst) *Program {
	p, err := Assemble(expr, numCaps, dotNL, insts)
	if err != nil {
		panic(err)
	}
	return p
}
