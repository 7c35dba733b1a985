package nfa

import (
	"unicode/utf8"
)

// Skipper finds the next position where a match could start. It lets the
// VM jump over input no match can begin in while no thread is alive.
type Skipper interface {
	// Find returns the first candidate position >= start, or -1 if there is none.
	Find(haystack []byte, start int) int
}

// PikeVMConfig configures a PikeVM.
type PikeVMConfig struct {
	// Multiline makes '^' and '$' also match after and before '\n'.
	Multiline bool

	// Bytes treats every input byte as one rune instead of decoding UTF-8.
	Bytes bool

	// MaxCaptures bounds the number of groups recorded, group 0 included.
	// Zero means the program's own group count.
	MaxCaptures int
}

// PikeVM runs a Program over an input with Pike's dual list simulation.
//
// Thread safety: a PikeVM is immutable after creation. Each concurrent
// search needs its own PikeVMState.
type PikeVM struct {
	prog   *Program
	config PikeVMConfig
	stride int
}

// NewPikeVM creates a VM for prog.
func NewPikeVM(prog *Program, config PikeVMConfig) *PikeVM {
	ncap := prog.numCaps
	if config.MaxCaptures > 0 && config.MaxCaptures < ncap {
		ncap = config.MaxCaptures
	}
	return &PikeVM{prog: prog, config: config, stride: 2 * ncap}
}

// Program returns the program run by the VM.
func (vm *PikeVM) Program() *Program {
	return vm.prog
}

// NumSlots returns the number of capture slots the VM can record.
func (vm *PikeVM) NumSlots() int {
	return vm.stride
}

// Input describes one search. Matches start at or after At and end at or
// before End. Start is where '^' matches in non-multiline mode; it is
// normally 0 or the beginning of a sub-range.
type Input struct {
	Haystack []byte
	Start    int
	At       int
	End      int
}

// NewInput returns an Input covering all of haystack.
func NewInput(haystack []byte) Input {
	return Input{Haystack: haystack, End: len(haystack)}
}

// Search runs a leftmost-first search. On a match it fills slots with
// pairs of (start, end) offsets for as many groups as fit in slots and the
// VM's capture limit; unset groups are -1. The error is non-nil only for
// undecodable input, which aborts the search.
func (vm *PikeVM) Search(s *PikeVMState, in Input, slots []int) (bool, error) {
	for i := range slots {
		slots[i] = -1
	}
	nslots := min(len(slots)&^1, vm.stride)
	return vm.search(s, in, slots[:nslots], false)
}

// IsMatch reports whether any match exists, stopping at the first one.
func (vm *PikeVM) IsMatch(s *PikeVMState, in Input) (bool, error) {
	return vm.search(s, in, nil, true)
}

func (vm *PikeVM) search(s *PikeVMState, in Input, slots []int, earliest bool) (bool, error) {
	prog := vm.prog
	s.reset()
	clist, nlist := emptyList(), emptyList()
	anchored := prog.anchored && !vm.config.Multiline
	ncap := len(slots) / 2
	matched := false

	for sp := in.At; ; {
		gen := s.nextGen()
		r, width, err := vm.decode(in, sp)
		if err != nil {
			return false, err
		}

		if !matched && (!anchored || sp == in.Start) {
			if clist.empty() && s.skipper != nil && sp < in.End {
				cand := s.skipper.Find(in.Haystack[:in.End], sp)
				if cand < 0 {
					return false, nil
				}
				if cand > sp {
					if err := vm.validate(in, sp, cand); err != nil {
						return false, err
					}
					sp = cand
					if r, width, err = vm.decode(in, sp); err != nil {
						return false, err
					}
				}
			}
			t := s.alloc()
			fresh := s.caps(t)
			for i := range fresh[:2*ncap] {
				fresh[i] = -1
			}
			s.threads[t].pc = 0
			s.pushBack(&clist, t)
		}
		if clist.empty() {
			break
		}

		for !clist.empty() {
			t := s.popFront(&clist)
			tcaps := s.caps(t)
		follow:
			for {
				pc := s.threads[t].pc
				if s.stamps[pc] == gen {
					s.release(t)
					break
				}
				s.stamps[pc] = gen
				inst := &prog.insts[pc]

				switch inst.op {
				case OpJump:
					s.threads[t].pc = inst.out

				case OpSplit:
					u := s.alloc()
					copy(s.caps(u)[:2*ncap], tcaps[:2*ncap])
					s.threads[u].pc = inst.out1
					s.pushFront(&clist, u)
					s.threads[t].pc = inst.out

				case OpSave:
					if inst.group < ncap {
						tcaps[2*inst.group] = sp
					}
					s.threads[t].pc = inst.out

				case OpUnsave:
					if inst.group < ncap {
						tcaps[2*inst.group+1] = sp
					}
					if inst.group != 0 {
						s.threads[t].pc = inst.out
						continue
					}
					matched = true
					copy(slots, tcaps[:2*ncap])
					s.release(t)
					s.releaseAll(&clist)
					if earliest {
						return true, nil
					}
					break follow

				case OpBOL:
					if !vm.atBOL(in, sp) {
						s.release(t)
						break follow
					}
					s.threads[t].pc = inst.out

				case OpEOL:
					if !vm.atEOL(in, sp) {
						s.release(t)
						break follow
					}
					s.threads[t].pc = inst.out

				case OpNotNL:
					if width > 0 && r == '\n' {
						s.release(t)
						break follow
					}
					s.threads[t].pc = inst.out

				case OpAny:
					if width == 0 {
						s.release(t)
						break follow
					}
					s.threads[t].pc = inst.out
					s.pushBack(&nlist, t)
					break follow

				case OpRune:
					if width == 0 || r != inst.lo {
						s.release(t)
						break follow
					}
					s.threads[t].pc = inst.out
					s.pushBack(&nlist, t)
					break follow

				case OpClass:
					if width == 0 {
						s.release(t)
						break follow
					}
					if r < inst.lo {
						s.threads[t].pc = pc + 1
						continue
					}
					if r > inst.hi {
						s.release(t)
						break follow
					}
					s.threads[t].pc = inst.out
					s.pushBack(&nlist, t)
					break follow

				default:
					panic("nfa: invalid instruction " + inst.op.String())
				}
			}
		}

		if sp >= in.End {
			break
		}
		clist, nlist = nlist, emptyList()
		sp += width
	}
	return matched, nil
}

// decode returns the rune at sp and its width. At the end of the input it
// returns width 0.
func (vm *PikeVM) decode(in Input, sp int) (rune, int, error) {
	if sp >= in.End {
		return -1, 0, nil
	}
	b := in.Haystack[sp]
	if vm.config.Bytes || b < utf8.RuneSelf {
		return rune(b), 1, nil
	}
	r, w := utf8.DecodeRune(in.Haystack[sp:in.End])
	if r == utf8.RuneError && w == 1 {
		return 0, 0, &EncodingError{Pos: sp}
	}
	return r, w, nil
}

// validate checks the encoding of input skipped by the Skipper so that a
// search reports the same encoding errors with or without one.
func (vm *PikeVM) validate(in Input, from, to int) error {
	if vm.config.Bytes || utf8.Valid(in.Haystack[from:to]) {
		return nil
	}
	for sp := from; sp < to; {
		_, w, err := vm.decode(in, sp)
		if err != nil {
			return err
		}
		sp += w
	}
	return nil
}

func (vm *PikeVM) atBOL(in Input, sp int) bool {
	if sp == in.Start {
		return true
	}
	return vm.config.Multiline && sp > in.Start && in.Haystack[sp-1] == '\n'
}

func (vm *PikeVM) atEOL(in Input, sp int) bool {
	if sp == in.End {
		return true
	}
	return vm.config.Multiline && sp < in.End && in.Haystack[sp] == '\n'
}
