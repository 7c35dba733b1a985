package meta

import (
	"unicode/utf8"

	"github.com/spewspews/bspregexp/nfa"
	"github.com/spewspews/bspregexp/prefilter"
	"github.com/spewspews/bspregexp/syntax"
)

// Engine is the meta-engine that runs a compiled program with the strategy
// chosen for it.
//
// Thread safety: an Engine is immutable after creation and safe for
// concurrent use. Mutable search state is drawn from an internal pool.
type Engine struct {
	tree      *syntax.Tree // nil for engines built from a program
	prog      *nfa.Program
	vm        *nfa.PikeVM
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config
	states    *searchStatePool
}

// Search runs a leftmost-first search over in and fills slots with capture
// offsets, -1 for groups that did not participate.
func (e *Engine) Search(in nfa.Input, slots []int) (bool, error) {
	state := e.states.get()
	defer e.states.put(state)
	return e.vm.Search(state.vm, in, slots)
}

// IsMatch reports whether the haystack contains any match.
func (e *Engine) IsMatch(haystack []byte) (bool, error) {
	return e.IsMatchInput(nfa.NewInput(haystack))
}

// IsMatchInput reports whether in contains any match. It stops at the
// first match it proves, so an encoding error past that point is not
// reported. Input that is not valid UTF-8 always goes through the VM.
func (e *Engine) IsMatchInput(in nfa.Input) (bool, error) {
	if e.strategy == UseLiteral && in.At == 0 && in.End == len(in.Haystack) &&
		(e.config.Bytes || utf8.Valid(in.Haystack)) {
		if m, ok := e.prefilter.(prefilter.Matcher); ok {
			return m.IsMatch(in.Haystack), nil
		}
		return e.prefilter.Find(in.Haystack, 0) >= 0, nil
	}

	state := e.states.get()
	defer e.states.put(state)
	return e.vm.IsMatch(state.vm, in)
}

// Program returns the compiled program.
func (e *Engine) Program() *nfa.Program {
	return e.prog
}

// Tree returns the parse tree, or nil for engines built from a program.
func (e *Engine) Tree() *syntax.Tree {
	return e.tree
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.prog.Expr()
}

// Strategy returns the execution strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Prefilter returns the prefilter, or nil if the engine has none.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// NumCaptures returns the number of groups reported by Search, group 0
// included. It is the program's group count capped by MaxCaptures.
func (e *Engine) NumCaptures() int {
	return e.vm.NumSlots() / 2
}

// NumGroups returns the number of groups in the pattern, group 0 included,
// whether or not they are reported.
func (e *Engine) NumGroups() int {
	return e.prog.NumCaps()
}
