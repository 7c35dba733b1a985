package meta

import (
	"sync"

	"github.com/spewspews/bspregexp/nfa"
	"github.com/spewspews/bspregexp/prefilter"
)

// SearchState holds per-search mutable state for thread-safe concurrent searches.
// It is obtained from a sync.Pool so the same compiled Engine can be used
// from multiple goroutines.
//
// Usage pattern:
//
//	state := e.states.get()
//	defer e.states.put(state)
//	// use state for search operations
//
// Thread safety: Each goroutine must use its own SearchState instance.
type SearchState struct {
	// vm holds the thread pool and lists of one Pike VM search.
	vm *nfa.PikeVMState

	// tracker wraps the engine's prefilter with per-search statistics.
	// Nil when the engine has no prefilter.
	tracker *prefilter.Tracker
}

// newSearchState creates a new SearchState with pre-allocated buffers.
func newSearchState(vm *nfa.PikeVM, pf prefilter.Prefilter) *SearchState {
	state := &SearchState{vm: vm.NewState()}
	if pf != nil {
		state.tracker = prefilter.NewTracker(pf)
		state.vm.SetSkipper(state.tracker)
	}
	return state
}

// reset prepares the SearchState for the next search. A retired prefilter
// gets another chance on new input.
func (s *SearchState) reset() {
	if s.tracker != nil {
		s.tracker.Reset()
	}
}

// searchStatePool manages a pool of SearchState instances for thread-safe reuse.
type searchStatePool struct {
	pool sync.Pool

	vm        *nfa.PikeVM
	prefilter prefilter.Prefilter
}

// newSearchStatePool creates a pool configured for the given engine parameters.
func newSearchStatePool(vm *nfa.PikeVM, pf prefilter.Prefilter) *searchStatePool {
	p := &searchStatePool{
		vm:        vm,
		prefilter: pf,
	}
	p.pool = sync.Pool{
		New: func() any {
			return newSearchState(p.vm, p.prefilter)
		},
	}
	return p
}

// get retrieves a SearchState from the pool, creating one if necessary.
func (p *searchStatePool) get() *SearchState {
	state := p.pool.Get().(*SearchState)
	state.reset()
	return state
}

// put returns a SearchState to the pool for reuse.
func (p *searchStatePool) put(state *SearchState) {
	if state == nil {
		return
	}
	p.pool.Put(state)
}
