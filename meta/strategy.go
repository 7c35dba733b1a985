package meta

import (
	"github.com/spewspews/bspregexp/nfa"
	"github.com/spewspews/bspregexp/prefilter"
)

// Strategy represents the execution strategy for a compiled pattern.
type Strategy int

const (
	// UseNFA runs the Pike VM, starting a thread at every position.
	UseNFA Strategy = iota

	// UseAnchored runs the Pike VM for patterns that must match at the
	// start of the input; no thread is started anywhere else.
	UseAnchored

	// UsePrefilter runs the Pike VM and skips input where none of the
	// required literal prefixes begins.
	UsePrefilter

	// UseLiteral is UsePrefilter for patterns that are a set of literals:
	// IsMatch is answered by the prefilter alone.
	UseLiteral
)

// String returns a human-readable representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "NFA"
	case UseAnchored:
		return "Anchored"
	case UsePrefilter:
		return "Prefilter"
	case UseLiteral:
		return "Literal"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the strategy for prog given the prefilter built for
// it, which may be nil.
func selectStrategy(prog *nfa.Program, pf prefilter.Prefilter, config Config) Strategy {
	if prog.IsAnchored() && !config.Multiline {
		return UseAnchored
	}
	if pf == nil {
		return UseNFA
	}
	if pf.IsComplete() {
		return UseLiteral
	}
	return UsePrefilter
}
