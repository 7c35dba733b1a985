package prefilter

// Tracker wraps a Prefilter with effectiveness tracking.
//
// The VM asks for a candidate each time all its threads have died, so every
// call after the first one in a search follows a false positive. The
// tracker measures how far each call skips. When candidates arrive so close
// together that skipping saves almost nothing, the prefilter is retired for
// the rest of the search and Find reports every position as a candidate.
//
// A Tracker holds per-search state. Use one per goroutine and Reset it
// before each search.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(pf)
//	state.SetSkipper(tracker)
//	tracker.Reset()
//	vm.Search(state, input, slots)
type Tracker struct {
	inner Prefilter

	// Statistics
	candidates uint64 // Total candidate positions found
	skipped    uint64 // Total bytes skipped to reach them

	// Configuration
	checkInterval  uint64  // Check effectiveness every N candidates
	minSkip        float64 // Minimum average bytes skipped per candidate
	warmupPeriod   uint64  // Don't retire until this many candidates
	lastCheckpoint uint64  // Candidates at last checkpoint

	// State
	active bool // Whether prefilter is still active
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in candidates).
	// Default: 64
	CheckInterval uint64

	// MinSkip is the minimum average number of bytes skipped per candidate.
	// Default: 2
	MinSkip float64

	// WarmupPeriod is the minimum number of candidates before checking effectiveness.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinSkip:       2,
		WarmupPeriod:  128,
	}
}

// NewTracker creates a new tracker for the given prefilter with default config.
//
// Returns nil if the inner prefilter is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a new tracker with custom configuration.
//
// Returns nil if the inner prefilter is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minSkip:       config.MinSkip,
		warmupPeriod:  config.WarmupPeriod,
		active:        true,
	}
}

// Find returns the next candidate position at or after start, or -1.
// Once retired it returns start itself whenever start is in range.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		if start < len(haystack) {
			return start
		}
		return -1
	}

	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.skipped += uint64(pos - start)
		t.checkEffectiveness()
	}
	return pos
}

// IsActive returns true if the prefilter is still being used.
func (t *Tracker) IsActive() bool {
	return t.active
}

// Stats returns the tracker statistics.
func (t *Tracker) Stats() (candidates, skipped uint64, active bool) {
	return t.candidates, t.skipped, t.active
}

// Reset clears the statistics and reactivates the prefilter.
func (t *Tracker) Reset() {
	t.candidates = 0
	t.skipped = 0
	t.lastCheckpoint = 0
	t.active = true
}

// Inner returns the wrapped prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

func (t *Tracker) checkEffectiveness() {
	if t.candidates < t.warmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.candidates
	if float64(t.skipped)/float64(t.candidates) < t.minSkip {
		t.active = false
	}
}
