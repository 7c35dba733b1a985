// Package conv provides checked integer narrowing for the regex engine.
//
// The engine stores instruction indices as uint32.
// A value that does not fit indicates a program larger than the engine
// supports, which is a programming error, so these helpers panic.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// compare as uint so 32-bit platforms cannot overflow the check
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
