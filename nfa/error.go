// Package nfa compiles parse trees into Thompson NFA programs and runs them
// with a Pike VM.
//
// A Program is a flat array of instructions. The PikeVM simulates every
// path through the program in lockstep, one input rune per step, keeping at
// most one thread per instruction. Matching is leftmost-first and runs in
// time proportional to the program length times the input length.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrTooLarge indicates the pattern exceeds the configured size limit
	ErrTooLarge = errors.New("pattern too large")

	// ErrCompilation indicates the compiler outgrew its precomputed size
	ErrCompilation = errors.New("NFA compilation failed")

	// ErrInvalidEncoding indicates the input is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid input encoding")

	// ErrInvalidProgram indicates an assembled instruction table is inconsistent
	ErrInvalidProgram = errors.New("invalid program")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// EncodingError reports the input offset where decoding failed.
type EncodingError struct {
	Pos int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 in input at offset %d", e.Pos)
}

// Unwrap returns ErrInvalidEncoding.
func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}

// AssembleError reports an inconsistent instruction passed to Assemble.
type AssembleError struct {
	Message string
	PC      InstID
}

// Error implements the error interface
func (e *AssembleError) Error() string {
	if e.PC != InvalidInst {
		return fmt.Sprintf("invalid program at instruction %d: %s", e.PC, e.Message)
	}
	return fmt.Sprintf("invalid program: %s", e.Message)
}

// Unwrap returns ErrInvalidProgram.
func (e *AssembleError) Unwrap() error {
	return ErrInvalidProgram
}
