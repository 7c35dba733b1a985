package syntax

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every *Error through errors.Is.
var ErrMalformed = errors.New("malformed pattern")

// ErrorCode identifies the kind of syntax error.
type ErrorCode uint8

const (
	// ErrMissingParen reports an opening parenthesis with no matching close.
	ErrMissingParen ErrorCode = iota + 1

	// ErrUnexpectedParen reports a closing parenthesis with no matching open.
	ErrUnexpectedParen

	// ErrMissingBracket reports a character class with no closing bracket.
	ErrMissingBracket

	// ErrMalformedClass reports a misplaced '-' inside a character class.
	ErrMalformedClass

	// ErrClassTooBig reports a character class with too many ranges.
	ErrClassTooBig

	// ErrUnexpectedToken reports an operator where an operand was expected.
	ErrUnexpectedToken

	// ErrTrailingBackslash reports a pattern ending in an unfinished escape.
	ErrTrailingBackslash

	// ErrInvalidUTF8 reports a pattern that is not valid UTF-8.
	ErrInvalidUTF8

	// ErrNestingDepth reports parentheses nested beyond MaxDepth.
	ErrNestingDepth
)

var codeText = [...]string{
	ErrMissingParen:      "no matching parenthesis",
	ErrUnexpectedParen:   "unexpected closing parenthesis",
	ErrMissingBracket:    "no closing ]",
	ErrMalformedClass:    "malformed '-' in character class",
	ErrClassTooBig:       "character class too large",
	ErrUnexpectedToken:   "missing operand",
	ErrTrailingBackslash: "trailing backslash",
	ErrInvalidUTF8:       "invalid UTF-8",
	ErrNestingDepth:      "expression nests too deeply",
}

func (c ErrorCode) String() string {
	if int(c) < len(codeText) && codeText[c] != "" {
		return codeText[c]
	}
	return fmt.Sprintf("ErrorCode(%d)", uint8(c))
}

// Error is a syntax error found while parsing a pattern.
type Error struct {
	Code ErrorCode
	Expr string
	Pos  int // byte offset into Expr
}

func (e *Error) Error() string {
	return fmt.Sprintf("regexp: %s at offset %d in %q", e.Code, e.Pos, e.Expr)
}

// Is reports whether target is ErrMalformed or an *Error with the same code.
func (e *Error) Is(target error) bool {
	if target == ErrMalformed {
		return true
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Code == e.Code
	}
	return false
}
