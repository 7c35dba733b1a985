// Package syntax parses regular expressions into an arena-backed tree.
//
// The accepted language is small: literals, '.', '^', '$', bracket
// classes with ranges and negation, grouping, alternation and the
// postfix operators '*', '+' and '?'. A backslash makes the next rune
// literal. Every group captures; group 0 wraps the whole pattern.
//
// Parse also tallies how many instructions the compiled program can need,
// so the compiler can allocate the program in one step.
package syntax
