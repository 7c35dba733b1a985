// Package bspregexp provides a small, predictable regular expression engine.
//
// Patterns are compiled into Thompson NFA programs and run by a Pike VM, so
// matching is leftmost-first and takes time linear in the input for every
// pattern. The syntax is deliberately small:
//   - Literals, '.', '^', '$'
//   - Character classes [abc], [a-z], [^...]
//   - Grouping (...), always capturing
//   - Alternation '|' and the greedy repetitions '*', '+', '?'
//   - '\' makes the next character literal
//
// Basic usage:
//
//	re, err := bspregexp.Compile(`(h)ello|world`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m, err := re.Exec([]byte("say hello"), 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Matched, m.Captures) // true [{4 9} {4 5}]
//
//	// Expand back-references
//	fmt.Println(bspregexp.Substitute(`<&:\1>`, m)) // <hello:h>
//
// Advanced usage:
//
//	// Custom configuration
//	config := bspregexp.DefaultConfig()
//	config.Multiline = true
//	config.MaxCaptures = 4
//	re, err := bspregexp.CompileWithConfig("^item$", config)
//
// A Regex is safe for concurrent use. Per-search state comes from an
// internal pool.
package bspregexp

import (
	"unicode/utf8"

	"github.com/spewspews/bspregexp/meta"
	"github.com/spewspews/bspregexp/nfa"
)

// Regex represents a compiled regular expression.
//
// Example:
//
//	re := bspregexp.MustCompile(`hello`)
//	if re.Match([]byte("hello world")) {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a regular expression pattern in normal mode.
//
// Example:
//
//	re, err := bspregexp.Compile(`[0-9]+`)
//	if err != nil {
//	    return err
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileLiteral compiles pattern so that every rune, metacharacters
// included, matches itself.
func CompileLiteral(pattern string) (*Regex, error) {
	config := DefaultConfig()
	config.Mode = meta.ModeLiteral
	return CompileWithConfig(pattern, config)
}

// CompileDotNL compiles pattern so that '.' also matches '\n'.
func CompileDotNL(pattern string) (*Regex, error) {
	config := DefaultConfig()
	config.Mode = meta.ModeDotNL
	return CompileWithConfig(pattern, config)
}

// MustCompile compiles a regular expression pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var wordRE = bspregexp.MustCompile(`[a-z]+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("bspregexp: Compile(" + quote(pattern) + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := bspregexp.DefaultConfig()
//	config.Bytes = true // match raw bytes, never fail on encoding
//	re, err := bspregexp.CompileWithConfig(`data[0-9]*`, config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: pattern}, nil
}

// Load wraps an assembled program, typically one embedded by generated
// code, in a Regex.
func Load(prog *nfa.Program, config meta.Config) (*Regex, error) {
	engine, err := meta.FromProgram(prog, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: prog.Expr()}, nil
}

// MustLoad is like Load but panics if the program cannot be used.
// Generated code calls it from package initialization.
func MustLoad(prog *nfa.Program, config meta.Config) *Regex {
	re, err := Load(prog, config)
	if err != nil {
		panic("bspregexp: Load: " + err.Error())
	}
	return re
}

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize this and pass to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// QuoteMeta returns a string that escapes all regular expression metacharacters
// inside the argument text; the returned string is a regular expression matching
// the literal text.
//
// Example:
//
//	escaped := bspregexp.QuoteMeta("1+1=2?")
//	// escaped = `1\+1=2\?`
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// NumSubexp returns the number of parenthesized subexpressions. Group 0,
// the whole match, is not counted.
func (r *Regex) NumSubexp() int {
	return r.engine.NumGroups() - 1
}

// Dump returns the parse tree, when there is one, followed by the program
// listing.
func (r *Regex) Dump() string {
	var out string
	if tree := r.engine.Tree(); tree != nil {
		out = tree.String() + "\n"
	}
	return out + r.engine.Program().String()
}

// Program returns the compiled program, for code generation.
func (r *Regex) Program() *nfa.Program {
	return r.engine.Program()
}

// Engine returns the underlying meta engine.
func (r *Regex) Engine() *meta.Engine {
	return r.engine
}

// search returns the capture slots of the leftmost match starting at or
// after at, or nil. Anchors treat the whole of b as the input.
func (r *Regex) search(b []byte, at int, nslots int) ([]int, error) {
	slots := make([]int, nslots)
	in := nfa.Input{Haystack: b, At: at, End: len(b)}
	ok, err := r.engine.Search(in, slots)
	if err != nil || !ok {
		return nil, err
	}
	return slots, nil
}

// next returns the position one rune after pos, for stepping past empty
// matches.
func (r *Regex) next(b []byte, pos int) int {
	if pos >= len(b) {
		return len(b) + 1
	}
	if r.engine.Config().Bytes {
		return pos + 1
	}
	_, width := utf8.DecodeRune(b[pos:])
	return pos + width
}

// allMatches calls deliver with the slots of each successive
// non-overlapping match, at most n of them if n >= 0. An empty match
// right after a previous match is skipped. Iteration stops early when
// deliver returns false or the input cannot be decoded.
func (r *Regex) allMatches(b []byte, n, nslots int, deliver func([]int) bool) {
	prevEnd := -1
	for pos, i := 0, 0; (n < 0 || i < n) && pos <= len(b); {
		m, err := r.search(b, pos, nslots)
		if err != nil || m == nil {
			return
		}
		accept := true
		if m[1] == pos {
			if m[0] == prevEnd {
				accept = false
			}
			pos = r.next(b, pos)
		} else {
			pos = m[1]
		}
		prevEnd = m[1]
		if accept {
			if !deliver(m) {
				return
			}
			i++
		}
	}
}

func quote(s string) string {
	if len(s) > 64 {
		s = s[:64] + "..."
	}
	return "`" + s + "`"
}
