package bspregexp

import "bytes"

// replaceAll copies src to a new slice, handing each match to repl to
// append its replacement.
func (r *Regex) replaceAll(src []byte, nslots int, repl func(dst []byte, match []int) []byte) []byte {
	var dst []byte
	last := 0
	r.allMatches(src, -1, nslots, func(m []int) bool {
		dst = append(dst, src[last:m[0]]...)
		dst = repl(dst, m)
		last = m[1]
		return true
	})
	return append(dst, src[last:]...)
}

// ReplaceAll returns a copy of src, replacing matches of the pattern
// with the replacement bytes repl.
// Inside repl, $ signs are interpreted as in Expand:
// $0 is the entire match, $1 is the first capture group, etc.
//
// Example:
//
//	re := bspregexp.MustCompile(`([a-z]+)@([a-z]+)\.([a-z]+)`)
//	result := re.ReplaceAll([]byte("user@example.com"), []byte("$1 at $2 dot $3"))
//	// result = []byte("user at example dot com")
func (r *Regex) ReplaceAll(src, repl []byte) []byte {
	if bytes.IndexByte(repl, '$') < 0 {
		return r.ReplaceAllLiteral(src, repl)
	}
	return r.replaceAll(src, 2*r.engine.NumCaptures(), func(dst []byte, m []int) []byte {
		return r.Expand(dst, repl, src, r.pad(m))
	})
}

// ReplaceAllString returns a copy of src, replacing matches of the pattern
// with the replacement string repl, expanded as in Expand.
func (r *Regex) ReplaceAllString(src, repl string) string {
	return string(r.ReplaceAll([]byte(src), []byte(repl)))
}

// ReplaceAllLiteral returns a copy of src, replacing matches of the pattern
// with the replacement bytes repl.
// The replacement is substituted directly, without expanding $ variables.
//
// Example:
//
//	re := bspregexp.MustCompile(`[0-9]+`)
//	result := re.ReplaceAllLiteral([]byte("age: 42"), []byte("XX"))
//	// result = []byte("age: XX")
func (r *Regex) ReplaceAllLiteral(src, repl []byte) []byte {
	return r.replaceAll(src, 2, func(dst []byte, _ []int) []byte {
		return append(dst, repl...)
	})
}

// ReplaceAllLiteralString returns a copy of src, replacing matches of the pattern
// with the replacement string repl.
// The replacement is substituted directly, without expanding $ variables.
func (r *Regex) ReplaceAllLiteralString(src, repl string) string {
	return string(r.ReplaceAllLiteral([]byte(src), []byte(repl)))
}

// ReplaceAllFunc returns a copy of src in which all matches of the pattern
// have been replaced by the return value of function repl applied to the
// matched byte slice.
func (r *Regex) ReplaceAllFunc(src []byte, repl func([]byte) []byte) []byte {
	return r.replaceAll(src, 2, func(dst []byte, m []int) []byte {
		return append(dst, repl(src[m[0]:m[1]:m[1]])...)
	})
}

// ReplaceAllStringFunc is like ReplaceAllFunc for strings.
func (r *Regex) ReplaceAllStringFunc(src string, repl func(string) string) string {
	b := r.replaceAll([]byte(src), 2, func(dst []byte, m []int) []byte {
		return append(dst, repl(src[m[0]:m[1]])...)
	})
	return string(b)
}

// ReplaceAllSubstitute returns a copy of src with each match replaced by
// the expansion of template, written as for Substitute.
//
// Example:
//
//	re := bspregexp.MustCompile(`([a-z]+)=([0-9]+)`)
//	re.ReplaceAllSubstitute("a=1 b=2", `\2:\1`) // "1:a 2:b"
func (r *Regex) ReplaceAllSubstitute(src, template string) string {
	b := []byte(src)
	out := r.replaceAll(b, 2*r.engine.NumCaptures(), func(dst []byte, m []int) []byte {
		res := &MatchResult{Matched: true, Captures: make([]Span, len(m)/2), input: b}
		for i := range res.Captures {
			res.Captures[i] = Span{Start: m[2*i], End: m[2*i+1]}
		}
		return AppendSubstitute(dst, template, res)
	})
	return string(out)
}

// Split slices s into substrings separated by the expression and returns
// a slice of the substrings between those expression matches.
//
// The count determines the number of substrings to return:
//   - n > 0: at most n substrings; the last substring will be the unsplit remainder
//   - n == 0: the result is nil (zero substrings)
//   - n < 0: all substrings
//
// Example:
//
//	re := bspregexp.MustCompile(`a*`)
//	re.Split("abaabaccadaaae", 5) // ["", "b", "b", "c", "cadaaae"]
func (r *Regex) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}
	if len(r.pattern) > 0 && len(s) == 0 {
		return []string{""}
	}

	matches := r.FindAllStringIndex(s, n)
	result := make([]string, 0, len(matches))

	beg, end := 0, 0
	for _, match := range matches {
		if n > 0 && len(result) == n-1 {
			break
		}
		end = match[0]
		if match[1] != 0 {
			result = append(result, s[beg:end])
		}
		beg = match[1]
	}
	if end != len(s) {
		result = append(result, s[beg:])
	}
	return result
}
