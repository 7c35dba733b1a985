package bspregexp

import (
	"bytes"
	"strconv"
)

// Substitute expands template using the groups recorded in m:
//   - \N, N a single digit, is replaced by the text of group N
//   - & is replaced by the whole match
//   - \ followed by any other character yields that character, so \\
//     and \& produce a literal backslash and ampersand
//
// Groups that are out of range, unset, or were not recorded expand to
// nothing, as does every group when m did not match.
//
// Example:
//
//	re := bspregexp.MustCompile(`([a-z]+)=([0-9]+)`)
//	m, _ := re.Exec([]byte("x=1"), -1)
//	bspregexp.Substitute(`\2<-\1 (&)`, m) // "1<-x (x=1)"
func Substitute(template string, m *MatchResult) string {
	return string(AppendSubstitute(nil, template, m))
}

// AppendSubstitute appends the expansion of template to dst and returns
// the result.
func AppendSubstitute(dst []byte, template string, m *MatchResult) []byte {
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '&':
			dst = append(dst, m.Group(0)...)
		case c == '\\' && i+1 < len(template):
			i++
			c = template[i]
			if c >= '0' && c <= '9' {
				dst = append(dst, m.Group(int(c-'0'))...)
			} else {
				dst = append(dst, c)
			}
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// Expand appends template to dst and returns the result; during the
// append, it replaces $N and ${N} with the text of group N. $0 is the
// whole match and $$ is a literal dollar sign. A name made of letters,
// digits and underscores that is not a group number expands to nothing;
// groups are never named. src and match are as returned by
// FindSubmatchIndex.
func (r *Regex) Expand(dst []byte, template []byte, src []byte, match []int) []byte {
	for len(template) > 0 {
		i := bytes.IndexByte(template, '$')
		if i < 0 {
			break
		}
		dst = append(dst, template[:i]...)
		template = template[i:]
		if len(template) > 1 && template[1] == '$' {
			dst = append(dst, '$')
			template = template[2:]
			continue
		}
		name, rest, ok := extract(template)
		if !ok {
			// malformed; treat $ as raw text
			dst = append(dst, '$')
			template = template[1:]
			continue
		}
		template = rest
		if n, err := strconv.Atoi(name); err == nil && n >= 0 && 2*n+1 < len(match) && match[2*n] >= 0 {
			dst = append(dst, src[match[2*n]:match[2*n+1]]...)
		}
	}
	return append(dst, template...)
}

// extract returns the name from a leading "$name" or "${name}" in b.
func extract(b []byte) (name string, rest []byte, ok bool) {
	if len(b) < 2 || b[0] != '$' {
		return "", nil, false
	}
	brace := false
	i := 1
	if b[1] == '{' {
		brace = true
		i = 2
	}
	start := i
	for i < len(b) && isNameByte(b[i]) {
		i++
	}
	if i == start {
		return "", nil, false
	}
	name = string(b[start:i])
	if brace {
		if i >= len(b) || b[i] != '}' {
			return "", nil, false
		}
		i++
	}
	return name, b[i:], true
}

func isNameByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
