package syntax

import (
	"cmp"
	"slices"
)

// MaxClassRanges bounds the number of ranges written in one bracket expression.
const MaxClassRanges = 200

// RuneRange is an inclusive range of runes.
type RuneRange struct {
	Lo, Hi rune
}

// Contains reports whether r lies in the range.
func (rr RuneRange) Contains(r rune) bool {
	return rr.Lo <= r && r <= rr.Hi
}

// classLexer reads the body of a bracket expression into a fixed buffer and
// normalizes it into disjoint ranges sorted by descending low bound.
type classLexer struct {
	buf     [MaxClassRanges]RuneRange
	n       int
	negated bool
}

func (c *classLexer) ranges() []RuneRange {
	return c.buf[:c.n]
}

// lex is called with the opening '[' already consumed at offset start.
func (c *classLexer) lex(l *Lexer, start int) error {
	c.n = 0
	c.negated = false

	fail := func(code ErrorCode, pos int) error {
		return &Error{Code: code, Expr: l.src, Pos: pos}
	}

	pos := l.pos
	r, ok, err := l.read()
	if err != nil {
		return err
	}
	if ok && r == '^' {
		c.negated = true
		pos = l.pos
		r, ok, err = l.read()
		if err != nil {
			return err
		}
	}

	for {
		if !ok {
			return fail(ErrMissingBracket, start)
		}
		if r == ']' {
			break
		}
		if r == '-' {
			return fail(ErrMalformedClass, pos)
		}
		if r == '\\' {
			if r, ok, err = l.read(); err != nil {
				return err
			} else if !ok {
				return fail(ErrMissingBracket, start)
			}
		}
		lo, hi := r, r

		pos = l.pos
		if r, ok, err = l.read(); err != nil {
			return err
		} else if !ok {
			return fail(ErrMissingBracket, start)
		}
		if r == '-' {
			pos = l.pos
			if r, ok, err = l.read(); err != nil {
				return err
			} else if !ok {
				return fail(ErrMissingBracket, start)
			}
			if r == ']' || r == '-' {
				return fail(ErrMalformedClass, pos)
			}
			if r == '\\' {
				if r, ok, err = l.read(); err != nil {
					return err
				} else if !ok {
					return fail(ErrMissingBracket, start)
				}
			}
			hi = r
			if lo > hi {
				lo, hi = hi, lo
			}
			pos = l.pos
			if r, ok, err = l.read(); err != nil {
				return err
			}
		}

		if c.n == MaxClassRanges {
			return fail(ErrClassTooBig, start)
		}
		c.buf[c.n] = RuneRange{Lo: lo, Hi: hi}
		c.n++
	}

	c.n = normalizeRanges(c.buf[:c.n])
	return nil
}

// normalizeRanges sorts rs by descending low bound and merges overlapping
// or adjacent ranges in place. It returns the new length.
func normalizeRanges(rs []RuneRange) int {
	if len(rs) == 0 {
		return 0
	}
	slices.SortFunc(rs, func(a, b RuneRange) int {
		if c := cmp.Compare(b.Lo, a.Lo); c != 0 {
			return c
		}
		return cmp.Compare(b.Hi, a.Hi)
	})
	q := 0
	for _, p := range rs[1:] {
		if p.Hi < rs[q].Lo-1 {
			q++
			rs[q] = p
			continue
		}
		rs[q].Lo = p.Lo
		if p.Hi > rs[q].Hi {
			rs[q].Hi = p.Hi
		}
	}
	return q + 1
}
