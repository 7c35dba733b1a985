package syntax

import "unicode/utf8"

// Lexer splits a pattern into tokens. In literal mode every rune is a
// TokenRune. Otherwise a backslash makes the following rune literal.
//
// The parser needs one token of lookahead; Unread pushes back the last
// token returned by Next.
type Lexer struct {
	src     string
	pos     int
	literal bool

	last    Token
	pending bool

	cls classLexer
}

// NewLexer returns a lexer over src.
func NewLexer(src string, literal bool) *Lexer {
	return &Lexer{src: src, literal: literal}
}

// Next returns the next token. At the end of the pattern it returns a
// TokenEnd token and keeps returning it.
func (l *Lexer) Next() (Token, error) {
	if l.pending {
		l.pending = false
		return l.last, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.last = tok
	return tok, nil
}

// Unread makes the next call to Next return the last token again.
func (l *Lexer) Unread() {
	l.pending = true
}

// Class returns the ranges and negation of the most recent TokenClass.
// The slice is owned by the lexer and is overwritten by the next class.
func (l *Lexer) Class() ([]RuneRange, bool) {
	return l.cls.ranges(), l.cls.negated
}

func (l *Lexer) scan() (Token, error) {
	start := l.pos
	r, ok, err := l.read()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{Kind: TokenEnd, Pos: start}, nil
	}
	if l.literal {
		return Token{Kind: TokenRune, Rune: r, Pos: start}, nil
	}
	switch r {
	case '\\':
		r, ok, err = l.read()
		if err != nil {
			return Token{}, err
		}
		if !ok {
			return Token{}, &Error{Code: ErrTrailingBackslash, Expr: l.src, Pos: start}
		}
		return Token{Kind: TokenRune, Rune: r, Pos: start}, nil
	case '*':
		return Token{Kind: TokenStar, Pos: start}, nil
	case '+':
		return Token{Kind: TokenPlus, Pos: start}, nil
	case '?':
		return Token{Kind: TokenQuest, Pos: start}, nil
	case '|':
		return Token{Kind: TokenOr, Pos: start}, nil
	case '.':
		return Token{Kind: TokenAny, Pos: start}, nil
	case '^':
		return Token{Kind: TokenBOL, Pos: start}, nil
	case '$':
		return Token{Kind: TokenEOL, Pos: start}, nil
	case '(':
		return Token{Kind: TokenLParen, Pos: start}, nil
	case ')':
		return Token{Kind: TokenRParen, Pos: start}, nil
	case '[':
		if err := l.cls.lex(l, start); err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenClass, Pos: start}, nil
	}
	return Token{Kind: TokenRune, Rune: r, Pos: start}, nil
}

// read decodes the rune at the current position and advances past it.
// ok is false at the end of the pattern.
func (l *Lexer) read() (r rune, ok bool, err error) {
	if l.pos >= len(l.src) {
		return 0, false, nil
	}
	r, w := utf8.DecodeRuneInString(l.src[l.pos:])
	if r == utf8.RuneError && w == 1 {
		return 0, false, &Error{Code: ErrInvalidUTF8, Expr: l.src, Pos: l.pos}
	}
	l.pos += w
	return r, true, nil
}
