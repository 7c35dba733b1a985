package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string, literal bool) []Token {
	t.Helper()
	l := NewLexer(src, literal)
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == TokenEnd {
			return toks
		}
	}
}

func TestLexOperators(t *testing.T) {
	toks := lexAll(t, `a.^$(|)*+?`, false)
	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenRune, TokenAny, TokenBOL, TokenEOL, TokenLParen, TokenOr,
		TokenRParen, TokenStar, TokenPlus, TokenQuest, TokenEnd,
	}, kinds)
	assert.Equal(t, 'a', toks[0].Rune)
	assert.Equal(t, 10, toks[len(toks)-1].Pos)
}

func TestLexEscape(t *testing.T) {
	toks := lexAll(t, `\*\\x`, false)
	require.Len(t, toks, 4)
	assert.Equal(t, Token{Kind: TokenRune, Rune: '*', Pos: 0}, toks[0])
	assert.Equal(t, Token{Kind: TokenRune, Rune: '\\', Pos: 2}, toks[1])
	assert.Equal(t, Token{Kind: TokenRune, Rune: 'x', Pos: 4}, toks[2])
}

func TestLexLiteralMode(t *testing.T) {
	toks := lexAll(t, `a(*\`, true)
	require.Len(t, toks, 5)
	for i, want := range []rune{'a', '(', '*', '\\'} {
		assert.Equal(t, TokenRune, toks[i].Kind)
		assert.Equal(t, want, toks[i].Rune)
	}
}

func TestLexUnicode(t *testing.T) {
	toks := lexAll(t, "é.", false)
	require.Len(t, toks, 3)
	assert.Equal(t, 'é', toks[0].Rune)
	assert.Equal(t, 2, toks[1].Pos)
}

func TestLexUnread(t *testing.T) {
	l := NewLexer("ab", false)
	first, err := l.Next()
	require.NoError(t, err)
	l.Unread()
	again, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, first, again)
	second, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, 'b', second.Rune)
}

func TestLexClass(t *testing.T) {
	tests := []struct {
		src     string
		want    []RuneRange
		negated bool
	}{
		{`[abc]`, []RuneRange{{'a', 'c'}}, false},
		{`[0-9a-z]`, []RuneRange{{'a', 'z'}, {'0', '9'}}, false},
		{`[a-cb-e]`, []RuneRange{{'a', 'e'}}, false},
		{`[z-a]`, []RuneRange{{'a', 'z'}}, false},
		{`[^x]`, []RuneRange{{'x', 'x'}}, true},
		{`[\]]`, []RuneRange{{']', ']'}}, false},
		{`[\-a]`, []RuneRange{{'a', 'a'}, {'-', '-'}}, false},
		{`[a-\]]`, []RuneRange{{']', 'a'}}, false},
		{`[]`, []RuneRange{}, false},
		{`[^]`, []RuneRange{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			l := NewLexer(tt.src, false)
			tok, err := l.Next()
			require.NoError(t, err)
			require.Equal(t, TokenClass, tok.Kind)
			rs, negated := l.Class()
			assert.Equal(t, tt.want, append([]RuneRange{}, rs...))
			assert.Equal(t, tt.negated, negated)
		})
	}
}
