package syntax

// TokenKind classifies a lexer token.
type TokenKind uint8

const (
	TokenEnd TokenKind = iota
	TokenRune
	TokenAny
	TokenBOL
	TokenEOL
	TokenClass
	TokenLParen
	TokenRParen
	TokenOr
	TokenStar
	TokenPlus
	TokenQuest
)

var tokenNames = [...]string{
	TokenEnd:    "end",
	TokenRune:   "rune",
	TokenAny:    "any",
	TokenBOL:    "bol",
	TokenEOL:    "eol",
	TokenClass:  "class",
	TokenLParen: "(",
	TokenRParen: ")",
	TokenOr:     "|",
	TokenStar:   "*",
	TokenPlus:   "+",
	TokenQuest:  "?",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "unknown"
}

// Token is one lexical unit of a pattern. Rune is set for TokenRune.
// Pos is the byte offset where the token starts.
type Token struct {
	Kind TokenKind
	Rune rune
	Pos  int
}

func (t Token) isRepeat() bool {
	return t.Kind == TokenStar || t.Kind == TokenPlus || t.Kind == TokenQuest
}
