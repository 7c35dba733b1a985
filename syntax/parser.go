package syntax

import "unicode"

// Flags control parsing.
type Flags uint8

const (
	// Literal treats every rune of the pattern as a literal.
	Literal Flags = 1 << iota
)

// MaxDepth bounds parenthesis nesting.
const MaxDepth = 1000

type parser struct {
	expr  string
	lex   *Lexer
	nodes []Node
	ncap  int
	insts int
	depth int
}

// Parse parses expr into a tree.
//
// Grammar, lowest precedence first:
//
//	alt  = cat { '|' cat }
//	cat  = { rep }
//	rep  = atom { '*' | '+' | '?' }
//	atom = rune | '.' | '^' | '$' | class | '(' alt ')'
//
// Concatenations may be empty, so "", "()" and "a|" are valid.
func Parse(expr string, flags Flags) (*Tree, error) {
	p := &parser{
		expr:  expr,
		lex:   NewLexer(expr, flags&Literal != 0),
		nodes: make([]Node, 0, 2*len(expr)+2),
		ncap:  1,
	}
	body, err := p.alt()
	if err != nil {
		return nil, err
	}
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEnd {
		return nil, p.errorf(ErrUnexpectedParen, tok.Pos)
	}
	root := p.push(Node{Op: OpCapture, Left: body, Right: NoNode, Cap: 0})
	return &Tree{
		Expr:     expr,
		Nodes:    p.nodes,
		Root:     root,
		NumCaps:  p.ncap,
		NumInsts: p.insts,
	}, nil
}

func (p *parser) errorf(code ErrorCode, pos int) error {
	return &Error{Code: code, Expr: p.expr, Pos: pos}
}

func (p *parser) push(n Node) NodeID {
	p.nodes = append(p.nodes, n)
	p.insts += instCost[n.Op]
	return NodeID(len(p.nodes) - 1)
}

func (p *parser) alt() (NodeID, error) {
	left, err := p.cat()
	if err != nil {
		return NoNode, err
	}
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return NoNode, err
		}
		if tok.Kind != TokenOr {
			p.lex.Unread()
			return left, nil
		}
		right, err := p.cat()
		if err != nil {
			return NoNode, err
		}
		left = p.push(Node{Op: OpAlt, Left: left, Right: right})
	}
}

func (p *parser) cat() (NodeID, error) {
	n := NoNode
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return NoNode, err
		}
		p.lex.Unread()
		switch tok.Kind {
		case TokenEnd, TokenOr, TokenRParen:
			return p.invert(n), nil
		}
		r, err := p.rep()
		if err != nil {
			return NoNode, err
		}
		if n == NoNode {
			n = r
		} else {
			n = p.push(Node{Op: OpCat, Left: n, Right: r})
		}
	}
}

// invert rotates a left-leaning chain of OpCat nodes so that it leans
// right. The compiler then walks a concatenation without deep recursion
// on its left spine.
func (p *parser) invert(n NodeID) NodeID {
	if n == NoNode || p.nodes[n].Op != OpCat {
		return n
	}
	for {
		l := p.nodes[n].Left
		if l == NoNode || p.nodes[l].Op != OpCat {
			return n
		}
		p.nodes[n].Left = p.nodes[l].Right
		p.nodes[l].Right = n
		n = l
	}
}

func (p *parser) rep() (NodeID, error) {
	n, err := p.atom()
	if err != nil {
		return NoNode, err
	}
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return NoNode, err
		}
		var op Op
		switch tok.Kind {
		case TokenStar:
			op = OpStar
		case TokenPlus:
			op = OpPlus
		case TokenQuest:
			op = OpQuest
		default:
			p.lex.Unread()
			return n, nil
		}
		n = p.push(Node{Op: op, Left: n, Right: NoNode})
	}
}

func (p *parser) atom() (NodeID, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return NoNode, err
	}
	switch tok.Kind {
	case TokenRune:
		return p.push(Node{Op: OpRune, Left: NoNode, Right: NoNode, Rune: tok.Rune}), nil
	case TokenAny:
		return p.push(Node{Op: OpAny, Left: NoNode, Right: NoNode}), nil
	case TokenBOL:
		return p.push(Node{Op: OpBOL, Left: NoNode, Right: NoNode}), nil
	case TokenEOL:
		return p.push(Node{Op: OpEOL, Left: NoNode, Right: NoNode}), nil
	case TokenClass:
		rs, negated := p.lex.Class()
		return p.class(rs, negated), nil
	case TokenLParen:
		if p.depth == MaxDepth {
			return NoNode, p.errorf(ErrNestingDepth, tok.Pos)
		}
		p.depth++
		group := p.ncap
		p.ncap++
		inner, err := p.alt()
		if err != nil {
			return NoNode, err
		}
		p.depth--
		closing, err := p.lex.Next()
		if err != nil {
			return NoNode, err
		}
		if closing.Kind != TokenRParen {
			return NoNode, p.errorf(ErrMissingParen, tok.Pos)
		}
		return p.push(Node{Op: OpCapture, Left: inner, Right: NoNode, Cap: group}), nil
	}
	return NoNode, p.errorf(ErrUnexpectedToken, tok.Pos)
}

// class builds a class chain from normalized ranges. A plain class ends in
// a link that rejects every rune. A negated class is built from the gaps
// between the ranges and is preceded by OpNotNL.
func (p *parser) class(rs []RuneRange, negated bool) NodeID {
	var links []RuneRange
	if !negated {
		links = append(links, rs...)
		links = append(links, RuneRange{Lo: 0, Hi: -1})
	} else {
		top := rune(0)
		if len(rs) > 0 {
			top = rs[0].Hi + 1
		}
		links = append(links, RuneRange{Lo: top, Hi: unicode.MaxRune})
		for i, r := range rs {
			lo := rune(0)
			if i+1 < len(rs) {
				lo = rs[i+1].Hi + 1
			}
			links = append(links, RuneRange{Lo: lo, Hi: r.Lo - 1})
		}
	}

	head := NoNode
	for i := len(links) - 1; i >= 0; i-- {
		head = p.push(Node{
			Op:      OpClass,
			Left:    head,
			Right:   NoNode,
			Range:   links[i],
			Ordinal: len(links) - 1 - i,
		})
	}
	if !negated {
		return head
	}
	notnl := p.push(Node{Op: OpNotNL, Left: NoNode, Right: NoNode})
	return p.push(Node{Op: OpCat, Left: notnl, Right: head})
}
