package syntax

// NodeID indexes a node in Tree.Nodes.
type NodeID int32

// NoNode marks an absent child. An absent operand matches the empty string.
const NoNode NodeID = -1

// Op is the operator of a parse tree node.
type Op uint8

const (
	OpRune    Op = iota + 1 // matches Rune
	OpAny                   // matches any rune
	OpNotNL                 // fails at a newline without consuming
	OpBOL                   // ^
	OpEOL                   // $
	OpClass                 // one link of a class chain, see Node
	OpCat                   // Left then Right
	OpAlt                   // Left or Right, Left preferred
	OpStar                  // Left*
	OpPlus                  // Left+
	OpQuest                 // Left?
	OpCapture               // (Left) recorded as group Cap
)

var opNames = [...]string{
	OpRune:    "rune",
	OpAny:     "any",
	OpNotNL:   "notnl",
	OpBOL:     "bol",
	OpEOL:     "eol",
	OpClass:   "class",
	OpCat:     "cat",
	OpAlt:     "alt",
	OpStar:    "star",
	OpPlus:    "plus",
	OpQuest:   "quest",
	OpCapture: "capture",
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "op?"
}

// instCost is the number of instructions the compiler emits for each
// operator, not counting its operands.
var instCost = [...]int{
	OpRune:    1,
	OpAny:     2,
	OpNotNL:   1,
	OpBOL:     1,
	OpEOL:     1,
	OpClass:   1,
	OpCat:     0,
	OpAlt:     2,
	OpStar:    2,
	OpPlus:    1,
	OpQuest:   1,
	OpCapture: 2,
}

// Node is one vertex of the parse tree.
//
// A character class is a chain of OpClass nodes linked through Left and
// ordered by descending Range.Lo. A rune c is decided by the first link
// with c >= Range.Lo: it matches if c <= Range.Hi and fails otherwise.
// Ordinal counts links from the tail of the chain, so the head of a chain
// of k+1 links has Ordinal k.
type Node struct {
	Op      Op
	Left    NodeID
	Right   NodeID
	Rune    rune
	Range   RuneRange
	Ordinal int
	Cap     int
}

// Tree is a parsed pattern. Nodes live in a single arena and refer to each
// other by index. Root is always the OpCapture node for group 0.
type Tree struct {
	Expr     string
	Nodes    []Node
	Root     NodeID
	NumCaps  int // including group 0
	NumInsts int // upper bound on compiled program length
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) *Node {
	return &t.Nodes[id]
}

// ClassRanges returns the decision ranges of the chain starting at head,
// head first. Empty ranges are skipped.
func (t *Tree) ClassRanges(head NodeID) []RuneRange {
	var rs []RuneRange
	for id := head; id != NoNode; id = t.Nodes[id].Left {
		if r := t.Nodes[id].Range; r.Lo <= r.Hi {
			rs = append(rs, r)
		}
	}
	return rs
}
