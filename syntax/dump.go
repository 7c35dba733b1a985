package syntax

import (
	"fmt"
	"strings"
)

// String renders the tree one node per line, children indented.
func (t *Tree) String() string {
	var b strings.Builder
	t.dump(&b, t.Root, 0)
	return b.String()
}

func (t *Tree) dump(b *strings.Builder, id NodeID, depth int) {
	indent := strings.Repeat("  ", depth)
	if id == NoNode {
		fmt.Fprintf(b, "%sempty\n", indent)
		return
	}
	n := &t.Nodes[id]
	switch n.Op {
	case OpRune:
		fmt.Fprintf(b, "%srune %q\n", indent, n.Rune)
	case OpClass:
		fmt.Fprintf(b, "%sclass %s\n", indent, formatRanges(t.ClassRanges(id)))
	case OpCapture:
		fmt.Fprintf(b, "%scapture %d\n", indent, n.Cap)
		t.dump(b, n.Left, depth+1)
	case OpCat, OpAlt:
		fmt.Fprintf(b, "%s%s\n", indent, n.Op)
		t.dump(b, n.Left, depth+1)
		t.dump(b, n.Right, depth+1)
	case OpStar, OpPlus, OpQuest:
		fmt.Fprintf(b, "%s%s\n", indent, n.Op)
		t.dump(b, n.Left, depth+1)
	default:
		fmt.Fprintf(b, "%s%s\n", indent, n.Op)
	}
}

func formatRanges(rs []RuneRange) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range rs {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r.Lo == r.Hi {
			fmt.Fprintf(&b, "%q", r.Lo)
		} else {
			fmt.Fprintf(&b, "%q-%q", r.Lo, r.Hi)
		}
	}
	b.WriteByte(']')
	return b.String()
}
