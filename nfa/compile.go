package nfa

import (
	"fmt"
	"math"

	"github.com/spewspews/bspregexp/internal/conv"
	"github.com/spewspews/bspregexp/syntax"
)

// CompilerConfig configures NFA compilation behavior
type CompilerConfig struct {
	// Literal treats every rune of the pattern as a literal
	Literal bool

	// DotNewline determines whether '.' matches '\n'
	DotNewline bool

	// MaxPatternLen refuses longer patterns before any allocation.
	// Zero means no limit.
	// Default: 1 << 16
	MaxPatternLen int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxPatternLen: 1 << 16,
	}
}

// Compiler lowers syntax trees into Programs
type Compiler struct {
	config CompilerConfig
	tree   *syntax.Tree
	insts  []Inst
}

// NewCompiler creates a new NFA compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a new NFA compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile parses and compiles a pattern.
func (c *Compiler) Compile(pattern string) (*Program, error) {
	if err := c.checkLen(pattern); err != nil {
		return nil, err
	}
	var flags syntax.Flags
	if c.config.Literal {
		flags |= syntax.Literal
	}
	tree, err := syntax.Parse(pattern, flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return c.CompileTree(tree)
}

func (c *Compiler) checkLen(pattern string) error {
	if c.config.MaxPatternLen > 0 && len(pattern) > c.config.MaxPatternLen {
		return &CompileError{
			Pattern: pattern,
			Err:     fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(pattern), c.config.MaxPatternLen),
		}
	}
	return nil
}

// CompileTree compiles a parsed tree. The instruction array is allocated
// once with the size tallied by the parser.
func (c *Compiler) CompileTree(tree *syntax.Tree) (*Program, error) {
	if err := c.checkLen(tree.Expr); err != nil {
		return nil, err
	}
	if int64(tree.NumInsts) >= math.MaxUint32 {
		return nil, &CompileError{Pattern: tree.Expr, Err: ErrTooLarge}
	}

	c.tree = tree
	c.insts = make([]Inst, tree.NumInsts)
	defer func() {
		c.tree = nil
		c.insts = nil
	}()

	end, err := c.compile(tree.Root, 0)
	if err != nil {
		return nil, &CompileError{Pattern: tree.Expr, Err: err}
	}
	return newProgram(tree.Expr, c.insts[:end:end], tree.NumCaps, len(tree.Expr)+1, c.config.DotNewline), nil
}

func (c *Compiler) emit(pc InstID, inst Inst) error {
	if int(pc) >= len(c.insts) {
		return fmt.Errorf("%w: instruction %d exceeds estimate of %d", ErrCompilation, pc, len(c.insts))
	}
	c.insts[pc] = inst
	return nil
}

// compile lowers the subtree at id starting at pc and returns the first
// instruction after it.
func (c *Compiler) compile(id syntax.NodeID, pc InstID) (InstID, error) {
	for id != syntax.NoNode {
		n := c.tree.Node(id)
		if n.Op != syntax.OpCat {
			break
		}
		var err error
		if pc, err = c.compile(n.Left, pc); err != nil {
			return 0, err
		}
		id = n.Right
	}
	if id == syntax.NoNode {
		return pc, nil
	}

	n := c.tree.Node(id)
	switch n.Op {
	case syntax.OpRune:
		return pc + 1, c.emit(pc, RuneInst(n.Rune, pc+1))

	case syntax.OpAny:
		if !c.config.DotNewline {
			if err := c.emit(pc, NotNLInst(pc+1)); err != nil {
				return 0, err
			}
			pc++
		}
		return pc + 1, c.emit(pc, AnyInst(pc+1))

	case syntax.OpNotNL:
		return pc + 1, c.emit(pc, NotNLInst(pc+1))

	case syntax.OpBOL:
		return pc + 1, c.emit(pc, BOLInst(pc+1))

	case syntax.OpEOL:
		return pc + 1, c.emit(pc, EOLInst(pc+1))

	case syntax.OpClass:
		hit := pc + InstID(conv.IntToUint32(n.Ordinal)) + 1
		if err := c.emit(pc, ClassInst(n.Range.Lo, n.Range.Hi, hit)); err != nil {
			return 0, err
		}
		return c.compile(n.Left, pc+1)

	case syntax.OpAlt:
		// split L1, L2; L1: left; jump L3; L2: right; L3:
		jmp, err := c.compile(n.Left, pc+1)
		if err != nil {
			return 0, err
		}
		end, err := c.compile(n.Right, jmp+1)
		if err != nil {
			return 0, err
		}
		if err := c.emit(pc, SplitInst(pc+1, jmp+1)); err != nil {
			return 0, err
		}
		return end, c.emit(jmp, JumpInst(end))

	case syntax.OpStar:
		// L1: split L2, L3; L2: body; jump L1; L3:
		jmp, err := c.compile(n.Left, pc+1)
		if err != nil {
			return 0, err
		}
		if err := c.emit(pc, SplitInst(pc+1, jmp+1)); err != nil {
			return 0, err
		}
		return jmp + 1, c.emit(jmp, JumpInst(pc))

	case syntax.OpPlus:
		// L1: body; split L1, L2; L2:
		split, err := c.compile(n.Left, pc)
		if err != nil {
			return 0, err
		}
		return split + 1, c.emit(split, SplitInst(pc, split+1))

	case syntax.OpQuest:
		// split L1, L2; L1: body; L2:
		end, err := c.compile(n.Left, pc+1)
		if err != nil {
			return 0, err
		}
		return end, c.emit(pc, SplitInst(pc+1, end))

	case syntax.OpCapture:
		if err := c.emit(pc, SaveInst(n.Cap, pc+1)); err != nil {
			return 0, err
		}
		unsave, err := c.compile(n.Left, pc+1)
		if err != nil {
			return 0, err
		}
		return unsave + 1, c.emit(unsave, UnsaveInst(n.Cap, unsave+1))
	}
	return 0, fmt.Errorf("%w: unexpected node %s", ErrCompilation, n.Op)
}

// Compile is a convenience wrapper compiling pattern with the default configuration.
func Compile(pattern string) (*Program, error) {
	return NewDefaultCompiler().Compile(pattern)
}
