package meta

import (
	"errors"
	"fmt"

	"github.com/spewspews/bspregexp/internal/logger"
	"github.com/spewspews/bspregexp/literal"
	"github.com/spewspews/bspregexp/nfa"
	"github.com/spewspews/bspregexp/prefilter"
	"github.com/spewspews/bspregexp/syntax"
)

// Compile compiles a regex pattern string into an executable Engine.
//
// Steps:
//  1. Parse pattern into a syntax tree
//  2. Compile the tree into a Thompson NFA program
//  3. Extract literal prefixes from the program
//  4. Build a prefilter for them (if any)
//  5. Select the search strategy
//
// Example:
//
//	engine, err := meta.Compile(`hello\.world`)
//	if err != nil {
//	    return err
//	}
//	ok, err := engine.IsMatch([]byte("say hello.world"))
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	log, err := newLogger(config)
	if err != nil {
		return nil, err
	}

	if len(pattern) > config.MaxPatternLen {
		return nil, &CompileError{
			Pattern: pattern,
			Err:     fmt.Errorf("%w: %d bytes, limit %d", nfa.ErrTooLarge, len(pattern), config.MaxPatternLen),
		}
	}

	var flags syntax.Flags
	if config.Mode == ModeLiteral {
		flags |= syntax.Literal
	}
	tree, err := syntax.Parse(pattern, flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	log.Section("parse")
	log.Log("pattern %q, mode %s", pattern, config.Mode)
	log.Block(tree.String())
	log.Log("groups: %d, instruction estimate: %d", tree.NumCaps, tree.NumInsts)

	compiler := nfa.NewCompiler(nfa.CompilerConfig{
		Literal:       config.Mode == ModeLiteral,
		DotNewline:    config.Mode == ModeDotNL,
		MaxPatternLen: config.MaxPatternLen,
	})
	prog, err := compiler.CompileTree(tree)
	if err != nil {
		var nerr *nfa.CompileError
		if errors.As(err, &nerr) {
			err = nerr.Err
		}
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	log.Section("compile")
	log.Log("instructions: %d of %d estimated, thread bound %d", prog.Len(), tree.NumInsts, prog.MaxThreads())
	log.Block(prog.String())

	e := newEngine(prog, config, log)
	e.tree = tree
	return e, nil
}

// FromProgram wraps an already built program, such as one produced by
// nfa.Assemble from generated code, in an Engine. The program's own dot
// mode is kept; config.Mode is ignored.
func FromProgram(prog *nfa.Program, config Config) (*Engine, error) {
	if prog == nil {
		return nil, &CompileError{Err: fmt.Errorf("%w: nil program", nfa.ErrInvalidProgram)}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	log, err := newLogger(config)
	if err != nil {
		return nil, err
	}
	log.Section("load")
	log.Log("program for %q, %d instructions, thread bound %d", prog.Expr(), prog.Len(), prog.MaxThreads())
	log.Block(prog.String())
	return newEngine(prog, config, log), nil
}

func newLogger(config Config) (*logger.Logger, error) {
	if !config.Verbose {
		return nil, nil
	}
	log := logger.New(true)
	if config.LogWriter != nil {
		log.SetOutput(config.LogWriter)
	}
	if err := log.SetTimestamp(config.LogTimestamp); err != nil {
		return nil, &ConfigError{Field: "LogTimestamp", Message: err.Error()}
	}
	return log, nil
}

// newEngine builds the prefilter and search machinery around prog.
func newEngine(prog *nfa.Program, config Config, log *logger.Logger) *Engine {
	var pf prefilter.Prefilter
	if config.EnablePrefilter && !(prog.IsAnchored() && !config.Multiline) {
		lc := literal.DefaultConfig()
		lc.Bytes = config.Bytes
		prefixes := literal.New(lc).ExtractPrefixes(prog)
		pf = prefilter.NewBuilder(prefixes).Build()
		log.Section("prefilter")
		log.Log("prefixes: %s", prefixes)
	}

	strategy := selectStrategy(prog, pf, config)
	if pf != nil {
		log.Log("prefilter: %s, complete %t, vector search %t", pf, pf.IsComplete(), prefilter.HasVectorSearch())
	}
	log.Log("strategy: %s", strategy)

	vm := nfa.NewPikeVM(prog, nfa.PikeVMConfig{
		Multiline:   config.Multiline,
		Bytes:       config.Bytes,
		MaxCaptures: config.MaxCaptures,
	})
	return &Engine{
		prog:      prog,
		vm:        vm,
		prefilter: pf,
		strategy:  strategy,
		config:    config,
		states:    newSearchStatePool(vm, pf),
	}
}

// CompileError represents a pattern compilation error.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
// Syntax errors already carry the pattern and offset and are returned as is.
func (e *CompileError) Error() string {
	var syntaxErr *syntax.Error
	if errors.As(e.Err, &syntaxErr) {
		return e.Err.Error()
	}
	if e.Pattern != "" {
		return fmt.Sprintf("regexp: compiling %q: %v", e.Pattern, e.Err)
	}
	return "regexp: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
