// Package codegen emits Go source that embeds a precompiled program, so a
// pattern known at build time is never parsed or compiled at run time.
//
// The generated file declares two variables:
//
//	// <Name>Program is the precompiled program for `pattern`.
//	var <Name>Program = nfa.MustAssemble(...)
//
//	// <Name> matches `pattern`.
//	var <Name> = bspregexp.MustLoad(<Name>Program, ...)
package codegen

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/spewspews/bspregexp/internal/logger"
	"github.com/spewspews/bspregexp/nfa"
)

const (
	rootPath = "github.com/spewspews/bspregexp"
	nfaPath  = rootPath + "/nfa"
	metaPath = rootPath + "/meta"
)

// Config holds the configuration for code generation.
type Config struct {
	Package   string // package clause of the generated file
	Name      string // exported variable name
	Multiline bool   // generated Regex uses multiline anchors
	Bytes     bool   // generated Regex matches raw bytes
	Verbose   bool   // log generation steps
	LogWriter io.Writer
}

// Generator renders one program into a Go source file.
type Generator struct {
	config Config
	file   *jen.File
	log    *logger.Logger
}

// New creates a new generator instance.
func New(config Config) (*Generator, error) {
	if config.Package == "" {
		return nil, fmt.Errorf("codegen: empty package name")
	}
	if !isExported(config.Name) {
		return nil, fmt.Errorf("codegen: name %q is not an exported Go identifier", config.Name)
	}
	g := &Generator{
		config: config,
		file:   jen.NewFile(config.Package),
		log:    logger.New(config.Verbose),
	}
	if config.LogWriter != nil {
		g.log.SetOutput(config.LogWriter)
	}
	g.file.ImportName(rootPath, "bspregexp")
	g.file.ImportName(nfaPath, "nfa")
	g.file.ImportName(metaPath, "meta")
	return g, nil
}

// Generate adds the declarations for prog to the file.
func (g *Generator) Generate(prog *nfa.Program) error {
	if prog == nil {
		return fmt.Errorf("codegen: nil program")
	}
	name := g.config.Name
	g.log.Section("codegen")
	g.log.Log("pattern %q as %s in package %s", prog.Expr(), name, g.config.Package)
	g.log.Log("instructions: %d, groups: %d", prog.Len(), prog.NumCaps())

	g.file.HeaderComment("Code generated by bspregen. DO NOT EDIT.")

	insts := prog.Insts()
	elems := make([]jen.Code, len(insts))
	for i := range insts {
		code, err := g.instCode(&insts[i])
		if err != nil {
			return fmt.Errorf("codegen: instruction %d: %w", i, err)
		}
		elems[i] = code
	}

	progName := name + "Program"
	g.file.Commentf("%s is the precompiled program for %s.", progName, quote(prog.Expr()))
	g.file.Var().Id(progName).Op("=").Qual(nfaPath, "MustAssemble").Call(
		jen.Lit(prog.Expr()),
		jen.Lit(prog.NumCaps()),
		jen.Lit(prog.DotNL()),
		jen.Index().Qual(nfaPath, "Inst").Custom(jen.Options{
			Open:      "{",
			Close:     "}",
			Separator: ",",
			Multi:     true,
		}, elems...),
	)
	g.file.Line()

	g.file.Commentf("%s matches %s.", name, quote(prog.Expr()))
	g.file.Var().Id(name).Op("=").Qual(rootPath, "MustLoad").Call(jen.Id(progName), g.configCode())
	return nil
}

// configCode returns the expression for the generated Regex configuration.
func (g *Generator) configCode() jen.Code {
	if !g.config.Multiline && !g.config.Bytes {
		return jen.Qual(rootPath, "DefaultConfig").Call()
	}
	body := []jen.Code{
		jen.Id("config").Op(":=").Qual(rootPath, "DefaultConfig").Call(),
	}
	if g.config.Multiline {
		body = append(body, jen.Id("config").Dot("Multiline").Op("=").True())
	}
	if g.config.Bytes {
		body = append(body, jen.Id("config").Dot("Bytes").Op("=").True())
	}
	body = append(body, jen.Return(jen.Id("config")))
	return jen.Func().Params().Qual(metaPath, "Config").Block(body...).Call()
}

// instCode returns the constructor call that rebuilds inst.
func (g *Generator) instCode(inst *nfa.Inst) (jen.Code, error) {
	ctor := func(name string, args ...jen.Code) jen.Code {
		return jen.Qual(nfaPath, name).Call(args...)
	}
	out := jen.Lit(int(inst.Out()))

	switch inst.Op() {
	case nfa.OpAny:
		return ctor("AnyInst", out), nil
	case nfa.OpRune:
		return ctor("RuneInst", runeLit(inst.Rune()), out), nil
	case nfa.OpClass:
		lo, hi, hit := inst.Class()
		return ctor("ClassInst", runeLit(lo), runeLit(hi), jen.Lit(int(hit))), nil
	case nfa.OpBOL:
		return ctor("BOLInst", out), nil
	case nfa.OpEOL:
		return ctor("EOLInst", out), nil
	case nfa.OpNotNL:
		return ctor("NotNLInst", out), nil
	case nfa.OpJump:
		return ctor("JumpInst", out), nil
	case nfa.OpSplit:
		x, y := inst.Split()
		return ctor("SplitInst", jen.Lit(int(x)), jen.Lit(int(y))), nil
	case nfa.OpSave:
		group, _ := inst.Capture()
		return ctor("SaveInst", jen.Lit(group), out), nil
	case nfa.OpUnsave:
		group, _ := inst.Capture()
		return ctor("UnsaveInst", jen.Lit(group), out), nil
	}
	return nil, fmt.Errorf("unknown op %s", inst.Op())
}

// runeLit renders r as a rune literal when it is a valid rune and as an
// integer otherwise, such as the -1 bound of an empty class range.
func runeLit(r rune) jen.Code {
	if utf8.ValidRune(r) {
		return jen.LitRune(r)
	}
	return jen.Lit(int(r))
}

// Render writes the generated file to w.
func (g *Generator) Render(w io.Writer) error {
	return g.file.Render(w)
}

// Save writes the generated file to path.
func (g *Generator) Save(path string) error {
	if err := g.file.Save(path); err != nil {
		return fmt.Errorf("codegen: %w", err)
	}
	g.log.Log("wrote %s", path)
	return nil
}

func isExported(name string) bool {
	if name == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r < 'A' || r > 'Z' {
		return false
	}
	for _, c := range name {
		if c != '_' && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') && !('0' <= c && c <= '9') {
			return false
		}
	}
	return true
}

func quote(s string) string {
	if strings.ContainsAny(s, "`\n\r") {
		return fmt.Sprintf("%q", s)
	}
	return "`" + s + "`"
}
