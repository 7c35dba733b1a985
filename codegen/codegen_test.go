package codegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spewspews/bspregexp/nfa"
)

func generate(t *testing.T, config Config, pattern string, cc nfa.CompilerConfig) (string, *nfa.Program) {
	t.Helper()
	prog, err := nfa.NewCompiler(cc).Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	g, err := New(config)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := g.Generate(prog); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	return buf.String(), prog
}

// rebuild parses src and evaluates the MustAssemble call it contains.
func rebuild(t *testing.T, src string) *nfa.Program {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}

	var call *ast.CallExpr
	ast.Inspect(file, func(n ast.Node) bool {
		if c, ok := n.(*ast.CallExpr); ok && callee(c) == "MustAssemble" {
			call = c
			return false
		}
		return true
	})
	if call == nil || len(call.Args) != 4 {
		t.Fatalf("no MustAssemble call in:\n%s", src)
	}

	expr, err := strconv.Unquote(call.Args[0].(*ast.BasicLit).Value)
	if err != nil {
		t.Fatal(err)
	}
	numCaps := intArg(t, call.Args[1])
	dotNL := call.Args[2].(*ast.Ident).Name == "true"

	var insts []nfa.Inst
	for _, elt := range call.Args[3].(*ast.CompositeLit).Elts {
		c := elt.(*ast.CallExpr)
		args := make([]int, len(c.Args))
		for i, a := range c.Args {
			args[i] = intArg(t, a)
		}
		id := func(i int) nfa.InstID { return nfa.InstID(args[i]) }
		switch callee(c) {
		case "AnyInst":
			insts = append(insts, nfa.AnyInst(id(0)))
		case "RuneInst":
			insts = append(insts, nfa.RuneInst(rune(args[0]), id(1)))
		case "ClassInst":
			insts = append(insts, nfa.ClassInst(rune(args[0]), rune(args[1]), id(2)))
		case "BOLInst":
			insts = append(insts, nfa.BOLInst(id(0)))
		case "EOLInst":
			insts = append(insts, nfa.EOLInst(id(0)))
		case "NotNLInst":
			insts = append(insts, nfa.NotNLInst(id(0)))
		case "JumpInst":
			insts = append(insts, nfa.JumpInst(id(0)))
		case "SplitInst":
			insts = append(insts, nfa.SplitInst(id(0), id(1)))
		case "SaveInst":
			insts = append(insts, nfa.SaveInst(args[0], id(1)))
		case "UnsaveInst":
			insts = append(insts, nfa.UnsaveInst(args[0], id(1)))
		default:
			t.Fatalf("unexpected constructor %s", callee(c))
		}
	}
	prog, err := nfa.Assemble(expr, numCaps, dotNL, insts)
	if err != nil {
		t.Fatalf("generated table does not assemble: %v", err)
	}
	return prog
}

func callee(c *ast.CallExpr) string {
	if sel, ok := c.Fun.(*ast.SelectorExpr); ok {
		return sel.Sel.Name
	}
	return ""
}

// intArg evaluates an integer or rune literal, possibly negated.
func intArg(t *testing.T, e ast.Expr) int {
	t.Helper()
	switch e := e.(type) {
	case *ast.UnaryExpr:
		if e.Op == token.SUB {
			return -intArg(t, e.X)
		}
	case *ast.BasicLit:
		switch e.Kind {
		case token.INT:
			n, err := strconv.Atoi(e.Value)
			if err != nil {
				t.Fatal(err)
			}
			return n
		case token.CHAR:
			r, _, _, err := strconv.UnquoteChar(e.Value[1:len(e.Value)-1], '\'')
			if err != nil {
				t.Fatal(err)
			}
			return int(r)
		}
	}
	t.Fatalf("unexpected argument %T", e)
	return 0
}

func TestGenerateRoundTrip(t *testing.T) {
	tests := []struct {
		pattern string
		cc      nfa.CompilerConfig
	}{
		{`(ab|c)d`, nfa.DefaultCompilerConfig()},
		{`^[a-z0-9]+$`, nfa.DefaultCompilerConfig()},
		{`[^\]'"]*x`, nfa.DefaultCompilerConfig()},
		{`[]|é.`, nfa.DefaultCompilerConfig()},
		{`a.b`, nfa.CompilerConfig{DotNewline: true}},
		{"\n`*", nfa.CompilerConfig{Literal: true}},
		{`((a)|b)*?`, nfa.DefaultCompilerConfig()},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			src, prog := generate(t, Config{Package: "gen", Name: "Pattern"}, tt.pattern, tt.cc)
			again := rebuild(t, src)

			if diff := cmp.Diff(prog.String(), again.String()); diff != "" {
				t.Errorf("listing mismatch (-compiled +generated):\n%s", diff)
			}
			if diff := cmp.Diff(prog.Insts(), again.Insts(), cmp.AllowUnexported(nfa.Inst{})); diff != "" {
				t.Errorf("instructions mismatch (-compiled +generated):\n%s", diff)
			}
			if again.Expr() != prog.Expr() || again.NumCaps() != prog.NumCaps() || again.DotNL() != prog.DotNL() {
				t.Errorf("header mismatch: %q/%d/%t vs %q/%d/%t",
					again.Expr(), again.NumCaps(), again.DotNL(), prog.Expr(), prog.NumCaps(), prog.DotNL())
			}
		})
	}
}

func TestGenerateDeclarations(t *testing.T) {
	src, _ := generate(t, Config{Package: "patterns", Name: "Word"}, `[a-z]+`, nfa.DefaultCompilerConfig())
	for _, want := range []string{
		"// Code generated by bspregen. DO NOT EDIT.",
		"package patterns",
		`"github.com/spewspews/bspregexp/nfa"`,
		"// WordProgram is the precompiled program for `[a-z]+`.",
		"var WordProgram = nfa.MustAssemble(",
		"var Word = bspregexp.MustLoad(WordProgram, bspregexp.DefaultConfig())",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source lacks %q:\n%s", want, src)
		}
	}
	if strings.Contains(src, "meta.Config") {
		t.Errorf("default config should not mention meta.Config:\n%s", src)
	}
}

func TestGenerateConfig(t *testing.T) {
	src, _ := generate(t, Config{Package: "p", Name: "Line", Multiline: true, Bytes: true}, `^x$`, nfa.DefaultCompilerConfig())
	for _, want := range []string{
		"func() meta.Config {",
		"config.Multiline = true",
		"config.Bytes = true",
		"}())",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source lacks %q:\n%s", want, src)
		}
	}
	rebuild(t, src)
}

func TestInstCode(t *testing.T) {
	g, err := New(Config{Package: "p", Name: "X"})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		inst nfa.Inst
		want string
	}{
		{nfa.RuneInst('a', 3), "nfa.RuneInst('a', 3)"},
		{nfa.ClassInst(0, -1, 7), `nfa.ClassInst('\x00', -1, 7)`},
		{nfa.SplitInst(2, 5), "nfa.SplitInst(2, 5)"},
		{nfa.UnsaveInst(0, 9), "nfa.UnsaveInst(0, 9)"},
		{nfa.NotNLInst(1), "nfa.NotNLInst(1)"},
	}
	for _, tt := range tests {
		code, err := g.instCode(&tt.inst)
		if err != nil {
			t.Fatal(err)
		}
		if got := fmt.Sprintf("%#v", code); got != tt.want {
			t.Errorf("instCode(%s) = %s, want %s", tt.inst.String(), got, tt.want)
		}
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	for _, config := range []Config{
		{Package: "", Name: "X"},
		{Package: "p", Name: "lower"},
		{Package: "p", Name: ""},
		{Package: "p", Name: "Bad-Name"},
	} {
		if _, err := New(config); err == nil {
			t.Errorf("New(%+v) = nil error", config)
		}
	}
	g, _ := New(Config{Package: "p", Name: "X"})
	if err := g.Generate(nil); err == nil {
		t.Error("Generate(nil) = nil error")
	}
}

func TestVerbose(t *testing.T) {
	var log strings.Builder
	generate(t, Config{Package: "p", Name: "X", Verbose: true, LogWriter: &log}, `ab`, nfa.DefaultCompilerConfig())
	if !strings.Contains(log.String(), "=== codegen ===") || !strings.Contains(log.String(), `pattern "ab" as X in package p`) {
		t.Errorf("unexpected log:\n%s", log.String())
	}
}
