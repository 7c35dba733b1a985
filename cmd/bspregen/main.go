// Package main is the bspregen code generator. It compiles a pattern and
// writes a Go file embedding the compiled program.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spewspews/bspregexp"
	"github.com/spewspews/bspregexp/codegen"
	"github.com/spewspews/bspregexp/meta"
)

type options struct {
	pattern   string
	name      string
	pkg       string
	output    string
	mode      string
	multiline bool
	bytes     bool
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("bspregen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.pattern, "pattern", "", "regular expression to compile (required)")
	fs.StringVar(&opts.name, "name", "", "exported variable name (required)")
	fs.StringVar(&opts.pkg, "pkg", "main", "package of the generated file")
	fs.StringVar(&opts.output, "o", "-", "output file, - for standard output")
	fs.StringVar(&opts.mode, "mode", "normal", "compile mode: normal, literal or dotnl")
	fs.BoolVar(&opts.multiline, "m", false, "multiline anchors")
	fs.BoolVar(&opts.bytes, "bytes", false, "match raw bytes instead of UTF-8")
	fs.BoolVar(&opts.verbose, "v", false, "log compilation and generation")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bspregen -pattern re -name Name [-pkg p] [-o file] [-mode m] [-m] [-bytes] [-v]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.pattern == "" || opts.name == "" {
		fs.Usage()
		return nil, fmt.Errorf("-pattern and -name are required")
	}
	return opts, nil
}

func parseMode(s string) (meta.Mode, error) {
	switch s {
	case "normal":
		return meta.ModeNormal, nil
	case "literal":
		return meta.ModeLiteral, nil
	case "dotnl":
		return meta.ModeDotNL, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	mode, err := parseMode(opts.mode)
	if err != nil {
		return err
	}

	config := bspregexp.DefaultConfig()
	config.Mode = mode
	config.Multiline = opts.multiline
	config.Bytes = opts.bytes
	config.Verbose = opts.verbose
	config.LogWriter = stderr
	re, err := bspregexp.CompileWithConfig(opts.pattern, config)
	if err != nil {
		return err
	}

	g, err := codegen.New(codegen.Config{
		Package:   opts.pkg,
		Name:      opts.name,
		Multiline: opts.multiline,
		Bytes:     opts.bytes,
		Verbose:   opts.verbose,
		LogWriter: stderr,
	})
	if err != nil {
		return err
	}
	if err := g.Generate(re.Program()); err != nil {
		return err
	}
	if opts.output == "-" {
		return g.Render(stdout)
	}
	return g.Save(opts.output)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, "bspregen:", err)
		}
		os.Exit(2)
	}
}
