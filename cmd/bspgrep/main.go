// Command bspgrep reads lines from standard input and reports the groups
// of each line the pattern matches.
//
// Usage:
//
//	bspgrep [flags] pattern
//
// For every matching line it prints "match!" followed by the text of each
// recorded group, one per line.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spewspews/bspregexp"
	"github.com/spewspews/bspregexp/meta"
)

// defaultLimit is the number of groups recorded per match, group 0 included.
const defaultLimit = 10

type options struct {
	literal     bool
	dotNL       bool
	multiline   bool
	template    string
	format      string
	stamp       string
	interactive bool
	dump        bool
	verbose     bool
	limit       int
	pattern     string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("bspgrep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.literal, "l", false, "treat the pattern as a literal string")
	fs.BoolVar(&opts.dotNL, "n", false, "let '.' match newline")
	fs.BoolVar(&opts.multiline, "m", false, "let '^' and '$' match at line breaks")
	fs.StringVar(&opts.template, "s", "", "print the substitution `template` instead of the groups")
	fs.StringVar(&opts.format, "format", "text", "output format: text or yaml")
	fs.StringVar(&opts.stamp, "stamp", "", "prefix each match with the time in strftime `format`")
	fs.BoolVar(&opts.interactive, "i", false, "read lines interactively")
	fs.BoolVar(&opts.dump, "d", false, "print the parse tree and program before matching")
	fs.BoolVar(&opts.verbose, "v", false, "log compilation to standard error")
	fs.IntVar(&opts.limit, "c", defaultLimit, "number of groups recorded, group 0 included; negative for all")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bspgrep [flags] pattern")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("enter regex")
	}
	if opts.literal && opts.dotNL {
		return nil, errors.New("-l and -n are exclusive")
	}
	switch opts.format {
	case formatText, formatYAML:
	default:
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}
	opts.pattern = fs.Arg(0)
	return opts, nil
}

func compile(opts *options, stderr io.Writer) (*bspregexp.Regex, error) {
	config := bspregexp.DefaultConfig()
	switch {
	case opts.literal:
		config.Mode = meta.ModeLiteral
	case opts.dotNL:
		config.Mode = meta.ModeDotNL
	}
	config.Multiline = opts.multiline
	config.Verbose = opts.verbose
	config.LogWriter = stderr
	return bspregexp.CompileWithConfig(opts.pattern, config)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	re, err := compile(opts, stderr)
	if err != nil {
		return err
	}
	if opts.dump {
		fmt.Fprintln(stdout, re.Dump())
	}
	p, err := newPrinter(stdout, opts)
	if err != nil {
		return err
	}

	if opts.interactive && isTerminal(stdin) {
		return interactive(re, p, stderr)
	}

	r := bufio.NewReader(stdin)
	for n := 1; ; n++ {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 && line[len(line)-1] == '\n' {
			line = line[:len(line)-1]
		}
		if len(line) > 0 || err == nil {
			if merr := p.match(re, n, line); merr != nil {
				fmt.Fprintf(stderr, "bspgrep: line %d: %v\n", n, merr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
