package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-pattern", "(ab|c)d", "-name", "Thing", "-pkg", "things"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() failed: %v\n%s", err, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"package things", "var ThingProgram = nfa.MustAssemble(", "var Thing = bspregexp.MustLoad("} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.go")
	var stdout, stderr bytes.Buffer
	err := run([]string{"-pattern", "a.b", "-name", "Dot", "-mode", "dotnl", "-m", "-o", path}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	src := string(data)
	if !strings.Contains(src, `nfa.MustAssemble("a.b", 1, true,`) {
		t.Errorf("dotnl program not embedded:\n%s", src)
	}
	if !strings.Contains(src, "config.Multiline = true") {
		t.Errorf("multiline config not embedded:\n%s", src)
	}
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-pattern", "ab", "-name", "AB", "-v"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"=== parse ===", "=== codegen ==="} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("log lacks %q:\n%s", want, stderr.String())
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing pattern", []string{"-name", "X"}, "required"},
		{"bad mode", []string{"-pattern", "a", "-name", "X", "-mode", "fancy"}, "unknown mode"},
		{"bad pattern", []string{"-pattern", "(a", "-name", "X"}, "no matching parenthesis"},
		{"bad name", []string{"-pattern", "a", "-name", "x"}, "not an exported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run(%q) error = %v, want %q", tt.args, err, tt.want)
			}
		})
	}
}
