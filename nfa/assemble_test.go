package nfa

import (
	"errors"
	"reflect"
	"testing"
)

func TestAssembleRoundTrip(t *testing.T) {
	prog, err := Compile(`a(b|c)*d`)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Assemble(prog.Expr(), prog.NumCaps(), prog.DotNL(), prog.Insts())
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}
	if again.String() != prog.String() {
		t.Errorf("listing changed:\n%s\nvs\n%s", again, prog)
	}

	for _, in := range []string{"ad", "abcbd", "xxabbd", "abx"} {
		a := NewPikeVM(prog, PikeVMConfig{})
		b := NewPikeVM(again, PikeVMConfig{})
		if got, want := find(t, b, in), find(t, a, in); !reflect.DeepEqual(got, want) {
			t.Errorf("%q: assembled %v, compiled %v", in, got, want)
		}
	}
}

func TestAssembleThreadBound(t *testing.T) {
	prog, err := Compile(`(a|b)*c`)
	if err != nil {
		t.Fatal(err)
	}
	again := MustAssemble(prog.Expr(), prog.NumCaps(), false, prog.Insts())
	// three consuming instructions, two splits, one entry thread
	if got := again.MaxThreads(); got != 6 {
		t.Errorf("MaxThreads() = %d, want 6", got)
	}
	if again.MaxThreads() > prog.MaxThreads() {
		t.Errorf("assembled bound %d exceeds compiled bound %d", again.MaxThreads(), prog.MaxThreads())
	}
}

func TestAssembleInvalid(t *testing.T) {
	tests := []struct {
		name  string
		caps  int
		insts []Inst
	}{
		{"empty", 1, nil},
		{"no groups", 0, []Inst{SaveInst(0, 1), UnsaveInst(0, 2)}},
		{"jump out of range", 1, []Inst{SaveInst(0, 1), JumpInst(9), UnsaveInst(0, 3)}},
		{"split out of range", 1, []Inst{SaveInst(0, 1), SplitInst(2, 5), UnsaveInst(0, 3)}},
		{"group out of range", 1, []Inst{SaveInst(1, 1), UnsaveInst(0, 2)}},
		{"class falls off the end", 1, []Inst{SaveInst(0, 1), ClassInst('a', 'b', 1)}},
		{"zero instruction", 1, []Inst{{}, UnsaveInst(0, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble("x", tt.caps, false, tt.insts)
			if !errors.Is(err, ErrInvalidProgram) {
				t.Errorf("err = %v, want ErrInvalidProgram", err)
			}
		})
	}
}
