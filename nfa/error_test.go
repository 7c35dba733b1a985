package nfa

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
		is   error
	}{
		{
			name: "compile with pattern",
			err:  &CompileError{Pattern: "a*", Err: ErrTooLarge},
			want: `NFA compilation failed for pattern "a*": pattern too large`,
			is:   ErrTooLarge,
		},
		{
			name: "compile without pattern",
			err:  &CompileError{Err: ErrCompilation},
			want: "NFA compilation failed: NFA compilation failed",
			is:   ErrCompilation,
		},
		{
			name: "encoding",
			err:  &EncodingError{Pos: 3},
			want: "invalid UTF-8 in input at offset 3",
			is:   ErrInvalidEncoding,
		},
		{
			name: "assemble at instruction",
			err:  &AssembleError{Message: "bad target", PC: 2},
			want: "invalid program at instruction 2: bad target",
			is:   ErrInvalidProgram,
		},
		{
			name: "assemble whole table",
			err:  &AssembleError{Message: "empty instruction table", PC: InvalidInst},
			want: "invalid program: empty instruction table",
			is:   ErrInvalidProgram,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.is)
			}
		})
	}
}

func TestEncodingErrorAs(t *testing.T) {
	vm := NewPikeVM(mustCompileForError(t, "b"), PikeVMConfig{})
	_, err := vm.IsMatch(vm.NewState(), NewInput([]byte("a\xffb")))
	var enc *EncodingError
	if !errors.As(err, &enc) {
		t.Fatalf("IsMatch error = %v, want *EncodingError", err)
	}
	if enc.Pos != 1 {
		t.Errorf("Pos = %d, want 1", enc.Pos)
	}
}

func mustCompileForError(t *testing.T, pattern string) *Program {
	t.Helper()
	prog, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return prog
}
