package literal

import "testing"

func TestSeqMinimize(t *testing.T) {
	seq := NewSeq(
		NewLiteral([]byte("foobar"), true),
		NewLiteral([]byte("foo"), false),
		NewLiteral([]byte("baz"), true),
		NewLiteral([]byte("foo"), true),
	)
	seq.Minimize()
	if seq.Len() != 2 {
		t.Fatalf("Len() = %d, want 2: %v", seq.Len(), seq)
	}
	if string(seq.Get(0).Bytes) != "foo" || string(seq.Get(1).Bytes) != "baz" {
		t.Errorf("Minimize() = %v", seq)
	}
	if seq.AllComplete() {
		t.Error("AllComplete() = true with an incomplete prefix kept")
	}
}

func TestSeqEmpty(t *testing.T) {
	var nilSeq *Seq
	for _, s := range []*Seq{nilSeq, NewSeq()} {
		if !s.IsEmpty() || s.Len() != 0 || s.AllComplete() || s.MinLen() != 0 {
			t.Errorf("empty seq misbehaves: %v", s.Len())
		}
	}
}

func TestSeqMinLen(t *testing.T) {
	seq := NewSeq(NewLiteral([]byte("abc"), true), NewLiteral([]byte("d"), true))
	if seq.MinLen() != 1 {
		t.Errorf("MinLen() = %d, want 1", seq.MinLen())
	}
	if got := seq.String(); got != "[literal{abc, complete=true} literal{d, complete=true}]" {
		t.Errorf("String() = %q", got)
	}
}
