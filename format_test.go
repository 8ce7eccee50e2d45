package langtour

import (
	"bytes"
	"errors"
	"testing"
)

type stringerPoint struct{ x, y int }

func (p stringerPoint) String() string { return Tuple(p.x, p.y) }

func TestDebug(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"hi", `"hi"`},
		{42, "42"},
		{int32(65), "65"},
		{3.14, "3.14"},
		{2.0, "2.0"},
		{float32(1.5), "1.5"},
		{1e21, "1000000000000000000000.0"},
		{-2e22, "-20000000000000000000000.0"},
		{true, "true"},
		{stringerPoint{1, 2}, "(1, 2)"},
	}
	for _, tt := range tests {
		if got := Debug(tt.in); got != tt.want {
			t.Errorf("Debug(%#v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestList(t *testing.T) {
	if got := List([]int{1, 2, 3}); got != "[1, 2, 3]" {
		t.Errorf("List ints = %s", got)
	}
	if got := List([]string{"a", "b"}); got != `["a", "b"]` {
		t.Errorf("List strings = %s", got)
	}
	if got := List([]int{}); got != "[]" {
		t.Errorf("List empty = %s", got)
	}
}

func TestTupleAndOption(t *testing.T) {
	if got := Tuple(int32(42), 3.14, true); got != "(42, 3.14, true)" {
		t.Errorf("Tuple = %s", got)
	}
	if got := Option(int32(10), true); got != "Some(10)" {
		t.Errorf("Option some = %s", got)
	}
	if got := Option(int32(0), false); got != None {
		t.Errorf("Option none = %s", got)
	}
	if got := Option("x", true); got != `Some("x")` {
		t.Errorf("Option string = %s", got)
	}
}

type brokenWriter struct{ calls int }

func (w *brokenWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("broken")
}

func TestPrinterStickyError(t *testing.T) {
	w := &brokenWriter{}
	p := NewPrinter(w)
	p.Println("a")
	p.Printf("%d", 1)
	p.Print("c")
	if w.calls != 1 {
		t.Errorf("writes after failure = %d, want 1", w.calls)
	}
	if p.Err() == nil {
		t.Error("expected sticky error")
	}
}

func TestPrinterHeader(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.section = 7
	p.Header("Constant: MaxPoints = %d", 100000)
	if buf.String() != "7. Constant: MaxPoints = 100000\n" {
		t.Errorf("got %q", buf.String())
	}
}
