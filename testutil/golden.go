package testutil

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/comalice/langtour"
)

var update = flag.Bool("update", false, "rewrite golden files under testdata/")

// RunLesson runs a lesson into a buffer and returns everything it printed.
func RunLesson(t testing.TB, l *langtour.Lesson) string {
	t.Helper()
	var buf bytes.Buffer
	if err := l.Run(context.Background(), &buf); err != nil {
		t.Fatalf("lesson %s failed: %v", l.Name, err)
	}
	return buf.String()
}

// RunSection runs a single section and returns its output.
func RunSection(t testing.TB, l *langtour.Lesson, id langtour.SectionID) string {
	t.Helper()
	var buf bytes.Buffer
	if err := l.RunSection(context.Background(), &buf, id); err != nil {
		t.Fatalf("lesson %s section %d failed: %v", l.Name, id, err)
	}
	return buf.String()
}

// SectionByTitle resolves a section ID from its outline title.
func SectionByTitle(t testing.TB, l *langtour.Lesson, title string) langtour.SectionID {
	t.Helper()
	for _, e := range l.Outline() {
		if e.Title == title {
			return e.ID
		}
	}
	t.Fatalf("lesson %s has no section titled %q", l.Name, title)
	return 0
}

// AssertGolden compares got with testdata/<name>.golden, reporting the first
// differing line. Run the tests with -update to rewrite the file instead.
func AssertGolden(t testing.TB, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name+".golden")
	if *update {
		if err := os.MkdirAll("testdata", 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatal(err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	if got == string(want) {
		return
	}
	line, g, w := FirstDiff(got, string(want))
	t.Errorf("%s: output differs at line %d\n got: %q\nwant: %q", path, line, g, w)
}

// FirstDiff returns the 1-based number of the first line where a and b differ,
// with that line from each side. It returns 0 when they are equal.
func FirstDiff(a, b string) (int, string, string) {
	al, bl := Lines(a), Lines(b)
	for i := 0; i < len(al) || i < len(bl); i++ {
		var x, y string
		if i < len(al) {
			x = al[i]
		}
		if i < len(bl) {
			y = bl[i]
		}
		if x != y || i >= len(al) || i >= len(bl) {
			return i + 1, x, y
		}
	}
	return 0, "", ""
}

// Lines splits output into lines without the trailing empty element.
func Lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// AssertContainsInOrder checks that every line in want appears in out, in order.
func AssertContainsInOrder(t testing.TB, out string, want ...string) {
	t.Helper()
	rest := Lines(out)
	for _, w := range want {
		found := false
		for i, line := range rest {
			if line == w {
				rest = rest[i+1:]
				found = true
				break
			}
		}
		if !found {
			t.Errorf("line %q missing or out of order", w)
			return
		}
	}
}
