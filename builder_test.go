package langtour

import (
	"strings"
	"testing"
)

func TestBuilderSequentialIDs(t *testing.T) {
	b := NewLessonBuilder("demo").
		Banner("=== Demo ===").
		Section("first", step("first")).
		Section("second", step("second")).
		Section("third", step("third"))

	for i, title := range []string{"first", "second", "third"} {
		if got := b.GetID(title); got != SectionID(i+1) {
			t.Errorf("GetID(%q) = %d, want %d", title, got, i+1)
		}
	}
	if got := b.GetID("missing"); got != 0 {
		t.Errorf("GetID(missing) = %d, want 0", got)
	}

	l, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Sections) != 3 || l.Banner != "=== Demo ===" {
		t.Errorf("unexpected lesson: %+v", l)
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name    string
		b       *LessonBuilder
		wantErr string
	}{
		{"missing banner", NewLessonBuilder("x").Section("a", step("a")), "banner is required"},
		{"empty title", NewLessonBuilder("x").Banner("b").Section("", step("a")), "title is required"},
		{"duplicate title", NewLessonBuilder("x").Banner("b").Section("a", step("a")).Section("a", step("a")), "already declared"},
		{"no sections", NewLessonBuilder("x").Banner("b"), "no sections"},
		{"nil step", NewLessonBuilder("x").Banner("b").Section("a", nil), "has no step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.Build()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil || !strings.HasPrefix(r.(string), "langtour: ") {
			t.Errorf("recover = %v", r)
		}
	}()
	NewLessonBuilder("x").MustBuild()
}
