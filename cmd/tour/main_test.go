package main

import (
	"errors"
	"testing"

	"github.com/comalice/langtour"
	"github.com/comalice/langtour/internal/core"
	"github.com/comalice/langtour/lessons"
)

func TestSelectLessons(t *testing.T) {
	all := lessons.All()

	got, err := selectLessons(all, nil)
	if err != nil || len(got) != len(all) {
		t.Fatalf("no args: got %d lessons, err %v", len(got), err)
	}

	got, err = selectLessons(all, []string{"enums", "variables"})
	if err != nil {
		t.Fatalf("selectLessons failed: %v", err)
	}
	if len(got) != 2 || got[0].Name != "enums" || got[1].Name != "variables" {
		t.Errorf("got %v, want [enums variables]", names(got))
	}

	if _, err := selectLessons(all, []string{"generics"}); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("unknown lesson: err = %v, want ErrNotFound", err)
	}
}

func TestLoadCatalog_Default(t *testing.T) {
	cat, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loadCatalog failed: %v", err)
	}
	if len(cat.Lessons) != 5 {
		t.Errorf("lessons = %d, want 5", len(cat.Lessons))
	}
}

func names(ls []*langtour.Lesson) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Name
	}
	return out
}

func TestCheckFlags(t *testing.T) {
	tests := []struct {
		name    string
		section int
		save    string
		verify  string
		trace   bool
		wantErr bool
	}{
		{"defaults", 0, "", "", false, false},
		{"section alone", 3, "", "", false, false},
		{"save with trace", 0, "out", "", true, false},
		{"save and verify", 0, "a", "b", false, true},
		{"negative section", -1, "", "", false, true},
		{"section with save", 3, "out", "", false, true},
		{"section with verify", 3, "", "out", false, true},
		{"section with trace", 3, "", "", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkFlags(tt.section, tt.save, tt.verify, tt.trace)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkFlags = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckSection(t *testing.T) {
	all := lessons.All()
	if err := checkSection(all, 3); err != nil {
		t.Errorf("section 3 exists in every lesson: %v", err)
	}
	// variables has ten sections, the others more.
	if err := checkSection(all, 11); err == nil {
		t.Error("expected error for a section missing from variables")
	}
}
