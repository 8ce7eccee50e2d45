package controlflow

import (
	"reflect"
	"strings"
	"testing"

	"github.com/comalice/langtour/testutil"
)

func TestLessonGolden(t *testing.T) {
	testutil.AssertGolden(t, "controlflow", testutil.RunLesson(t, Lesson()))
}

func TestLabeledBreak(t *testing.T) {
	visited, stop := LabeledPairs(3)
	want := []Point{{1, 1}, {1, 2}, {1, 3}, {2, 1}}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
	if stop != (Point{2, 2}) {
		t.Errorf("stop = %v, want {2 2}", stop)
	}

	out := testutil.RunSection(t, Lesson(), testutil.SectionByTitle(t, Lesson(), "Loop labels"))
	if strings.Contains(out, "(2, 2) ") || strings.Contains(out, "(3, ") {
		t.Errorf("labeled break printed pairs past the break: %q", out)
	}
	if !strings.Contains(out, "   (2, 1)    Breaking outer loop at i=2, j=2\n") {
		t.Errorf("missing break report: %q", out)
	}
}

func TestGrade(t *testing.T) {
	tests := map[int]string{100: "A", 90: "A", 85: "B", 80: "B", 75: "C", 70: "C", 69: "F", 0: "F"}
	for score, want := range tests {
		if got := Grade(score); got != want {
			t.Errorf("Grade(%d) = %q, want %q", score, got, want)
		}
	}
}

func TestSwitchArms(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Spell(1)", Spell(1), "One"},
		{"Spell(2)", Spell(2), "Two"},
		{"Spell(3)", Spell(3), "Three"},
		{"Spell(9)", Spell(9), "Something else"},
		{"Size(1)", Size(1), "Small number"},
		{"Size(5)", Size(5), "Medium number"},
		{"Size(7)", Size(7), "Large number"},
		{"AgeGroup(5)", AgeGroup(5), "Child"},
		{"AgeGroup(12)", AgeGroup(12), "Child"},
		{"AgeGroup(13)", AgeGroup(13), "Teenager"},
		{"AgeGroup(25)", AgeGroup(25), "Adult"},
		{"AgeGroup(64)", AgeGroup(64), "Adult"},
		{"AgeGroup(65)", AgeGroup(65), "Senior"},
		{"AgeGroup(-1)", AgeGroup(-1), "Senior"},
		{"AgeWithValue(3)", AgeWithValue(3), "Child (age 3)"},
		{"AgeWithValue(15)", AgeWithValue(15), "Teenager (age 15)"},
		{"AgeWithValue(25)", AgeWithValue(25), "Adult (age 25)"},
		{"Locate(origin)", Locate(Point{0, 0}), "Origin"},
		{"Locate(y-axis)", Locate(Point{0, 7}), "On y-axis at y=7"},
		{"Locate(x-axis)", Locate(Point{4, 0}), "On x-axis at x=4"},
		{"Locate(3,5)", Locate(Point{3, 5}), "Point at (3, 5)"},
		{"Compare(4)", Compare(some(4)), "Less than 5: 4"},
		{"Compare(5)", Compare(some(5)), "Greater or equal to 5: 5"},
		{"Compare(nil)", Compare(nil), "None"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestPop(t *testing.T) {
	stack := []int{1, 2, 3}
	var popped []int
	for top, ok := Pop(&stack); ok; top, ok = Pop(&stack) {
		popped = append(popped, top)
	}
	if !reflect.DeepEqual(popped, []int{3, 2, 1}) {
		t.Errorf("popped %v", popped)
	}
	if len(stack) != 0 {
		t.Errorf("stack not drained: %v", stack)
	}
	if _, ok := Pop(&stack); ok {
		t.Error("Pop on empty stack reported a value")
	}
}
