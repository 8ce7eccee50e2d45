package production

import (
	"bytes"
	"fmt"

	"github.com/comalice/langtour"
)

// Edge represents a directed, labeled edge.
type Edge struct {
	From  string
	To    string
	Label string
}

// DefaultVisualizer renders lessons and state cycles as Graphviz DOT.
type DefaultVisualizer struct{}

// LessonDOT renders a lesson outline as a chain of numbered sections.
// The section with ID active, if any, is highlighted.
func (v *DefaultVisualizer) LessonDOT(l *langtour.Lesson, active langtour.SectionID) string {
	var buf bytes.Buffer
	writeHeader(&buf, "Lesson")
	buf.WriteString(fmt.Sprintf("  label=%q;\n", l.Name))

	outline := l.Outline()
	for _, e := range outline {
		style := ""
		if e.ID == active {
			style = ` style=filled fillcolor=lightgreen`
		}
		buf.WriteString(fmt.Sprintf("  \"s%d\" [label=%q%s];\n", e.ID, fmt.Sprintf("%d. %s", e.ID, e.Title), style))
	}
	for i := 1; i < len(outline); i++ {
		buf.WriteString(fmt.Sprintf("  \"s%d\" -> \"s%d\";\n", outline[i-1].ID, outline[i].ID))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// CycleDOT renders a state cycle such as one built by CycleEdges.
// The first edge's source is highlighted.
func (v *DefaultVisualizer) CycleDOT(name string, edges []Edge) string {
	var buf bytes.Buffer
	writeHeader(&buf, "Cycle")
	buf.WriteString(fmt.Sprintf("  label=%q;\n", name))

	for i, e := range edges {
		style := ""
		if i == 0 {
			style = ` style=filled fillcolor=orange`
		}
		buf.WriteString(fmt.Sprintf("  %q [label=%q%s];\n", e.From, e.From, style))
	}
	for _, e := range edges {
		buf.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", e.From, e.To, e.Label))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// CycleEdges walks start, next(start), ... until a state repeats and returns
// one edge per step, labeled with event.
func CycleEdges[S comparable](start S, next func(S) S, event string) []Edge {
	var edges []Edge
	seen := map[S]bool{}
	for s := start; !seen[s]; s = next(s) {
		seen[s] = true
		n := next(s)
		edges = append(edges, Edge{From: fmt.Sprint(s), To: fmt.Sprint(n), Label: event})
	}
	return edges
}

func writeHeader(buf *bytes.Buffer, graph string) {
	buf.WriteString(fmt.Sprintf(`digraph %s {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`, graph))
}
