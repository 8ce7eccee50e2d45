package langtour

import (
	"context"
	"errors"
	"fmt"
	"io"
)

type SectionID int

// Step writes one demonstration through the printer.
type Step func(p *Printer)

// ---

type Section struct {
	ID    SectionID
	Title string
	Run   Step
}

// Lesson is an ordered list of numbered sections framed by a banner and a footer.
type Lesson struct {
	Name     string
	Banner   string
	Footer   string
	Spaced   bool // blank line between sections
	Sections []*Section

	byID map[SectionID]*Section
}

// Observer is notified as a lesson runs.
type Observer interface {
	SectionStarted(s *Section)
	SectionFinished(s *Section)
}

// OutlineEntry is one line of a lesson's table of contents.
type OutlineEntry struct {
	ID    SectionID
	Title string
}

//
// Public API
//

func NewLesson(name string, sections ...*Section) (*Lesson, error) {
	if name == "" {
		return nil, errors.New("lesson name is required")
	}
	if len(sections) == 0 {
		return nil, errors.New("no sections provided")
	}
	l := &Lesson{
		Name:     name,
		Sections: sections,
		byID:     make(map[SectionID]*Section, len(sections)),
	}

	// Build LUT.
	for _, s := range sections {
		if s == nil {
			return nil, errors.New("nil section")
		}
		if s.Run == nil {
			return nil, fmt.Errorf("section %d (%s) has no step", s.ID, s.Title)
		}
		if _, exists := l.byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate section ID %d", s.ID)
		}
		l.byID[s.ID] = s
	}

	return l, nil
}

// Run prints the whole lesson: banner, every section in order, footer.
func (l *Lesson) Run(ctx context.Context, w io.Writer) error {
	return l.RunObserved(ctx, w, nil)
}

// RunObserved is Run with an observer notified around each section.
// Separators are written outside the notifications.
func (l *Lesson) RunObserved(ctx context.Context, w io.Writer, obs Observer) error {
	p := NewPrinter(w)
	l.writeBanner(p)
	for i, s := range l.Sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 && l.Spaced {
			p.Println()
		}
		if obs != nil {
			obs.SectionStarted(s)
		}
		s.run(p)
		if err := p.Err(); err != nil {
			return fmt.Errorf("lesson %s section %d: %w", l.Name, s.ID, err)
		}
		if obs != nil {
			obs.SectionFinished(s)
		}
	}
	l.writeFooter(p)
	return p.Err()
}

// RunSection prints a single section without banner or footer.
func (l *Lesson) RunSection(ctx context.Context, w io.Writer, id SectionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s, ok := l.find(id)
	if !ok {
		return fmt.Errorf("lesson %s has no section %d", l.Name, id)
	}
	p := NewPrinter(w)
	s.run(p)
	return p.Err()
}

// Section looks a section up by ID.
func (l *Lesson) Section(id SectionID) (*Section, bool) {
	return l.find(id)
}

func (l *Lesson) Outline() []OutlineEntry {
	out := make([]OutlineEntry, 0, len(l.Sections))
	for _, s := range l.Sections {
		out = append(out, OutlineEntry{ID: s.ID, Title: s.Title})
	}
	return out
}

//
// Helper Functions (internal API)
//

// find falls back to a scan for lessons built as struct literals.
func (l *Lesson) find(id SectionID) (*Section, bool) {
	if l.byID != nil {
		s, ok := l.byID[id]
		return s, ok
	}
	for _, s := range l.Sections {
		if s != nil && s.ID == id {
			return s, true
		}
	}
	return nil, false
}

func (s *Section) run(p *Printer) {
	p.section = s.ID
	s.Run(p)
}

func (l *Lesson) writeBanner(p *Printer) {
	if l.Banner == "" {
		return
	}
	p.Println(l.Banner)
	p.Println()
}

func (l *Lesson) writeFooter(p *Printer) {
	if l.Footer == "" {
		return
	}
	p.Println()
	p.Println(l.Footer)
}
