package langtour

import (
	"errors"
	"fmt"
)

// LessonBuilder provides a fluent API for constructing lessons from titled steps
// instead of manual Section struct creation. IDs are assigned in declaration order.
type LessonBuilder struct {
	nextID    SectionID
	titleToID map[string]SectionID
	sections  []*Section
	lesson    *Lesson
	err       error
}

// NewLessonBuilder creates a new builder for the named lesson.
func NewLessonBuilder(name string) *LessonBuilder {
	return &LessonBuilder{
		nextID:    1, // Sections are numbered from one
		titleToID: make(map[string]SectionID),
		lesson:    &Lesson{Name: name},
	}
}

// Banner sets the line printed before the first section.
func (b *LessonBuilder) Banner(s string) *LessonBuilder {
	b.lesson.Banner = s
	return b
}

// Footer sets the line printed after the last section.
func (b *LessonBuilder) Footer(s string) *LessonBuilder {
	b.lesson.Footer = s
	return b
}

// Spaced separates sections with a blank line.
func (b *LessonBuilder) Spaced() *LessonBuilder {
	b.lesson.Spaced = true
	return b
}

// Section appends a step under the next sequential ID.
func (b *LessonBuilder) Section(title string, step Step) *LessonBuilder {
	if b.err != nil {
		return b
	}
	if title == "" {
		b.err = fmt.Errorf("section %d: title is required", b.nextID)
		return b
	}
	if id, exists := b.titleToID[title]; exists {
		b.err = fmt.Errorf("section %q already declared as %d", title, id)
		return b
	}

	id := b.nextID
	b.nextID++
	b.titleToID[title] = id
	b.sections = append(b.sections, &Section{ID: id, Title: title, Run: step})
	return b
}

// GetID returns the assigned SectionID for a title.
// Returns 0 if the title hasn't been registered.
func (b *LessonBuilder) GetID(title string) SectionID {
	return b.titleToID[title]
}

// Build validates the lesson and constructs it.
func (b *LessonBuilder) Build() (*Lesson, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.lesson.Banner == "" {
		return nil, errors.New("lesson banner is required")
	}

	// Use existing NewLesson (tested)
	l, err := NewLesson(b.lesson.Name, b.sections...)
	if err != nil {
		return nil, err
	}
	l.Banner = b.lesson.Banner
	l.Footer = b.lesson.Footer
	l.Spaced = b.lesson.Spaced
	return l, nil
}

// MustBuild is Build for lessons declared in code; it panics on an invalid lesson.
func (b *LessonBuilder) MustBuild() *Lesson {
	l, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("langtour: %v", err))
	}
	return l
}
