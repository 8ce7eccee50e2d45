package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/comalice/langtour"
)

// Runner runs lessons, captures per-section output into transcripts and
// hands them to the configured persister and publisher.
type Runner struct {
	persister Persister
	publisher Publisher
	version   string
	now       func() time.Time
}

// NewRunner creates a Runner. Without options it only prints.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{now: time.Now}

	// Apply functional options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run prints the lesson to w and returns its transcript, saving it when a
// persister is configured.
func (r *Runner) Run(ctx context.Context, l *langtour.Lesson, w io.Writer) (Transcript, error) {
	t, err := r.record(ctx, l, w)
	if err != nil {
		return t, err
	}
	if r.persister != nil {
		if err := r.persister.Save(ctx, t); err != nil {
			return t, fmt.Errorf("save transcript %s: %w", l.Name, err)
		}
	}
	return t, nil
}

// Verify re-runs the lesson silently and compares it with the saved transcript.
func (r *Runner) Verify(ctx context.Context, l *langtour.Lesson) error {
	if r.persister == nil {
		return errors.New("verify: no persister configured")
	}
	saved, err := r.persister.Load(ctx, l.Name)
	if err != nil {
		return fmt.Errorf("verify %s: %w", l.Name, err)
	}
	fresh, err := r.record(ctx, l, io.Discard)
	if err != nil {
		return fmt.Errorf("verify %s: %w", l.Name, err)
	}
	return Compare(saved, fresh)
}

// Compare reports the first section where two transcripts differ.
func Compare(want, got Transcript) error {
	if len(want.Sections) != len(got.Sections) {
		return fmt.Errorf("%s: %d sections, transcript has %d: %w",
			got.Lesson, len(got.Sections), len(want.Sections), ErrMismatch)
	}
	for i := range want.Sections {
		w, g := want.Sections[i], got.Sections[i]
		if w.ID != g.ID || w.Output != g.Output {
			return fmt.Errorf("%s section %d (%s): got %q, want %q: %w",
				got.Lesson, g.ID, g.Title, firstLine(g.Output, w.Output), firstLine(w.Output, g.Output), ErrMismatch)
		}
	}
	return nil
}

//
// Helper Functions (internal API)
//

func (r *Runner) record(ctx context.Context, l *langtour.Lesson, w io.Writer) (Transcript, error) {
	rec := &recorder{
		ctx:    ctx,
		w:      w,
		lesson: l.Name,
		pub:    r.publisher,
		now:    r.now,
	}
	t := Transcript{Lesson: l.Name, Version: r.version, SavedAt: r.now().UTC()}
	if err := l.RunObserved(ctx, rec, rec); err != nil {
		return t, err
	}
	if rec.pubErr != nil {
		return t, fmt.Errorf("publish: %w", rec.pubErr)
	}
	t.Sections = rec.sections
	return t, nil
}

// recorder tees lesson output to the destination while slicing it per section.
type recorder struct {
	ctx    context.Context
	w      io.Writer
	buf    bytes.Buffer
	mark   int
	start  time.Time
	lesson string
	pub    Publisher
	pubErr error
	now    func() time.Time

	sections []SectionOutput
}

func (rec *recorder) Write(p []byte) (int, error) {
	rec.buf.Write(p)
	return rec.w.Write(p)
}

func (rec *recorder) SectionStarted(s *langtour.Section) {
	rec.mark = rec.buf.Len()
	rec.start = rec.now()
}

func (rec *recorder) SectionFinished(s *langtour.Section) {
	out := rec.buf.String()[rec.mark:]
	rec.sections = append(rec.sections, SectionOutput{ID: s.ID, Title: s.Title, Output: out})
	if rec.pub == nil || rec.pubErr != nil {
		return
	}
	rec.pubErr = rec.pub.Publish(rec.ctx, SectionEvent{
		Lesson:  rec.lesson,
		Section: s.ID,
		Title:   s.Title,
		Bytes:   len(out),
		Elapsed: rec.now().Sub(rec.start),
	})
}

// firstLine returns the first line of a that differs from b.
func firstLine(a, b string) string {
	al := strings.Split(a, "\n")
	bl := strings.Split(b, "\n")
	for i, line := range al {
		if i >= len(bl) || line != bl[i] {
			return line
		}
	}
	return ""
}
