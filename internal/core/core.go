// Package core provides the runtime tier of the tour: the lesson registry,
// the Runner that captures transcripts, and the pluggable persistence and
// publishing interfaces implemented in internal/production.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/comalice/langtour"
)

var (
	ErrNotFound = errors.New("lesson not found")
	ErrExists   = errors.New("lesson already registered")
	ErrMismatch = errors.New("output does not match transcript")
)

// Persister stores transcripts by lesson name.
type Persister interface {
	Save(ctx context.Context, t Transcript) error
	Load(ctx context.Context, lesson string) (Transcript, error)
}

// Publisher receives one event per finished section.
type Publisher interface {
	Publish(ctx context.Context, event SectionEvent) error
	Close() error
}

// Transcript is the serializable record of one lesson run.
type Transcript struct {
	Lesson   string          `json:"lesson" yaml:"lesson"`
	Version  string          `json:"version,omitempty" yaml:"version,omitempty"`
	SavedAt  time.Time       `json:"saved_at" yaml:"saved_at"`
	Sections []SectionOutput `json:"sections" yaml:"sections"`
}

// SectionOutput is what a single section printed.
type SectionOutput struct {
	ID     langtour.SectionID `json:"id" yaml:"id"`
	Title  string             `json:"title" yaml:"title"`
	Output string             `json:"output" yaml:"output"`
}

// SectionEvent describes a finished section.
type SectionEvent struct {
	Lesson  string             `json:"lesson" yaml:"lesson"`
	Section langtour.SectionID `json:"section" yaml:"section"`
	Title   string             `json:"title" yaml:"title"`
	Bytes   int                `json:"bytes" yaml:"bytes"`
	Elapsed time.Duration      `json:"elapsed" yaml:"elapsed"`
}

// Option applies configuration to Runner via functional options pattern.
type Option func(*Runner)
