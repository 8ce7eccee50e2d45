package core

import "time"

// WithPersister configures the Runner to save a transcript after every run.
func WithPersister(p Persister) Option {
	return func(r *Runner) {
		r.persister = p
	}
}

// WithPublisher configures the Runner with an event publisher.
func WithPublisher(pb Publisher) Option {
	return func(r *Runner) {
		r.publisher = pb
	}
}

// WithVersion stamps transcripts with a catalog version.
func WithVersion(v string) Option {
	return func(r *Runner) {
		r.version = v
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}
