// Package catalog provides the lesson catalog: which lessons the tour offers,
// in what order, with their summaries and optional banner overrides.
//
// The catalog is plain data loaded from YAML (an embedded default ships with
// the binary) and carries JSON tags so it hashes deterministically for
// versioning transcripts.
package catalog
