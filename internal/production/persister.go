// Package production provides production integrations: transcript persistence,
// event publishing, visualization.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/comalice/langtour/internal/core"
)

// JSONPersister is a stdlib-only file-based persister using JSON serialization.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, t core.Transcript) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(p.dir, t.Lesson+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (p *JSONPersister) Load(ctx context.Context, lesson string) (core.Transcript, error) {
	fn := filepath.Join(p.dir, lesson+".json")
	data, err := readTranscript(fn, lesson)
	if err != nil {
		return core.Transcript{}, err
	}

	var t core.Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return core.Transcript{}, fmt.Errorf("json unmarshal: %w", err)
	}

	return checkTranscript(fn, lesson, t)
}

// YAMLPersister is a file-based persister using YAML serialization for transcripts.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, t core.Transcript) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(p.dir, t.Lesson+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (p *YAMLPersister) Load(ctx context.Context, lesson string) (core.Transcript, error) {
	fn := filepath.Join(p.dir, lesson+".yaml")
	data, err := readTranscript(fn, lesson)
	if err != nil {
		return core.Transcript{}, err
	}

	var t core.Transcript
	if err := yaml.Unmarshal(data, &t); err != nil {
		return core.Transcript{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	return checkTranscript(fn, lesson, t)
}

// NewPersister picks a persister by format name: "json" or "yaml".
func NewPersister(format, dir string) (core.Persister, error) {
	switch format {
	case "json":
		return NewJSONPersister(dir)
	case "yaml", "yml":
		return NewYAMLPersister(dir)
	default:
		return nil, fmt.Errorf("unknown transcript format %q", format)
	}
}

func readTranscript(fn, lesson string) ([]byte, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("lesson %q: %w", lesson, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}

// checkTranscript applies the same rules to a decoded transcript whatever its format.
func checkTranscript(fn, lesson string, t core.Transcript) (core.Transcript, error) {
	t.Lesson = lesson // Ensure name
	if len(t.Sections) == 0 {
		return core.Transcript{}, fmt.Errorf("transcript %s has no sections", fn)
	}
	return t, nil
}
