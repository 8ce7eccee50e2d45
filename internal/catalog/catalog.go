package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog lists the lessons a tour runs, in order.
type Catalog struct {
	Version string         `json:"version,omitempty" yaml:"version,omitempty"`
	Lessons []*LessonEntry `json:"lessons" yaml:"lessons"`
}

// LessonEntry configures one lesson. Empty Banner and Footer keep the lesson's own.
type LessonEntry struct {
	ID      string `json:"id" yaml:"id"`
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Banner  string `json:"banner,omitempty" yaml:"banner,omitempty"`
	Footer  string `json:"footer,omitempty" yaml:"footer,omitempty"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// Load reads and validates a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalog is non-empty and every entry has a unique ID.
func (c *Catalog) Validate() error {
	if len(c.Lessons) == 0 {
		return errors.New("lessons list is required and cannot be empty")
	}
	seen := make(map[string]bool, len(c.Lessons))
	for i, l := range c.Lessons {
		if l == nil {
			return fmt.Errorf("lesson %d is empty", i)
		}
		if err := l.Validate(); err != nil {
			return fmt.Errorf("lesson %d: %w", i, err)
		}
		if seen[l.ID] {
			return fmt.Errorf("duplicate lesson %q", l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}

func (l *LessonEntry) Validate() error {
	if l.ID == "" {
		return errors.New("lesson ID is required")
	}
	return nil
}

// Find returns the entry for id.
func (c *Catalog) Find(id string) (*LessonEntry, bool) {
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// IDs returns lesson IDs in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Lessons))
	for i, l := range c.Lessons {
		ids[i] = l.ID
	}
	return ids
}
