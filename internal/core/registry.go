package core

import (
	"fmt"

	"github.com/comalice/langtour"
	"github.com/comalice/langtour/internal/catalog"
)

// Registry holds lessons by name, preserving registration order.
type Registry struct {
	lessons map[string]*langtour.Lesson
	order   []string
}

func NewRegistry(lessons ...*langtour.Lesson) (*Registry, error) {
	r := &Registry{lessons: make(map[string]*langtour.Lesson, len(lessons))}
	for _, l := range lessons {
		if err := r.Register(l); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(l *langtour.Lesson) error {
	if l == nil {
		return fmt.Errorf("register: nil lesson")
	}
	if _, exists := r.lessons[l.Name]; exists {
		return fmt.Errorf("register %q: %w", l.Name, ErrExists)
	}
	r.lessons[l.Name] = l
	r.order = append(r.order, l.Name)
	return nil
}

func (r *Registry) Lookup(name string) (*langtour.Lesson, error) {
	l, ok := r.lessons[name]
	if !ok {
		return nil, fmt.Errorf("lesson %q: %w", name, ErrNotFound)
	}
	return l, nil
}

// Names returns lesson names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Resolve returns the catalog's lessons in catalog order, with banner and
// footer overrides applied to copies so registered lessons stay untouched.
func (r *Registry) Resolve(c *catalog.Catalog) ([]*langtour.Lesson, error) {
	out := make([]*langtour.Lesson, 0, len(c.Lessons))
	for _, entry := range c.Lessons {
		l, err := r.Lookup(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if entry.Banner != "" || entry.Footer != "" {
			cp := *l
			if entry.Banner != "" {
				cp.Banner = entry.Banner
			}
			if entry.Footer != "" {
				cp.Footer = entry.Footer
			}
			l = &cp
		}
		out = append(out, l)
	}
	return out, nil
}
