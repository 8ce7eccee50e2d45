// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/langtour"
	"github.com/comalice/langtour/internal/catalog"
)

// GenFlatLesson creates a spaced lesson with n sections, each printing one line.
func GenFlatLesson(n int) *langtour.Lesson {
	if n < 1 {
		n = 1
	}
	b := langtour.NewLessonBuilder(fmt.Sprintf("flat_%d", n)).
		Banner(fmt.Sprintf("=== flat %d ===", n)).
		Footer("=== end ===").
		Spaced()
	for i := 0; i < n; i++ {
		b.Section(fmt.Sprintf("section %d", i), func(p *langtour.Printer) {
			p.Header("value = %d", i)
		})
	}
	return b.MustBuild()
}

// GenCatalogYAML marshals a catalog of n lessons with banner overrides.
func GenCatalogYAML(n int) []byte {
	if n < 1 {
		n = 1
	}
	c := catalog.Catalog{Version: "bench"}
	for i := 0; i < n; i++ {
		c.Lessons = append(c.Lessons, &catalog.LessonEntry{
			ID:      fmt.Sprintf("lesson_%d", i),
			Summary: "generated",
			Banner:  fmt.Sprintf("=== lesson %d ===", i),
		})
	}
	data, err := yaml.Marshal(&c)
	if err != nil {
		panic(err)
	}
	return data
}
