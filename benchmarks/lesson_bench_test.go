// Package benchmarks provides performance benchmarks for lesson runs and transcript capture.
package benchmarks

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/comalice/langtour/internal/catalog"
	"github.com/comalice/langtour/internal/core"
	"github.com/comalice/langtour/internal/production"
	"github.com/comalice/langtour/lessons"
)

func BenchmarkAllLessons(b *testing.B) {
	all := lessons.All()
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, l := range all {
			if err := l.Run(ctx, io.Discard); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkFlatLesson(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("sections_%d", n), func(b *testing.B) {
			l := GenFlatLesson(n)
			ctx := context.Background()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := l.Run(ctx, io.Discard); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRunnerCapture(b *testing.B) {
	l := GenFlatLesson(100)
	r := core.NewRunner()
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := r.Run(ctx, l, io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPersisterSave(b *testing.B) {
	l := GenFlatLesson(100)
	for _, format := range []string{"json", "yaml"} {
		b.Run(format, func(b *testing.B) {
			p, err := production.NewPersister(format, b.TempDir())
			if err != nil {
				b.Fatal(err)
			}
			r := core.NewRunner(core.WithPersister(p))
			ctx := context.Background()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := r.Run(ctx, l, io.Discard); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCatalogParse(b *testing.B) {
	data := GenCatalogYAML(200)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := catalog.Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}
