// Command tour runs the language tour lessons listed in the catalog.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/comalice/langtour"
	"github.com/comalice/langtour/internal/catalog"
	"github.com/comalice/langtour/internal/core"
	"github.com/comalice/langtour/internal/extensibility"
	"github.com/comalice/langtour/internal/production"
	"github.com/comalice/langtour/lessons"
	"github.com/comalice/langtour/lessons/enums"
)

func main() {
	var (
		list    = flag.Bool("list", false, "print lesson ids and summaries")
		config  = flag.String("config", "", "load a YAML catalog instead of the embedded one")
		section = flag.Int("section", 0, "run only this section of each lesson")
		saveDir = flag.String("save", "", "persist a transcript per lesson into `dir`")
		verDir  = flag.String("verify", "", "compare each lesson with the transcript saved in `dir`")
		format  = flag.String("format", "yaml", "transcript format: json or yaml")
		dot     = flag.Bool("dot", false, "print a Graphviz outline of each lesson instead of running it")
		states  = flag.Bool("states", false, "print the traffic-light cycle as Graphviz")
		trace   = flag.Bool("trace", false, "log section timings to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: tour [flags] [lesson...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("tour: ")

	if err := checkFlags(*section, *saveDir, *verDir, *trace); err != nil {
		log.Fatalf("%v", err)
	}

	cat, err := loadCatalog(*config)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *list {
		for _, e := range cat.Lessons {
			fmt.Printf("%-12s %s\n", e.ID, e.Summary)
		}
		return
	}

	viz := &production.DefaultVisualizer{}
	if *states {
		fmt.Print(viz.CycleDOT("TrafficLight", production.CycleEdges(enums.Red, enums.TrafficLight.Next, "next")))
		return
	}

	reg, err := core.NewRegistry(lessons.All()...)
	if err != nil {
		log.Fatalf("%v", err)
	}
	resolved, err := reg.Resolve(cat)
	if err != nil {
		log.Fatalf("%v", err)
	}
	selected, err := selectLessons(resolved, flag.Args())
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *section > 0 {
		if err := checkSection(selected, langtour.SectionID(*section)); err != nil {
			log.Fatalf("%v", err)
		}
	}

	if *dot {
		for _, l := range selected {
			fmt.Print(viz.LessonDOT(l, langtour.SectionID(*section)))
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *section > 0 {
		for _, l := range selected {
			if err := l.RunSection(ctx, os.Stdout, langtour.SectionID(*section)); err != nil {
				log.Fatalf("%v", err)
			}
		}
		return
	}

	opts := []core.Option{core.WithVersion(catalog.ComputeVersion(cat))}
	dir := *saveDir
	if *verDir != "" {
		dir = *verDir
	}
	if dir != "" {
		persister, err := production.NewPersister(*format, dir)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if *trace {
			persister = extensibility.NewLoggingPersister(persister, nil)
		}
		opts = append(opts, core.WithPersister(persister))
	}

	var wg sync.WaitGroup
	if *trace {
		events := make(chan core.SectionEvent, 64)
		publisher := production.NewChannelPublisher(events)
		opts = append(opts, core.WithPublisher(publisher))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ev := range events {
				log.Printf("%s %d %q: %d bytes in %v", ev.Lesson, ev.Section, ev.Title, ev.Bytes, ev.Elapsed)
			}
		}()
		defer func() {
			publisher.Close()
			wg.Wait()
		}()
	}
	runner := core.NewRunner(opts...)

	if *verDir != "" {
		failed := 0
		for _, l := range selected {
			if err := runner.Verify(ctx, l); err != nil {
				log.Printf("FAIL %v", err)
				failed++
				continue
			}
			fmt.Printf("ok   %s\n", l.Name)
		}
		if failed > 0 {
			log.Fatalf("%d of %d lessons differ from their transcripts", failed, len(selected))
		}
		return
	}

	for i, l := range selected {
		if i > 0 {
			fmt.Println()
		}
		if _, err := runner.Run(ctx, l, os.Stdout); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// checkFlags rejects flag combinations where one flag would be silently ignored.
func checkFlags(section int, saveDir, verifyDir string, trace bool) error {
	if saveDir != "" && verifyDir != "" {
		return errors.New("-save and -verify are mutually exclusive")
	}
	if section < 0 {
		return fmt.Errorf("-section %d: sections are numbered from 1", section)
	}
	if section > 0 && (saveDir != "" || verifyDir != "" || trace) {
		return errors.New("-section cannot be combined with -save, -verify or -trace")
	}
	return nil
}

// checkSection makes sure every selected lesson has section id.
func checkSection(selected []*langtour.Lesson, id langtour.SectionID) error {
	for _, l := range selected {
		if _, ok := l.Section(id); !ok {
			return fmt.Errorf("lesson %s has no section %d (it has %d)", l.Name, id, len(l.Sections))
		}
	}
	return nil
}

// selectLessons keeps the named lessons in argument order, or all of them.
func selectLessons(all []*langtour.Lesson, names []string) ([]*langtour.Lesson, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]*langtour.Lesson, len(all))
	for _, l := range all {
		byName[l.Name] = l
	}
	out := make([]*langtour.Lesson, 0, len(names))
	for _, n := range names {
		l, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("lesson %q: %w", n, core.ErrNotFound)
		}
		out = append(out, l)
	}
	return out, nil
}
