// Tests for ChannelPublisher delivery and backpressure.
package production

import (
	"context"
	"io"
	"testing"

	"github.com/comalice/langtour/internal/core"
)

func TestChannelPublisher_Delivers(t *testing.T) {
	ch := make(chan core.SectionEvent, 2)
	p := NewChannelPublisher(ch)

	ev := core.SectionEvent{Lesson: "enums", Section: 3, Title: "Enum methods", Bytes: 42}
	if err := p.Publish(context.Background(), ev); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	got := <-ch
	if got != ev {
		t.Errorf("got %+v, want %+v", got, ev)
	}
}

func TestChannelPublisher_DropsWhenFull(t *testing.T) {
	ch := make(chan core.SectionEvent, 1)
	p := NewChannelPublisher(ch)

	for i := 1; i <= 3; i++ {
		if err := p.Publish(context.Background(), core.SectionEvent{Section: 1}); err != nil {
			t.Fatalf("Publish %d failed: %v", i, err)
		}
	}
	if len(ch) != 1 {
		t.Errorf("buffered events = %d, want 1", len(ch))
	}
}

func TestChannelPublisher_Close(t *testing.T) {
	ch := make(chan core.SectionEvent)
	p := NewChannelPublisher(ch)
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Error("channel still open after Close")
	}
}

func TestChannelPublisher_WithRunner(t *testing.T) {
	ch := make(chan core.SectionEvent, 16)
	pub := NewChannelPublisher(ch)
	r := core.NewRunner(core.WithPublisher(pub))

	l := twoSectionLesson(t)
	if _, err := r.Run(context.Background(), l, io.Discard); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	pub.Close()

	var titles []string
	for ev := range ch {
		if ev.Lesson != "demo" {
			t.Errorf("event lesson = %q, want demo", ev.Lesson)
		}
		titles = append(titles, ev.Title)
	}
	if len(titles) != 2 || titles[0] != "First" || titles[1] != "Second" {
		t.Errorf("titles = %v, want [First Second]", titles)
	}
}
