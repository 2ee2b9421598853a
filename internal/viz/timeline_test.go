package viz

import (
	"strings"
	"testing"
	"time"
)

func TestEvents(t *testing.T) {
	events := Events([]int{3, 2}, 100*time.Millisecond, time.Second)

	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}

	want := []time.Duration{
		0,
		100 * time.Millisecond,
		200 * time.Millisecond,
		time.Second,
		time.Second + 100*time.Millisecond,
	}
	for i, e := range events {
		if e.At != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], e.At)
		}
	}
	if events[3].Batch != 1 {
		t.Errorf("expected event 3 in batch 1, got %d", events[3].Batch)
	}
}

func TestTimeline(t *testing.T) {
	out := Timeline([]int{4, 3}, 100*time.Millisecond, 800*time.Millisecond, 8)

	if out == "" {
		t.Fatal("expected a chart")
	}
	if !strings.Contains(out, "7 total") {
		t.Errorf("caption should mention the element count:\n%s", out)
	}
}

func TestTimelineEmpty(t *testing.T) {
	if out := Timeline(nil, 100*time.Millisecond, time.Second, 8); out != "" {
		t.Errorf("expected empty chart for no batches, got %q", out)
	}
}
