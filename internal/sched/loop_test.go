package sched

import (
	"testing"
	"time"
)

func TestAfterFuncOrder(t *testing.T) {
	l := NewLoop()

	var order []string
	l.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })
	l.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	l.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })

	l.Advance(time.Second)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("expected a,b,c in due order, got %v", order)
	}
}

func TestAfterFuncTieIsFIFO(t *testing.T) {
	l := NewLoop()

	var order []int
	for i := 0; i < 4; i++ {
		i := i
		l.AfterFunc(50*time.Millisecond, func() { order = append(order, i) })
	}
	l.Advance(50 * time.Millisecond)

	for i, got := range order {
		if got != i {
			t.Fatalf("tied timers fired out of schedule order: %v", order)
		}
	}
}

func TestAdvancePartial(t *testing.T) {
	l := NewLoop()

	fired := 0
	l.AfterFunc(100*time.Millisecond, func() { fired++ })
	l.AfterFunc(500*time.Millisecond, func() { fired++ })

	l.Advance(200 * time.Millisecond)
	if fired != 1 {
		t.Errorf("expected 1 timer after 200ms, got %d", fired)
	}
	if l.Pending() != 1 {
		t.Errorf("expected 1 pending timer, got %d", l.Pending())
	}

	l.Advance(300 * time.Millisecond)
	if fired != 2 {
		t.Errorf("expected both timers after 500ms, got %d", fired)
	}
}

func TestNextFrameRunsBeforeTimers(t *testing.T) {
	l := NewLoop()

	var order []string
	l.AfterFunc(0, func() { order = append(order, "timer") })
	l.NextFrame(func() { order = append(order, "frame") })

	l.Advance(0)

	if len(order) != 2 || order[0] != "frame" || order[1] != "timer" {
		t.Errorf("expected frame before timer, got %v", order)
	}
}

func TestNextFrameDuringFrameDefers(t *testing.T) {
	l := NewLoop()

	ran := 0
	l.NextFrame(func() {
		l.NextFrame(func() { ran++ })
	})

	l.Advance(0)
	if ran != 0 {
		t.Error("nested frame callback should wait for the next advance")
	}
	l.Advance(0)
	if ran != 1 {
		t.Errorf("nested frame callback should run on the following advance, ran=%d", ran)
	}
}

func TestTimerScheduledDuringAdvance(t *testing.T) {
	l := NewLoop()

	var at []time.Duration
	l.AfterFunc(100*time.Millisecond, func() {
		at = append(at, l.Now())
		l.AfterFunc(100*time.Millisecond, func() { at = append(at, l.Now()) })
	})

	l.Advance(time.Second)

	if len(at) != 2 {
		t.Fatalf("expected chained timer to fire within the window, got %d firings", len(at))
	}
	if at[0] != 100*time.Millisecond || at[1] != 200*time.Millisecond {
		t.Errorf("expected firings at 100ms and 200ms, got %v", at)
	}
}

func TestNowTracksAdvance(t *testing.T) {
	l := NewLoop()
	l.Advance(250 * time.Millisecond)
	l.Advance(250 * time.Millisecond)
	if l.Now() != 500*time.Millisecond {
		t.Errorf("expected clock at 500ms, got %v", l.Now())
	}
}
