// Package viz renders reveal schedules as terminal charts.
package viz

import (
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
)

// Event is one scheduled reveal.
type Event struct {
	Index int // global element index
	Batch int // which observation batch produced it
	At    time.Duration
}

// Events expands a sequence of batch sizes into reveal events: batch b
// arrives at b*step and staggers its members internally.
func Events(batches []int, stagger, step time.Duration) []Event {
	var events []Event
	idx := 0
	for b, n := range batches {
		base := time.Duration(b) * step
		for k := 0; k < n; k++ {
			events = append(events, Event{
				Index: idx,
				Batch: b,
				At:    base + time.Duration(k)*stagger,
			})
			idx++
		}
	}
	return events
}

// Timeline charts cumulative revealed elements over time.
func Timeline(batches []int, stagger, step time.Duration, height int) string {
	events := Events(batches, stagger, step)
	if len(events) == 0 {
		return ""
	}

	end := time.Duration(0)
	for _, e := range events {
		if e.At > end {
			end = e.At
		}
	}
	end += stagger

	res := stagger
	if res <= 0 {
		res = step
	}
	if res <= 0 {
		res = 10 * time.Millisecond
	}

	series := make([]float64, 0, int(end/res)+1)
	for t := time.Duration(0); t <= end; t += res {
		n := 0
		for _, e := range events {
			if e.At <= t {
				n++
			}
		}
		series = append(series, float64(n))
	}

	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("revealed elements over %v (%d total)", end, len(events))),
	)
}
