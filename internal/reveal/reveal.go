// Package reveal implements the viewport entry animator: watched elements
// start hidden and slide up into place the first time they scroll into view,
// staggered within each observation batch. Each element reveals exactly once.
package reveal

import (
	"errors"
	"fmt"
	"time"

	"github.com/renmarsh/pagefx/internal/dom"
	"github.com/renmarsh/pagefx/internal/observe"
	"github.com/renmarsh/pagefx/internal/sched"
)

type Config struct {
	// Threshold is the visible fraction of an element that triggers reveal.
	Threshold float64
	// BottomMargin shrinks the trigger zone at the viewport bottom (px,
	// negative values pull the edge up).
	BottomMargin float64
	// Stagger separates reveals scheduled from the same batch.
	Stagger time.Duration
	// Duration and Easing shape the opacity/transform transition.
	Duration float64
	Easing   string
	// OffsetPx is the initial downward translation of hidden elements.
	OffsetPx float64
}

func DefaultConfig() Config {
	return Config{
		Threshold:    0.1,
		BottomMargin: -50,
		Stagger:      100 * time.Millisecond,
		Duration:     0.5,
		Easing:       "ease",
		OffsetPx:     20,
	}
}

type Animator struct {
	doc     dom.Document
	factory observe.Factory
	sched   sched.Scheduler
	cfg     Config
}

func New(doc dom.Document, factory observe.Factory, s sched.Scheduler, cfg Config) *Animator {
	return &Animator{doc: doc, factory: factory, sched: s, cfg: cfg}
}

// Handle owns a running animator's observer. Stop disconnects it; elements
// already revealed stay revealed, pending stagger timers still fire.
type Handle struct {
	obs     observe.Observer
	stopped bool
}

func (h *Handle) Stop() {
	if h == nil || h.stopped {
		return
	}
	h.stopped = true
	if h.obs != nil {
		h.obs.Disconnect()
	}
}

// Start collects elements matching selectors, in selector then document
// order, primes them hidden, and observes each until its first intersection.
//
// With no matching elements Start is a no-op and touches nothing. When the
// environment has no intersection capability every element is made visible
// immediately, without animation, so content is never unreachable.
func (a *Animator) Start(selectors ...string) (*Handle, error) {
	var elems []dom.Element
	seen := make(map[dom.Element]bool)
	for _, sel := range selectors {
		for _, el := range a.doc.FindAll(sel) {
			if !seen[el] {
				seen[el] = true
				elems = append(elems, el)
			}
		}
	}
	if len(elems) == 0 {
		return &Handle{}, nil
	}

	revealed := make(map[dom.Element]bool, len(elems))
	var obs observe.Observer
	cb := func(entries []observe.Entry) {
		batch := 0
		for _, e := range entries {
			if !e.Intersecting || revealed[e.Element] {
				continue
			}
			revealed[e.Element] = true
			el := e.Element
			a.sched.AfterFunc(time.Duration(batch)*a.cfg.Stagger, func() {
				el.SetStyle(dom.Style{
					"opacity":   "1",
					"transform": "translateY(0)",
				})
			})
			// One-shot: once a reveal is scheduled the element must never
			// trigger again, even if it leaves and re-enters the viewport.
			obs.Unobserve(el)
			batch++
		}
	}

	var err error
	obs, err = a.factory(cb, observe.Options{
		Threshold:    a.cfg.Threshold,
		BottomMargin: a.cfg.BottomMargin,
	})
	if err != nil {
		if errors.Is(err, observe.ErrUnsupported) {
			for _, el := range elems {
				el.SetStyle(dom.Style{"opacity": "1", "transform": "none"})
			}
			return &Handle{}, nil
		}
		return nil, fmt.Errorf("reveal: %w", err)
	}

	transition := fmt.Sprintf("opacity %gs %s, transform %gs %s",
		a.cfg.Duration, a.cfg.Easing, a.cfg.Duration, a.cfg.Easing)
	for _, el := range elems {
		el.SetStyle(dom.Style{
			"opacity":    "0",
			"transform":  fmt.Sprintf("translateY(%gpx)", a.cfg.OffsetPx),
			"transition": transition,
		})
		obs.Observe(el)
	}

	return &Handle{obs: obs}, nil
}
