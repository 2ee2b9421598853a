// Package sched provides the cooperative scheduler the motion engines defer
// work onto. Nothing here spawns goroutines: the owner of a Loop advances
// virtual time and the loop runs whatever came due, which keeps stagger
// timers and frame callbacks deterministic under test.
package sched

import "time"

type Scheduler interface {
	// AfterFunc runs fn once d has elapsed on the loop's clock.
	AfterFunc(d time.Duration, fn func())
	// NextFrame runs fn at the start of the next advance, before timers.
	NextFrame(fn func())
}

type timer struct {
	due time.Duration
	seq int
	fn  func()
}

// Loop is a single-goroutine Scheduler advanced by its owner (a test, or the
// demo's tick handler).
type Loop struct {
	now    time.Duration
	seq    int
	timers []timer
	frame  []func()
}

func NewLoop() *Loop { return &Loop{} }

func (l *Loop) Now() time.Duration { return l.now }

func (l *Loop) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	l.seq++
	l.timers = append(l.timers, timer{due: l.now + d, seq: l.seq, fn: fn})
}

func (l *Loop) NextFrame(fn func()) {
	l.frame = append(l.frame, fn)
}

// Pending reports how many timers have not fired yet.
func (l *Loop) Pending() int { return len(l.timers) + len(l.frame) }

// Advance moves the clock forward by d. Frame callbacks registered before the
// call run first, then timers fire in due order (FIFO on ties). Work
// scheduled while advancing runs in the same call if it lands within the
// window, otherwise it waits for a later advance.
func (l *Loop) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := l.now + d

	frames := l.frame
	l.frame = nil
	for _, fn := range frames {
		fn()
	}

	for {
		idx := -1
		for i, t := range l.timers {
			if t.due > target {
				continue
			}
			if idx < 0 || t.due < l.timers[idx].due ||
				(t.due == l.timers[idx].due && t.seq < l.timers[idx].seq) {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		next := l.timers[idx]
		l.timers = append(l.timers[:idx], l.timers[idx+1:]...)
		l.now = next.due
		next.fn()
	}

	l.now = target
}
