// Package observe reports viewport intersection for watched elements. The
// consumer supplies a Factory; environments without intersection support
// return ErrUnsupported and callers pick a degrade policy.
package observe

import (
	"errors"

	"github.com/renmarsh/pagefx/internal/dom"
)

var ErrUnsupported = errors.New("observe: intersection observation not supported")

// Entry describes one element whose intersection state changed.
type Entry struct {
	Element      dom.Element
	Ratio        float64
	Intersecting bool
}

// Callback receives one batch per sweep, in observation order.
type Callback func(entries []Entry)

type Options struct {
	// Threshold is the visible fraction of an element required to count as
	// intersecting.
	Threshold float64
	// BottomMargin adjusts the bottom edge of the trigger zone in px; a
	// negative value shrinks it so elements trigger before fully entering.
	BottomMargin float64
}

func DefaultOptions() Options {
	return Options{Threshold: 0.1, BottomMargin: -50}
}

type Observer interface {
	Observe(el dom.Element)
	Unobserve(el dom.Element)
	Disconnect()
}

// Factory constructs an Observer delivering batches to cb, or ErrUnsupported.
type Factory func(cb Callback, opts Options) (Observer, error)

// Unsupported returns a Factory for environments without intersection
// capability, used to exercise degrade paths.
func Unsupported() Factory {
	return func(Callback, Options) (Observer, error) {
		return nil, ErrUnsupported
	}
}
