// Package dom is the capability surface the motion layer drives. Element
// lookup, geometry, style and class mutation, and event wiring all go through
// these interfaces so the engines run headless against a fake document.
package dom

import "math"

// Rect is an axis-aligned bounding box in page coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Area() float64 { return r.Width * r.Height }

func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Intersect returns the overlapping region of two rects, or a zero rect when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := math.Max(r.X, o.X)
	y1 := math.Max(r.Y, o.Y)
	x2 := math.Min(r.X+r.Width, o.X+o.Width)
	y2 := math.Min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Style is a bag of CSS-like properties written onto an element.
type Style map[string]string

type Element interface {
	BoundingBox() (Rect, error)
	SetStyle(props Style)
	SetClass(name string, present bool)
	HasClass(name string) bool
	Attr(name string) string
	// On registers an event handler and returns a function that removes it.
	On(event string, fn func()) func()
}

type Document interface {
	// FindAll returns matching elements in document order. Supported
	// selectors: ".class", compound ".a.b", and "#id".
	FindAll(selector string) []Element
}
