package observe

import "github.com/renmarsh/pagefx/internal/dom"

// Viewport is a simulated scrolling region. It stands in for the browser's
// visible area: elements keep fixed page coordinates and the viewport moves
// over them. Every scroll (or explicit Flush) sweeps all attached observers
// and dispatches a batch of state changes per observer.
type Viewport struct {
	root      dom.Rect
	observers []*viewportObserver
}

func NewViewport(width, height float64) *Viewport {
	return &Viewport{root: dom.Rect{Width: width, Height: height}}
}

// Offset returns the current scroll position.
func (v *Viewport) Offset() float64 { return v.root.Y }

func (v *Viewport) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	v.root.Y = y
	v.Flush()
}

func (v *Viewport) Scroll(dy float64) { v.ScrollTo(v.root.Y + dy) }

// Resize changes the visible region, as a browser window resize would, and
// sweeps immediately.
func (v *Viewport) Resize(width, height float64) {
	v.root.Width = width
	v.root.Height = height
	v.Flush()
}

// Flush sweeps every attached observer against the current viewport.
func (v *Viewport) Flush() {
	for _, o := range v.observers {
		o.sweep()
	}
}

// Factory binds the viewport as an observe.Factory.
func (v *Viewport) Factory() Factory {
	return func(cb Callback, opts Options) (Observer, error) {
		o := &viewportObserver{
			vp:    v,
			cb:    cb,
			opts:  opts,
			state: make(map[dom.Element]bool),
		}
		v.observers = append(v.observers, o)
		return o, nil
	}
}

type viewportObserver struct {
	vp           *Viewport
	cb           Callback
	opts         Options
	watched      []dom.Element
	state        map[dom.Element]bool
	disconnected bool
}

func (o *viewportObserver) Observe(el dom.Element) {
	if o.disconnected || el == nil {
		return
	}
	for _, w := range o.watched {
		if w == el {
			return
		}
	}
	o.watched = append(o.watched, el)
}

func (o *viewportObserver) Unobserve(el dom.Element) {
	for i, w := range o.watched {
		if w == el {
			o.watched = append(o.watched[:i], o.watched[i+1:]...)
			delete(o.state, el)
			return
		}
	}
}

func (o *viewportObserver) Disconnect() {
	o.disconnected = true
	o.watched = nil
	o.state = make(map[dom.Element]bool)
}

// sweep recomputes intersection for every watched element and dispatches a
// single batch with the elements whose state flipped. The batch is collected
// before the callback runs, so callbacks may unobserve freely.
func (o *viewportObserver) sweep() {
	if o.disconnected || o.cb == nil || len(o.watched) == 0 {
		return
	}

	root := o.vp.root
	root.Height += o.opts.BottomMargin
	if root.Height < 0 {
		root.Height = 0
	}

	var batch []Entry
	for _, el := range o.watched {
		ratio := 0.0
		if box, err := el.BoundingBox(); err == nil && box.Area() > 0 {
			ratio = box.Intersect(root).Area() / box.Area()
		}
		in := ratio >= o.opts.Threshold && ratio > 0
		if in != o.state[el] {
			o.state[el] = in
			batch = append(batch, Entry{Element: el, Ratio: ratio, Intersecting: in})
		}
	}
	if len(batch) > 0 {
		o.cb(batch)
	}
}
