package dom

import "strings"

// Fake is an in-memory Document used by tests and the terminal demo. It is
// not safe for concurrent use; everything here runs on one logical loop.
type Fake struct {
	elements []*FakeElement
}

func NewFake() *Fake {
	return &Fake{elements: make([]*FakeElement, 0)}
}

// Add creates an element with the given id, classes, and bounding box and
// appends it in document order.
func (f *Fake) Add(id string, classes []string, box Rect) *FakeElement {
	el := &FakeElement{
		id:       id,
		classes:  make(map[string]bool, len(classes)),
		attrs:    make(map[string]string),
		styles:   make(Style),
		handlers: make(map[string][]*handler),
		box:      box,
	}
	for _, c := range classes {
		el.classes[c] = true
	}
	f.elements = append(f.elements, el)
	return el
}

func (f *Fake) FindAll(selector string) []Element {
	var out []Element
	for _, el := range f.elements {
		if el.matches(selector) {
			out = append(out, el)
		}
	}
	return out
}

type handler struct {
	fn      func()
	removed bool
}

// FakeElement records every mutation made through the Element interface so
// tests can assert on exact behavior.
type FakeElement struct {
	id       string
	classes  map[string]bool
	attrs    map[string]string
	box      Rect
	boxErr   error
	styles   Style
	writes   int
	handlers map[string][]*handler
}

func (e *FakeElement) matches(selector string) bool {
	if strings.HasPrefix(selector, "#") {
		return e.id == selector[1:]
	}
	for _, class := range strings.Split(selector, ".") {
		if class == "" {
			continue
		}
		if !e.classes[class] {
			return false
		}
	}
	return strings.HasPrefix(selector, ".")
}

func (e *FakeElement) BoundingBox() (Rect, error) {
	if e.boxErr != nil {
		return Rect{}, e.boxErr
	}
	return e.box, nil
}

func (e *FakeElement) SetStyle(props Style) {
	for k, v := range props {
		e.styles[k] = v
	}
	e.writes++
}

func (e *FakeElement) SetClass(name string, present bool) {
	if present {
		e.classes[name] = true
	} else {
		delete(e.classes, name)
	}
}

func (e *FakeElement) HasClass(name string) bool { return e.classes[name] }

func (e *FakeElement) Attr(name string) string { return e.attrs[name] }

func (e *FakeElement) On(event string, fn func()) func() {
	h := &handler{fn: fn}
	e.handlers[event] = append(e.handlers[event], h)
	return func() { h.removed = true }
}

// SetAttr sets an attribute value, e.g. an href or a form field value.
func (e *FakeElement) SetAttr(name, value string) { e.attrs[name] = value }

// FailBoundingBox makes subsequent BoundingBox calls return err.
func (e *FakeElement) FailBoundingBox(err error) { e.boxErr = err }

// Dispatch fires all live handlers registered for event.
func (e *FakeElement) Dispatch(event string) {
	for _, h := range e.handlers[event] {
		if !h.removed {
			h.fn()
		}
	}
}

// Click is shorthand for Dispatch("click").
func (e *FakeElement) Click() { e.Dispatch("click") }

// Style returns the current value of a style property.
func (e *FakeElement) Style(name string) string { return e.styles[name] }

// StyleWrites returns how many SetStyle calls the element has received.
func (e *FakeElement) StyleWrites() int { return e.writes }
