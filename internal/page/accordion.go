package page

import "github.com/renmarsh/pagefx/internal/dom"

// BindAccordion makes items mutually exclusive: clicking one opens it and
// closes the rest; clicking the open item closes it.
func BindAccordion(items []dom.Element) func() {
	offs := make([]func(), 0, len(items))
	for _, item := range items {
		item := item
		offs = append(offs, item.On("click", func() {
			open := !item.HasClass("active")
			for _, other := range items {
				other.SetClass("active", false)
			}
			item.SetClass("active", open)
		}))
	}
	return func() {
		for _, off := range offs {
			off()
		}
	}
}
