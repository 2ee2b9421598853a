// Package page wires the remaining site behaviors onto the same capability
// surface the motion engines use: mobile nav toggle, FAQ accordion, smooth
// scrolling for anchor links, and client-side form validation. Every binder
// returns a disposer that detaches its handlers.
package page

import "github.com/renmarsh/pagefx/internal/dom"

// BindNavToggle flips the active class on both the toggle button and the
// menu on every click.
func BindNavToggle(toggle, menu dom.Element) func() {
	return toggle.On("click", func() {
		open := !menu.HasClass("active")
		menu.SetClass("active", open)
		toggle.SetClass("active", open)
	})
}
