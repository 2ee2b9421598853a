package page

import (
	"strings"

	"github.com/renmarsh/pagefx/internal/dom"
)

// BindSmoothScroll resolves each link's "#id" href against doc on click and
// scrolls to the target's top minus headerOffset. Links without a local
// anchor href, or whose target is missing or unmeasurable, are ignored.
func BindSmoothScroll(doc dom.Document, links []dom.Element, scrollTo func(y float64), headerOffset float64) func() {
	offs := make([]func(), 0, len(links))
	for _, link := range links {
		link := link
		offs = append(offs, link.On("click", func() {
			href := link.Attr("href")
			if !strings.HasPrefix(href, "#") || len(href) < 2 {
				return
			}
			targets := doc.FindAll(href)
			if len(targets) == 0 {
				return
			}
			box, err := targets[0].BoundingBox()
			if err != nil {
				return
			}
			y := box.Y - headerOffset
			if y < 0 {
				y = 0
			}
			scrollTo(y)
		}))
	}
	return func() {
		for _, off := range offs {
			off()
		}
	}
}
