package reveal

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/renmarsh/pagefx/internal/dom"
	"github.com/renmarsh/pagefx/internal/observe"
	"github.com/renmarsh/pagefx/internal/sched"
)

type fixture struct {
	doc  *dom.Fake
	vp   *observe.Viewport
	loop *sched.Loop
}

func newFixture() *fixture {
	return &fixture{
		doc:  dom.NewFake(),
		vp:   observe.NewViewport(800, 600),
		loop: sched.NewLoop(),
	}
}

func (fx *fixture) animator(cfg Config) *Animator {
	return New(fx.doc, fx.vp.Factory(), fx.loop, cfg)
}

// cards places n feature cards of 100px height starting below the fold,
// spaced so that one 600px scroll brings them all in at once.
func (fx *fixture) cards(n int) []*dom.FakeElement {
	els := make([]*dom.FakeElement, n)
	for i := 0; i < n; i++ {
		els[i] = fx.doc.Add("", []string{"feature-card"},
			dom.Rect{Y: 700 + float64(i)*120, Width: 400, Height: 100})
	}
	return els
}

func TestPrimesHiddenState(t *testing.T) {
	g := NewWithT(t)
	fx := newFixture()
	el := fx.cards(1)[0]

	_, err := fx.animator(DefaultConfig()).Start(".feature-card")
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(el.Style("opacity")).To(Equal("0"))
	g.Expect(el.Style("transform")).To(Equal("translateY(20px)"))
	g.Expect(el.Style("transition")).To(Equal("opacity 0.5s ease, transform 0.5s ease"))
}

func TestBatchStaggerIsExact(t *testing.T) {
	g := NewWithT(t)
	fx := newFixture()
	els := fx.cards(4)

	_, err := fx.animator(DefaultConfig()).Start(".feature-card")
	g.Expect(err).NotTo(HaveOccurred())

	// All four cross the threshold in the same sweep.
	fx.vp.ScrollTo(650)

	revealedAt := make([]time.Duration, 0, 4)
	opaque := func() int {
		n := 0
		for _, el := range els {
			if el.Style("opacity") == "1" {
				n++
			}
		}
		return n
	}

	for step := 0; step < 4; step++ {
		fx.loop.Advance(0)
		g.Expect(opaque()).To(Equal(step+1), "one more reveal per 100ms step")
		revealedAt = append(revealedAt, fx.loop.Now())
		fx.loop.Advance(100 * time.Millisecond)
	}

	for i, at := range revealedAt {
		g.Expect(at).To(Equal(time.Duration(i)*100*time.Millisecond),
			"element %d should reveal at batch index * stagger", i)
	}
}

func TestStaggerIsBatchRelative(t *testing.T) {
	g := NewWithT(t)
	fx := newFixture()
	els := fx.cards(4)

	_, err := fx.animator(DefaultConfig()).Start(".feature-card")
	g.Expect(err).NotTo(HaveOccurred())

	// First batch: cards 0 and 1. Second batch: cards 2 and 3. The second
	// batch restarts its stagger at zero rather than continuing globally.
	fx.vp.ScrollTo(350)
	fx.loop.Advance(time.Second)
	g.Expect(els[1].Style("opacity")).To(Equal("1"))
	g.Expect(els[2].Style("opacity")).To(Equal("0"))

	fx.vp.ScrollTo(800)
	fx.loop.Advance(0)
	g.Expect(els[2].Style("opacity")).To(Equal("1"), "new batch starts at zero delay")
	g.Expect(els[3].Style("opacity")).To(Equal("0"))
	fx.loop.Advance(100 * time.Millisecond)
	g.Expect(els[3].Style("opacity")).To(Equal("1"))
}

func TestRevealExactlyOnce(t *testing.T) {
	g := NewWithT(t)
	fx := newFixture()
	el := fx.cards(1)[0]

	_, err := fx.animator(DefaultConfig()).Start(".feature-card")
	g.Expect(err).NotTo(HaveOccurred())

	fx.vp.ScrollTo(400)
	fx.loop.Advance(time.Second)
	g.Expect(el.Style("opacity")).To(Equal("1"))
	writes := el.StyleWrites()

	// Scroll the element out and back in, repeatedly.
	for i := 0; i < 3; i++ {
		fx.vp.ScrollTo(0)
		fx.vp.ScrollTo(400)
		fx.loop.Advance(time.Second)
	}

	g.Expect(el.StyleWrites()).To(Equal(writes), "no mutation after the first reveal")
}

func TestNeverIntersectingStaysHidden(t *testing.T) {
	g := NewWithT(t)
	fx := newFixture()
	el := fx.doc.Add("", []string{"feature-card"},
		dom.Rect{Y: 100000, Width: 400, Height: 100})

	_, err := fx.animator(DefaultConfig()).Start(".feature-card")
	g.Expect(err).NotTo(HaveOccurred())

	fx.vp.ScrollTo(400)
	fx.vp.ScrollTo(0)
	fx.loop.Advance(time.Minute)

	g.Expect(el.Style("opacity")).To(Equal("0"))
	g.Expect(el.Style("transform")).To(Equal("translateY(20px)"))
}

func TestZeroElementsIsNoOp(t *testing.T) {
	g := NewWithT(t)
	fx := newFixture()

	calls := 0
	counting := observe.Factory(func(cb observe.Callback, opts observe.Options) (observe.Observer, error) {
		calls++
		return fx.vp.Factory()(cb, opts)
	})

	h, err := New(fx.doc, counting, fx.loop, DefaultConfig()).Start(".feature-card", ".content-card")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(calls).To(Equal(0), "no observer should be constructed for an empty selection")
	h.Stop()
}

func TestUnsupportedDegradesToImmediateReveal(t *testing.T) {
	g := NewWithT(t)
	fx := newFixture()
	els := fx.cards(3)

	h, err := New(fx.doc, observe.Unsupported(), fx.loop, DefaultConfig()).Start(".feature-card")
	g.Expect(err).NotTo(HaveOccurred())

	for _, el := range els {
		g.Expect(el.Style("opacity")).To(Equal("1"))
		g.Expect(el.Style("transform")).To(Equal("none"))
		g.Expect(el.Style("transition")).To(BeEmpty(), "degrade path must not animate")
	}
	h.Stop()
}

func TestSelectorOrderIsPreserved(t *testing.T) {
	g := NewWithT(t)
	fx := newFixture()
	content := fx.doc.Add("", []string{"content-card"},
		dom.Rect{Y: 700, Width: 400, Height: 100})
	feature := fx.doc.Add("", []string{"feature-card"},
		dom.Rect{Y: 820, Width: 400, Height: 100})

	_, err := fx.animator(DefaultConfig()).Start(".feature-card", ".content-card")
	g.Expect(err).NotTo(HaveOccurred())

	// Both cross together; the feature card was registered first so it leads
	// the batch even though the content card sits higher on the page.
	fx.vp.ScrollTo(500)
	fx.loop.Advance(0)
	g.Expect(feature.Style("opacity")).To(Equal("1"))
	g.Expect(content.Style("opacity")).To(Equal("0"))
	fx.loop.Advance(100 * time.Millisecond)
	g.Expect(content.Style("opacity")).To(Equal("1"))
}

func TestStopDisconnects(t *testing.T) {
	g := NewWithT(t)
	fx := newFixture()
	el := fx.cards(1)[0]

	h, err := fx.animator(DefaultConfig()).Start(".feature-card")
	g.Expect(err).NotTo(HaveOccurred())

	h.Stop()
	h.Stop() // idempotent

	fx.vp.ScrollTo(400)
	fx.loop.Advance(time.Second)
	g.Expect(el.Style("opacity")).To(Equal("0"), "stopped animator must not reveal")
}
