// Package foam assigns animation timing to the decorative foam cells.
// Primary cells alternate expand/contract phase by index parity and cycle
// slowly; interstitial cells share one animation with denser jitter. All
// values are drawn once at assignment and never touched again.
package foam

import (
	"fmt"
	"math/rand"

	"github.com/renmarsh/pagefx/internal/dom"
	"github.com/renmarsh/pagefx/internal/sched"
)

// ContractClass marks odd-indexed primary cells; expand is the implicit base
// phase and gets no class.
const ContractClass = "contract"

type Config struct {
	// Primary cells: delay = i*PrimaryStep ± PrimaryJitter,
	// duration = PrimaryDuration ± PrimaryDurationJitter (seconds).
	PrimaryStep           float64
	PrimaryJitter         float64
	PrimaryDuration       float64
	PrimaryDurationJitter float64
	// Interstitial cells: delay = j*InterstitialStep ± InterstitialJitter,
	// duration = InterstitialDuration ± InterstitialDurationJitter.
	InterstitialStep           float64
	InterstitialJitter         float64
	InterstitialDuration       float64
	InterstitialDurationJitter float64
}

func DefaultConfig() Config {
	return Config{
		PrimaryStep:                -1.5,
		PrimaryJitter:              0.4,
		PrimaryDuration:            20,
		PrimaryDurationJitter:      1,
		InterstitialStep:           -0.6,
		InterstitialJitter:         0.75,
		InterstitialDuration:       5,
		InterstitialDurationJitter: 0.75,
	}
}

type Assigner struct {
	sched sched.Scheduler
	rng   *rand.Rand
	cfg   Config
}

func New(s sched.Scheduler, rng *rand.Rand, cfg Config) *Assigner {
	return &Assigner{sched: s, rng: rng, cfg: cfg}
}

// Assign schedules one deferred pass that stamps phase, delay, duration, and
// transform origin onto every cell. The pass runs on the next frame because
// bounding boxes are unreliable before first paint.
//
// With no primary cells nothing happens at all, interstitial cells included;
// the site behaves that way and the short-circuit is kept deliberately.
func (a *Assigner) Assign(primary, interstitial []dom.Element) {
	if len(primary) == 0 {
		return
	}
	a.sched.NextFrame(func() {
		for i, el := range primary {
			if i%2 == 1 {
				el.SetClass(ContractClass, true)
			}
			delay := float64(i)*a.cfg.PrimaryStep + a.uniform(a.cfg.PrimaryJitter)
			dur := a.cfg.PrimaryDuration + a.uniform(a.cfg.PrimaryDurationJitter)
			el.SetStyle(dom.Style{
				"transform-origin":   origin(el),
				"animation-delay":    seconds(delay),
				"animation-duration": seconds(dur),
			})
		}
		for j, el := range interstitial {
			delay := float64(j)*a.cfg.InterstitialStep + a.uniform(a.cfg.InterstitialJitter)
			dur := a.cfg.InterstitialDuration + a.uniform(a.cfg.InterstitialDurationJitter)
			el.SetStyle(dom.Style{
				"transform-origin":   origin(el),
				"animation-delay":    seconds(delay),
				"animation-duration": seconds(dur),
			})
		}
	})
}

// uniform draws from U(-j, j).
func (a *Assigner) uniform(j float64) float64 {
	return (a.rng.Float64()*2 - 1) * j
}

// origin is the element-local center; geometry failures fall back to the
// keyword origin and the pass moves on.
func origin(el dom.Element) string {
	box, err := el.BoundingBox()
	if err != nil {
		return "center center"
	}
	return fmt.Sprintf("%.1fpx %.1fpx", box.Width/2, box.Height/2)
}

func seconds(v float64) string { return fmt.Sprintf("%.2fs", v) }

// Partition splits cells matching selector into primary and interstitial
// sequences by class, preserving document order in both.
func Partition(doc dom.Document, selector, interstitialClass string) (primary, interstitial []dom.Element) {
	for _, el := range doc.FindAll(selector) {
		if el.HasClass(interstitialClass) {
			interstitial = append(interstitial, el)
		} else {
			primary = append(primary, el)
		}
	}
	return primary, interstitial
}
