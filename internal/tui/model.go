// Package tui is an interactive demonstration of the motion layer: a fake
// marketing page rendered in the terminal, scrolled with the keyboard, with
// reveals and foam timing driven by the same engines the library ships.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renmarsh/pagefx/internal/config"
	"github.com/renmarsh/pagefx/internal/dom"
	"github.com/renmarsh/pagefx/internal/foam"
	"github.com/renmarsh/pagefx/internal/observe"
	"github.com/renmarsh/pagefx/internal/reveal"
	"github.com/renmarsh/pagefx/internal/sched"
)

// One terminal row stands for this many page pixels.
const pxPerLine = 20

const footerLines = 4

var (
	heroStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
	revealedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("63")).
			PaddingLeft(1)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

type card struct {
	el    *dom.FakeElement
	title string
}

type Model struct {
	cfg    *config.Config
	doc    *dom.Fake
	sim    *observe.Viewport
	loop   *sched.Loop
	view   viewport.Model
	handle *reveal.Handle

	cards        []card
	primary      []*dom.FakeElement
	interstitial []*dom.FakeElement

	frame time.Duration
	ready bool
}

// NewModel builds the fake page and wires both engines against it.
func NewModel(cfg *config.Config, cards, fps int) (Model, error) {
	if cards < 1 {
		cards = 1
	}
	if fps < 1 {
		fps = 30
	}

	m := Model{
		cfg:   cfg,
		doc:   dom.NewFake(),
		sim:   observe.NewViewport(800, 600),
		loop:  sched.NewLoop(),
		frame: time.Second / time.Duration(fps),
	}

	m.doc.Add("hero", []string{"hero"}, dom.Rect{Width: 800, Height: 5 * pxPerLine})
	m.buildCards(cards)
	m.buildFoam()

	anim := reveal.New(m.doc, m.sim.Factory(), m.loop, cfg.RevealOptions())
	handle, err := anim.Start(cfg.Selectors...)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	m.handle = handle

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, n := foam.Partition(m.doc, ".foam-cell", "interstitial")
	foam.New(m.loop, rand.New(rand.NewSource(seed)), cfg.FoamOptions()).Assign(p, n)

	return m, nil
}

func (m *Model) buildCards(n int) {
	classes := []string{"feature-card", "content-card", "faq-item", "contact-card"}
	labels := map[string]string{
		"feature-card": "Feature",
		"content-card": "Story",
		"faq-item":     "FAQ",
		"contact-card": "Contact",
	}
	y := 6 * pxPerLine
	for i := 0; i < n; i++ {
		class := classes[i%len(classes)]
		el := m.doc.Add(fmt.Sprintf("card-%d", i), []string{class},
			dom.Rect{Y: float64(y), Width: 800, Height: 3 * pxPerLine})
		m.cards = append(m.cards, card{
			el:    el,
			title: fmt.Sprintf("%s %d", labels[class], i+1),
		})
		y += 4 * pxPerLine
	}
}

func (m *Model) buildFoam() {
	// Decorative cells live off to the side of the page flow; only their
	// geometry matters for transform origins.
	for i := 0; i < 6; i++ {
		m.primary = append(m.primary, m.doc.Add("", []string{"foam-cell"},
			dom.Rect{X: float64(i) * 90, Width: 80, Height: 60}))
	}
	for j := 0; j < 4; j++ {
		m.interstitial = append(m.interstitial, m.doc.Add("", []string{"foam-cell", "interstitial"},
			dom.Rect{X: float64(j)*40 + 20, Y: 30, Width: 30, Height: 30}))
	}
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - footerLines
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.view = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = h
		}
		m.sim.Resize(800, float64(h)*pxPerLine)
		m.view.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.handle.Stop()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd

	case tickMsg:
		if m.ready {
			m.sim.ScrollTo(float64(m.view.YOffset) * pxPerLine)
		}
		m.loop.Advance(m.frame)
		if m.ready {
			m.view.SetContent(m.content())
		}
		return m, m.tick()
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) content() string {
	var b strings.Builder
	b.WriteString(heroStyle.Render("S U D S  &  C O") + "\n")
	b.WriteString(dimStyle.Render("small-batch soap, big-batch motion") + "\n\n")

	for _, c := range m.cards {
		if c.el.Style("opacity") == "1" {
			b.WriteString(revealedStyle.Render(c.title) + "\n")
			b.WriteString(revealedStyle.Render(dimStyle.Render("revealed · transition "+c.el.Style("transition"))) + "\n")
		} else {
			b.WriteString(hiddenStyle.Render("░░ "+c.title) + "\n")
			b.WriteString(hiddenStyle.Render("   waiting below the fold") + "\n")
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) footer() string {
	var p []string
	for i, el := range m.primary {
		phase := "expand"
		if el.HasClass(foam.ContractClass) {
			phase = "contract"
		}
		if el.Style("animation-delay") == "" {
			p = append(p, fmt.Sprintf("p%d –", i))
			continue
		}
		p = append(p, fmt.Sprintf("p%d %s %s/%s", i, phase,
			el.Style("animation-delay"), el.Style("animation-duration")))
	}
	var n []string
	for j, el := range m.interstitial {
		if el.Style("animation-delay") == "" {
			n = append(n, fmt.Sprintf("i%d –", j))
			continue
		}
		n = append(n, fmt.Sprintf("i%d %s/%s", j,
			el.Style("animation-delay"), el.Style("animation-duration")))
	}

	return dimStyle.Render("foam  "+strings.Join(p, "  ")) + "\n" +
		dimStyle.Render("      "+strings.Join(n, "  ")) + "\n" +
		helpStyle.Render(fmt.Sprintf("scroll %4.0fpx  ·  ↑/↓ pgup/pgdn scroll  ·  q quit", m.sim.Offset()))
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.view.View() + "\n" + m.footer()
}

// Run starts the demo program on the alternate screen.
func Run(cfg *config.Config, cards, fps int) error {
	m, err := NewModel(cfg, cards, fps)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
