package tui

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RAAHUL-tech/portfolio/internal/section"
	"github.com/RAAHUL-tech/portfolio/internal/theme"
)

// chromeHeight is the nav bar plus the footer.
const chromeHeight = 2

// AppearanceMsg tells the model the policy applied a new appearance.
type AppearanceMsg struct {
	Appearance theme.Appearance
}

// Bridge is the theme surface for a running program. Apply never blocks, so
// the policy can call it while holding its lock.
type Bridge struct {
	program atomic.Pointer[tea.Program]
}

func (b *Bridge) Attach(p *tea.Program) { b.program.Store(p) }

func (b *Bridge) Apply(a theme.Appearance) {
	p := b.program.Load()
	if p == nil {
		return
	}
	go p.Send(AppearanceMsg{Appearance: a})
}

// Model renders the portfolio in a scrolling viewport.
type Model struct {
	policy  *theme.Policy
	tracker *section.Tracker
	reveal  *section.Reveal

	viewport viewport.Model
	ready    bool
	width    int

	state  theme.State
	styles styles
	spans  []span
}

// New builds a model bound to policy. threshold is the active-section line
// offset from the top of the viewport.
func New(policy *theme.Policy, threshold int) Model {
	state := policy.State()
	return Model{
		policy:  policy,
		tracker: section.NewTracker(section.DefaultOrder, float64(threshold)),
		reveal:  section.NewReveal(section.DefaultRevealFraction),
		state:   state,
		styles:  newStyles(state.Effective),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		vpHeight := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.rerender()

	case AppearanceMsg:
		// The payload may be stale when ticks race with key presses; the
		// policy's current state is authoritative.
		m.syncTheme()

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.policy.Toggle()
			m.syncTheme()
		case "l":
			m.policy.SetMode(theme.ModeLight)
			m.syncTheme()
		case "d":
			m.policy.SetMode(theme.ModeDark)
			m.syncTheme()
		case "a":
			m.policy.SetMode(theme.ModeAuto)
			m.syncTheme()
		case "1", "2", "3", "4", "5", "6", "7":
			if order := m.tracker.Order(); int(key[0]-'1') < len(order) {
				m.jumpTo(order[key[0]-'1'])
			}
		default:
			if m.ready {
				m.viewport, cmd = m.viewport.Update(msg)
			}
		}

	default:
		if m.ready {
			m.viewport, cmd = m.viewport.Update(msg)
		}
	}

	m.track()
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading portfolio..."
	}
	return strings.Join([]string{m.renderNav(), m.viewport.View(), m.renderFooter()}, "\n")
}

// Active returns the section currently highlighted in the nav bar.
func (m Model) Active() section.ID { return m.tracker.Active() }

// Theme returns the theme state the model last rendered with.
func (m Model) Theme() theme.State { return m.state }

func (m *Model) syncTheme() {
	next := m.policy.State()
	if next == m.state {
		return
	}
	m.state = next
	m.styles = newStyles(next.Effective)
	m.rerender()
}

func (m *Model) rerender() {
	if !m.ready {
		return
	}
	offset := m.viewport.YOffset
	page, spans := renderPage(m.tracker.Order(), m.viewport.Width, m.styles, m.reveal.Revealed)
	m.spans = spans
	m.viewport.SetContent(page)
	m.viewport.SetYOffset(offset)
}

// jumpTo scrolls so the section starts at the top of the viewport.
func (m *Model) jumpTo(id section.ID) {
	index := m.tracker.Index(id)
	if !m.ready || index < 0 || index >= len(m.spans) {
		return
	}
	m.viewport.SetYOffset(m.spans[index].Start)
}

// positions converts section line ranges into viewport-relative bounds.
func (m Model) positions() map[section.ID]section.Bounds {
	out := make(map[section.ID]section.Bounds, len(m.spans))
	for _, s := range m.spans {
		out[s.ID] = section.Bounds{
			Top:    float64(s.Start - m.viewport.YOffset),
			Bottom: float64(s.End - m.viewport.YOffset),
		}
	}
	return out
}

func (m *Model) track() {
	if !m.ready {
		return
	}
	positions := m.positions()
	m.tracker.Update(positions)
	if tripped := m.reveal.Observe(positions, float64(m.viewport.Height)); len(tripped) > 0 {
		m.rerender()
	}
}

func (m Model) renderNav() string {
	active := m.tracker.Active()
	items := make([]string, 0, len(m.spans))
	for i, s := range m.spans {
		label := fmt.Sprintf("%d %s", i+1, titles[s.ID])
		if s.ID == active {
			items = append(items, m.styles.NavActive.Render(label))
			continue
		}
		items = append(items, m.styles.NavItem.Render(label))
	}
	return m.styles.Base.MaxWidth(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

func (m Model) renderFooter() string {
	help := fmt.Sprintf("theme: %s (%s) · t toggle · l/d/a light/dark/auto · 1-7 jump · q quit", m.state.Mode, m.state.Effective)
	return m.styles.Footer.MaxWidth(m.width).Render(help)
}
