package tui

import (
	"io"
	"log"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/RAAHUL-tech/portfolio/internal/section"
	"github.com/RAAHUL-tech/portfolio/internal/theme"
)

func newTestModel(t *testing.T, hour int) (Model, *theme.MemoryStore) {
	t.Helper()

	store := theme.NewMemoryStore()
	clock := func() time.Time { return time.Date(2025, time.May, 1, hour, 0, 0, 0, time.UTC) }
	policy := theme.NewPolicy(store, &Bridge{},
		theme.WithClock(clock),
		theme.WithInterval(0),
		theme.WithLogger(log.New(io.Discard, "", 0)),
	)
	t.Cleanup(policy.Close)

	next, _ := New(policy, 3).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), store
}

func press(m Model, key string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(Model)
}

func TestModelStartsOnHome(t *testing.T) {
	m, _ := newTestModel(t, 20)

	require.Equal(t, section.Home, m.Active())
	require.Equal(t, theme.State{Mode: theme.ModeAuto, Effective: theme.AppearanceDark}, m.Theme())
	require.Contains(t, m.View(), "theme: auto (dark)")
	require.True(t, m.reveal.Revealed(section.Home))
	require.False(t, m.reveal.Revealed(section.Contact))
}

func TestModelToggleLeavesAuto(t *testing.T) {
	m, store := newTestModel(t, 20)

	m = press(m, "t")
	require.Equal(t, theme.State{Mode: theme.ModeLight, Effective: theme.AppearanceLight}, m.Theme())
	v, err := store.Get(theme.StorageKey)
	require.NoError(t, err)
	require.Equal(t, "light", v)

	m = press(m, "t")
	require.Equal(t, theme.State{Mode: theme.ModeDark, Effective: theme.AppearanceDark}, m.Theme())

	m = press(m, "a")
	require.Equal(t, theme.ModeAuto, m.Theme().Mode)
}

func TestModelJumpTracksActiveSection(t *testing.T) {
	m, _ := newTestModel(t, 10)

	m = press(m, "3")
	require.Equal(t, section.Experience, m.Active())
	require.True(t, m.reveal.Revealed(section.Experience))

	m = press(m, "5")
	require.Equal(t, section.Projects, m.Active())

	m = press(m, "1")
	require.Equal(t, section.Home, m.Active())
	require.True(t, m.reveal.Revealed(section.Projects), "reveal must not reset after scrolling away")
}

func TestModelScrollKeepsPreviousBetweenSections(t *testing.T) {
	m, _ := newTestModel(t, 10)

	m = press(m, "2")
	require.Equal(t, section.About, m.Active())

	// One line down stays inside About.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	require.Equal(t, section.About, m.Active())
}

func TestModelAppearanceMsgReadsPolicy(t *testing.T) {
	m, _ := newTestModel(t, 10)

	m.policy.SetMode(theme.ModeDark)
	next, _ := m.Update(AppearanceMsg{Appearance: theme.AppearanceLight})
	m = next.(Model)
	require.Equal(t, theme.AppearanceDark, m.Theme().Effective)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, 10)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBridgeWithoutProgramIsNoop(t *testing.T) {
	var b Bridge
	require.NotPanics(t, func() { b.Apply(theme.AppearanceDark) })
}
