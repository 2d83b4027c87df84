package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeActiveSingleMatch(t *testing.T) {
	t.Parallel()

	positions := map[ID]Bounds{
		Home:  {Top: -600, Bottom: 0},
		About: {Top: 0, Bottom: 800},
	}
	require.Equal(t, About, ComputeActive(DefaultOrder, positions, DefaultThreshold, Home))
}

func TestComputeActiveLaterSectionWinsTie(t *testing.T) {
	t.Parallel()

	positions := map[ID]Bounds{
		Skills:   {Top: -400, Bottom: 100},
		Projects: {Top: 100, Bottom: 900},
	}
	require.Equal(t, Projects, ComputeActive(DefaultOrder, positions, DefaultThreshold, Home))
}

func TestComputeActiveUsesDeclaredOrderNotMapOrder(t *testing.T) {
	t.Parallel()

	order := []ID{Contact, Home}
	positions := map[ID]Bounds{
		Home:    {Top: 0, Bottom: 200},
		Contact: {Top: 50, Bottom: 300},
	}
	require.Equal(t, Home, ComputeActive(order, positions, DefaultThreshold, About))
}

func TestComputeActiveKeepsPreviousWithoutMatch(t *testing.T) {
	t.Parallel()

	positions := map[ID]Bounds{
		Home:  {Top: 200, Bottom: 400},
		About: {Top: 400, Bottom: 900},
	}
	require.Equal(t, Experience, ComputeActive(DefaultOrder, positions, DefaultThreshold, Experience))
	require.Equal(t, Experience, ComputeActive(DefaultOrder, nil, DefaultThreshold, Experience))
}

func TestComputeActiveIgnoresMalformedBounds(t *testing.T) {
	t.Parallel()

	positions := map[ID]Bounds{
		Home:       {Top: math.NaN(), Bottom: 500},
		About:      {Top: 300, Bottom: 0},
		Experience: {Top: math.Inf(-1), Bottom: math.Inf(1)},
	}
	require.Equal(t, Blogs, ComputeActive(DefaultOrder, positions, DefaultThreshold, Blogs))
}

func TestTrackerFollowsScroll(t *testing.T) {
	t.Parallel()

	tr := NewTracker(DefaultOrder, DefaultThreshold)
	require.Equal(t, Home, tr.Active())

	require.Equal(t, About, tr.Update(map[ID]Bounds{About: {Top: 80, Bottom: 700}}))
	require.Equal(t, About, tr.Update(map[ID]Bounds{About: {Top: 500, Bottom: 700}}))
	require.Equal(t, Contact, tr.Update(map[ID]Bounds{Blogs: {Top: -300, Bottom: 100}, Contact: {Top: 100, Bottom: 400}}))
	require.Equal(t, 6, tr.Index(Contact))
	require.Equal(t, -1, tr.Index(ID("footer")))
}

func TestNewTrackerEmptyOrder(t *testing.T) {
	t.Parallel()

	tr := NewTracker(nil, DefaultThreshold)
	require.Equal(t, ID(""), tr.Active())
	require.Equal(t, ID(""), tr.Update(map[ID]Bounds{Home: {Top: 0, Bottom: 500}}))
}

func TestLatchStaysVisible(t *testing.T) {
	t.Parallel()

	l := NewLatch(DefaultRevealFraction)
	require.False(t, l.Observe(0))
	require.False(t, l.Observe(0.05))
	require.True(t, l.Observe(0.1))

	// Scroll away and back.
	require.True(t, l.Observe(0))
	require.True(t, l.Observe(math.NaN()))
	require.True(t, l.Visible())
}

func TestLatchZeroThresholdNeedsOverlap(t *testing.T) {
	t.Parallel()

	l := NewLatch(0)
	require.False(t, l.Observe(0))
	require.True(t, l.Observe(0.001))
}

func TestVisibleFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    Bounds
		h    float64
		want float64
	}{
		{name: "fully inside", b: Bounds{Top: 10, Bottom: 110}, h: 600, want: 1},
		{name: "half above", b: Bounds{Top: -50, Bottom: 50}, h: 600, want: 0.5},
		{name: "below", b: Bounds{Top: 700, Bottom: 900}, h: 600, want: 0},
		{name: "malformed", b: Bounds{Top: 100, Bottom: 10}, h: 600, want: 0},
		{name: "no viewport", b: Bounds{Top: 0, Bottom: 10}, h: 0, want: 0},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, VisibleFraction(tt.b, tt.h), 1e-9, tt.name)
	}
}

func TestRevealOnce(t *testing.T) {
	t.Parallel()

	r := NewReveal(DefaultRevealFraction)
	tripped := r.Observe(map[ID]Bounds{Home: {Top: 0, Bottom: 20}, About: {Top: 40, Bottom: 80}}, 30)
	require.ElementsMatch(t, []ID{Home}, tripped)
	require.True(t, r.Revealed(Home))
	require.False(t, r.Revealed(About))

	require.Empty(t, r.Observe(map[ID]Bounds{Home: {Top: -100, Bottom: -80}}, 30))
	require.True(t, r.Revealed(Home))
}
