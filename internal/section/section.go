// Package section tracks which page section is active as the viewport moves
// and latches per-section reveal effects.
package section

import "math"

// ID names a page region.
type ID string

const (
	Home       ID = "home"
	About      ID = "about"
	Experience ID = "experience"
	Skills     ID = "skills"
	Projects   ID = "projects"
	Blogs      ID = "blogs"
	Contact    ID = "contact"
)

// DefaultOrder is the declared order of the page sections.
var DefaultOrder = []ID{Home, About, Experience, Skills, Projects, Blogs, Contact}

// DefaultThreshold is the distance from the viewport top, in pixels, at which
// a section counts as active.
const DefaultThreshold = 100

// DefaultRevealFraction is the share of a section that must be visible before
// its entrance effect runs.
const DefaultRevealFraction = 0.1

// Bounds is a rendered region's top and bottom edge in viewport coordinates.
type Bounds struct {
	Top    float64
	Bottom float64
}

// Valid reports whether b describes a real region.
func (b Bounds) Valid() bool {
	if math.IsNaN(b.Top) || math.IsNaN(b.Bottom) || math.IsInf(b.Top, 0) || math.IsInf(b.Bottom, 0) {
		return false
	}
	return b.Bottom >= b.Top
}

// Spans reports whether the horizontal line at y crosses b.
func (b Bounds) Spans(y float64) bool {
	return b.Valid() && b.Top <= y && b.Bottom >= y
}

// ComputeActive walks order and returns the last section whose bounds span
// threshold. When nothing matches, previous is kept. Sections missing from
// positions or with malformed bounds never match.
func ComputeActive(order []ID, positions map[ID]Bounds, threshold float64, previous ID) ID {
	active := previous
	for _, id := range order {
		b, ok := positions[id]
		if !ok {
			continue
		}
		if b.Spans(threshold) {
			active = id
		}
	}
	return active
}

// Tracker remembers the active section between viewport updates.
type Tracker struct {
	order     []ID
	threshold float64
	active    ID
}

// NewTracker starts with the first section in order active.
func NewTracker(order []ID, threshold float64) *Tracker {
	t := &Tracker{
		order:     append([]ID(nil), order...),
		threshold: threshold,
	}
	if len(t.order) > 0 {
		t.active = t.order[0]
	}
	return t
}

// Update recomputes the active section from fresh positions.
func (t *Tracker) Update(positions map[ID]Bounds) ID {
	t.active = ComputeActive(t.order, positions, t.threshold, t.active)
	return t.active
}

func (t *Tracker) Active() ID { return t.active }

// Order returns a copy of the tracked section order.
func (t *Tracker) Order() []ID { return append([]ID(nil), t.order...) }

// Index returns the position of id in the tracked order, or -1.
func (t *Tracker) Index(id ID) int {
	for i, v := range t.order {
		if v == id {
			return i
		}
	}
	return -1
}
