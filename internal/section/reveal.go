package section

// Latch is a one-shot visibility detector. Once an observation reaches the
// threshold it stays visible; later observations are ignored.
type Latch struct {
	threshold float64
	visible   bool
}

// NewLatch returns a latch that trips when at least threshold of the element
// is visible. A threshold of zero trips on any overlap.
func NewLatch(threshold float64) *Latch {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	return &Latch{threshold: threshold}
}

// Observe records the currently visible fraction and returns the latched
// state.
func (l *Latch) Observe(fraction float64) bool {
	if l.visible {
		return true
	}
	if fraction != fraction { // NaN
		return false
	}
	if fraction > 0 && fraction >= l.threshold {
		l.visible = true
	}
	return l.visible
}

func (l *Latch) Visible() bool { return l.visible }

// VisibleFraction returns how much of b is inside a viewport spanning
// [0, viewportHeight). Malformed bounds and empty viewports report zero.
func VisibleFraction(b Bounds, viewportHeight float64) float64 {
	if !b.Valid() || viewportHeight <= 0 {
		return 0
	}
	height := b.Bottom - b.Top
	if height <= 0 {
		return 0
	}

	top := max(b.Top, 0)
	bottom := min(b.Bottom, viewportHeight)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / height
}

// Reveal keeps one latch per section.
type Reveal struct {
	threshold float64
	latches   map[ID]*Latch
}

func NewReveal(threshold float64) *Reveal {
	return &Reveal{threshold: threshold, latches: make(map[ID]*Latch)}
}

// Observe feeds the visible fraction of every positioned section and returns
// the sections that tripped during this call.
func (r *Reveal) Observe(positions map[ID]Bounds, viewportHeight float64) []ID {
	var tripped []ID
	for id, b := range positions {
		l, ok := r.latches[id]
		if !ok {
			l = NewLatch(r.threshold)
			r.latches[id] = l
		}
		if l.Visible() {
			continue
		}
		if l.Observe(VisibleFraction(b, viewportHeight)) {
			tripped = append(tripped, id)
		}
	}
	return tripped
}

// Revealed reports whether id has ever been visible.
func (r *Reveal) Revealed(id ID) bool {
	l, ok := r.latches[id]
	return ok && l.Visible()
}
