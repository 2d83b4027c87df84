package theme

import (
	"log"
	"sync"
	"time"

	"github.com/sasha-s/go-deadlock"
)

// DefaultInterval is how often auto mode re-checks the clock.
const DefaultInterval = time.Minute

// Surface receives the resolved appearance, e.g. a DOM root, an HTML
// template context or a terminal program. Apply runs with the policy lock
// held, so it must return promptly and must not call back into the policy.
type Surface interface {
	Apply(Appearance)
}

// SurfaceFunc adapts a plain function to Surface.
type SurfaceFunc func(Appearance)

// Apply calls f(a).
func (f SurfaceFunc) Apply(a Appearance) { f(a) }

// Recorder is a Surface that remembers the last applied attributes.
type Recorder struct {
	mu      sync.Mutex
	attrs   Attributes
	applied int
}

// Apply records the attributes for a.
func (r *Recorder) Apply(a Appearance) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := AttributesFor(a)
	if r.applied > 0 && next == r.attrs {
		return
	}
	r.attrs = next
	r.applied++
}

// Attributes returns the last applied attributes.
func (r *Recorder) Attributes() Attributes {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attrs
}

// Changes counts observable changes, so re-applying the same appearance
// does not bump it.
func (r *Recorder) Changes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applied
}

// Option configures a Policy.
type Option func(*Policy)

// WithClock overrides the wall clock used for auto mode.
func WithClock(now func() time.Time) Option {
	return func(p *Policy) {
		if now != nil {
			p.now = now
		}
	}
}

// WithInterval sets the auto recompute interval. Zero or negative disables
// background recomputation; the state is then refreshed only on demand.
func WithInterval(d time.Duration) Option {
	return func(p *Policy) { p.interval = d }
}

// WithLogger sets where the policy reports persist failures, ignored modes
// and auto switches. The default is log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(p *Policy) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Policy owns the theme state for one rendering surface.
type Policy struct {
	store    Store
	surface  Surface
	now      func() time.Time
	interval time.Duration
	logger   *log.Logger

	// mu is held while the surface applies.
	mu     deadlock.Mutex
	state  State
	stop   chan struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewPolicy loads the persisted mode, applies the resolved appearance to
// surface and, in auto mode, starts the recompute ticker.
func NewPolicy(store Store, surface Surface, opts ...Option) *Policy {
	p := &Policy{
		store:    store,
		surface:  surface,
		now:      time.Now,
		interval: DefaultInterval,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	mode := InitialMode(store)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = State{Mode: mode, Effective: Resolve(mode, p.now())}
	p.applyLocked()
	p.syncTickerLocked()
	return p
}

// State returns the current mode and effective appearance.
func (p *Policy) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetMode switches to mode, persists it and applies the new appearance.
// Unknown modes are ignored.
func (p *Policy) SetMode(mode Mode) {
	if !mode.Valid() {
		p.logger.Printf("level=warn event=theme_invalid_mode mode=%q", mode)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.setModeLocked(mode)
}

// Toggle selects the appearance opposite the current effective one. The
// result is always an explicit mode, so toggling leaves auto.
func (p *Policy) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setModeLocked(Mode(p.state.Effective.Opposite()))
}

// Refresh re-resolves auto mode against the clock and re-applies the
// appearance if it changed. It reports whether a change happened.
func (p *Policy) Refresh() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshLocked()
}

// Close stops background recomputation and waits for it to exit.
func (p *Policy) Close() {
	p.mu.Lock()
	p.closed = true
	p.stopTickerLocked()
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Policy) setModeLocked(mode Mode) {
	p.state = State{Mode: mode, Effective: Resolve(mode, p.now())}

	if p.store != nil {
		if err := p.store.Set(StorageKey, string(mode)); err != nil {
			p.logger.Printf("level=warn event=theme_persist_failed mode=%s err=%q", mode, err)
		}
	}

	p.applyLocked()
	p.syncTickerLocked()
}

func (p *Policy) refreshLocked() bool {
	if p.state.Mode != ModeAuto {
		return false
	}

	next := Resolve(ModeAuto, p.now())
	if next == p.state.Effective {
		return false
	}

	p.state.Effective = next
	p.applyLocked()
	return true
}

func (p *Policy) applyLocked() {
	if p.surface != nil {
		p.surface.Apply(p.state.Effective)
	}
}

// syncTickerLocked makes the ticker run exactly while the mode is auto.
func (p *Policy) syncTickerLocked() {
	wantTicker := p.state.Mode == ModeAuto && p.interval > 0 && !p.closed
	switch {
	case wantTicker && p.stop == nil:
		p.stop = make(chan struct{})
		p.wg.Add(1)
		go p.tick(p.stop, p.interval)
	case !wantTicker && p.stop != nil:
		p.stopTickerLocked()
	}
}

func (p *Policy) stopTickerLocked() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
}

func (p *Policy) tick(stop <-chan struct{}, interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.mu.Lock()
			select {
			case <-stop:
				// Mode left auto while this tick was pending.
				p.mu.Unlock()
				return
			default:
			}
			if p.refreshLocked() {
				p.logger.Printf("level=info event=theme_auto_switch effective=%s", p.state.Effective)
			}
			p.mu.Unlock()
		}
	}
}
