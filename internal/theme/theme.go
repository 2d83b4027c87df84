// Package theme resolves the page appearance from a user-selected mode and the
// time of day, and persists the user's choice.
//
// Integration example:
//
//	policy := theme.NewPolicy(store, theme.SurfaceFunc(func(a theme.Appearance) {
//		attrs := theme.AttributesFor(a)
//		root.SetAttribute("data-theme", attrs.DataTheme)
//		body.SetClass(attrs.Class)
//	}))
//	defer policy.Close()
//	policy.Toggle()
package theme

import (
	"strings"
	"time"
)

// StorageKey is the key under which the selected mode is persisted.
const StorageKey = "portfolio-theme"

// Mode is the user-facing theme preference.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeAuto  Mode = "auto"
)

// Appearance is the resolved light/dark look. It is never persisted.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// Daylight hours for auto mode, as a half-open interval [dayStart, dayEnd).
const (
	dayStart = 6
	dayEnd   = 18
)

var modes = [...]Mode{ModeLight, ModeDark, ModeAuto}

// State pairs the selected mode with the appearance derived from it.
type State struct {
	Mode      Mode       `json:"mode"`
	Effective Appearance `json:"effective"`
}

// Attributes is what the rendering surface exposes so styling can key off
// the appearance without re-deriving it.
type Attributes struct {
	DataTheme string `json:"attribute"`
	Class     string `json:"class"`
}

// ParseMode maps a persisted or user-supplied value to a Mode.
func ParseMode(raw string) (Mode, bool) {
	v := Mode(strings.ToLower(strings.TrimSpace(raw)))
	for _, m := range modes {
		if v == m {
			return m, true
		}
	}
	return "", false
}

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark || m == ModeAuto
}

// Resolve returns the appearance for mode at the given time. Explicit modes
// override the clock; auto is light from 06:00 until 18:00.
func Resolve(mode Mode, now time.Time) Appearance {
	switch mode {
	case ModeLight:
		return AppearanceLight
	case ModeDark:
		return AppearanceDark
	}

	hour := now.Hour()
	if hour >= dayStart && hour < dayEnd {
		return AppearanceLight
	}
	return AppearanceDark
}

// Opposite returns the other appearance.
func (a Appearance) Opposite() Appearance {
	if a == AppearanceLight {
		return AppearanceDark
	}
	return AppearanceLight
}

// ClassName is the top-level style-selection class for a.
func (a Appearance) ClassName() string {
	if a == AppearanceLight {
		return "light-theme"
	}
	return "dark-theme"
}

// AttributesFor builds the surface attributes for a.
func AttributesFor(a Appearance) Attributes {
	return Attributes{DataTheme: string(a), Class: a.ClassName()}
}
