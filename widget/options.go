// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/unit"
)

// Option configures a Toggle created by New.
type Option func(t *Toggle)

// On sets the initial value. Unlike SetOn, the shapes start at rest in the
// matching state and OnChange is not called.
func On(on bool) Option {
	return func(t *Toggle) {
		t.on = on
		t.timeline.Stop()
		t.visual = neutralVisual
		if on {
			t.visual = accentVisual
		}
	}
}

// AccentColor sets the background color shown while checked.
func AccentColor(c color.NRGBA) Option {
	return func(t *Toggle) {
		t.SetAccentColor(c)
	}
}

// Duration sets the animation duration, clamped to
// [MinDuration, MaxDuration].
func Duration(d time.Duration) Option {
	return func(t *Toggle) {
		t.SetDuration(d)
	}
}

// ShowGlyphs shows the on and off glyphs.
func ShowGlyphs(show bool) Option {
	return func(t *Toggle) {
		t.SetShowGlyphs(show)
	}
}

// PreferredSize sets the preferred outer size.
func PreferredSize(w, h unit.Dp) Option {
	return func(t *Toggle) {
		t.Preferred = Size{W: w, H: h}
	}
}

// MinSize sets the minimum outer size.
func MinSize(w, h unit.Dp) Option {
	return func(t *Toggle) {
		t.Min = Size{W: w, H: h}
	}
}

// MaxSize sets the maximum outer size.
func MaxSize(w, h unit.Dp) Option {
	return func(t *Toggle) {
		t.Max = Size{W: w, H: h}
	}
}

// Padding sets the inset between the outer size and the toggle shapes.
func Padding(in layout.Inset) Option {
	return func(t *Toggle) {
		t.Padding = in
	}
}

// Scale scales the laid out toggle about its center.
func Scale(x, y float32) Option {
	return func(t *Toggle) {
		t.Scale = f32.Pt(x, y)
	}
}

// Translate moves the laid out toggle.
func Translate(x, y unit.Dp) Option {
	return func(t *Toggle) {
		t.Translate = Offset{X: x, Y: y}
	}
}

// OnChange sets the function called when the value changes.
func OnChange(fn func(on bool)) Option {
	return func(t *Toggle) {
		t.OnChange = fn
	}
}
