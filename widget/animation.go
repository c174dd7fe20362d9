// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"github.com/iosfx/toggle/internal/anim"
)

// Visual is the animated state of a toggle's shapes.
type Visual struct {
	// FillScale and FillOpacity apply to the fill overlay.
	FillScale   float32
	FillOpacity float32
	// Accent blends the background from the neutral color (0) to the
	// accent color (1).
	Accent float32
	// Knob is the knob position, 0 at the off end and 1 at the on end.
	Knob float32
	// OneOpacity and ZeroOpacity apply to the on and off glyphs.
	OneOpacity  float32
	ZeroOpacity float32
}

// neutralVisual is the rest state of an unchecked toggle that has never
// been animated. Both glyphs are opaque; the fill overlay covers the
// on glyph.
var neutralVisual = Visual{
	FillScale:   1,
	FillOpacity: 1,
	OneOpacity:  1,
	ZeroOpacity: 1,
}

// accentVisual is the rest state of a toggle created checked.
var accentVisual = newTransition(true, DefaultDuration).end()

// transition is the set of key frames of one toggle animation.
type transition struct {
	fillScale   anim.Track
	fillOpacity anim.Track
	accent      anim.Track
	knob        anim.Track
	one         anim.Track
	zero        anim.Track
}

// newTransition builds the key frames animating towards on (toAccent) or
// off (toNeutral). Every track starts at zero; the glyph leaving view
// fades out during the first half.
func newTransition(on bool, d time.Duration) transition {
	half := d / 2
	track := func(from, to float32, end time.Duration) anim.Track {
		return anim.Track{
			Keys:  []anim.Key{{At: 0, Value: from}, {At: end, Value: to}},
			Curve: anim.EaseBoth,
		}
	}
	if on {
		return transition{
			fillScale:   track(1, 0, d),
			fillOpacity: track(1, 0, d),
			accent:      track(0, 1, d),
			knob:        track(0, 1, d),
			one:         track(0, 1, d),
			zero:        track(1, 0, half),
		}
	}
	return transition{
		fillScale:   track(0, 1, d),
		fillOpacity: track(0, 1, d),
		accent:      track(1, 0, d),
		knob:        track(1, 0, d),
		one:         track(1, 0, half),
		zero:        track(0, 1, d),
	}
}

// at evaluates every track at elapsed.
func (tr transition) at(elapsed time.Duration) Visual {
	return Visual{
		FillScale:   tr.fillScale.Value(elapsed),
		FillOpacity: tr.fillOpacity.Value(elapsed),
		Accent:      tr.accent.Value(elapsed),
		Knob:        tr.knob.Value(elapsed),
		OneOpacity:  tr.one.Value(elapsed),
		ZeroOpacity: tr.zero.Value(elapsed),
	}
}

// end returns the terminal state of the transition.
func (tr transition) end() Visual {
	return Visual{
		FillScale:   tr.fillScale.End(),
		FillOpacity: tr.fillOpacity.End(),
		Accent:      tr.accent.End(),
		Knob:        tr.knob.End(),
		OneOpacity:  tr.one.End(),
		ZeroOpacity: tr.zero.End(),
	}
}
