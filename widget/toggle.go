// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"github.com/iosfx/toggle/internal/anim"
	"github.com/iosfx/toggle/internal/f32color"
)

// Animation duration bounds and default.
const (
	MinDuration     = 10 * time.Millisecond
	MaxDuration     = 500 * time.Millisecond
	DefaultDuration = 250 * time.Millisecond
)

// DefaultAccent is the background color of a checked toggle.
var DefaultAccent = color.NRGBA{R: 75, G: 216, B: 99, A: 0xff}

// Default outer size bounds.
var (
	DefaultPreferred = Size{W: 38, H: 23}
	DefaultMin       = Size{W: 20, H: 12}
	DefaultMax       = Size{W: 1024, H: 1024}
)

// Size is a width and height in device independent pixels.
type Size struct {
	W, H unit.Dp
}

// or replaces zero components of s with the components of def.
func (s Size) or(def Size) Size {
	if s.W == 0 {
		s.W = def.W
	}
	if s.H == 0 {
		s.H = def.H
	}
	return s
}

// Offset is a translation in device independent pixels.
type Offset struct {
	X, Y unit.Dp
}

// Toggle is an animated two state control. The zero value is an
// unchecked toggle with default settings.
//
// Toggle keeps the geometry of its shapes in sync with its laid out size
// and animates them whenever its value is set. Drawing is left to a style
// such as ios.ToggleStyle.
type Toggle struct {
	// OnChange, if non-nil, is called with the new value whenever the
	// value changes.
	OnChange func(on bool)

	// Preferred, Min and Max bound the outer size of the toggle. Zero
	// components select DefaultPreferred, DefaultMin and DefaultMax.
	Preferred, Min, Max Size
	// Padding is subtracted from the outer size before fitting the
	// toggle shapes.
	Padding layout.Inset
	// Scale scales the laid out toggle about its center. Zero components
	// mean no scaling.
	Scale f32.Point
	// Translate moves the laid out toggle.
	Translate Offset

	initialized bool

	on         bool
	accent     color.NRGBA
	duration   time.Duration
	showGlyphs bool

	box      image.Point
	geom     Geometry
	visual   Visual
	trans    transition
	timeline anim.Timeline
	click    gesture.Click
}

// New returns a toggle configured by opts.
func New(opts ...Option) *Toggle {
	t := new(Toggle)
	t.init()
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *Toggle) init() {
	if t.initialized {
		return
	}
	t.initialized = true
	t.accent = DefaultAccent
	t.duration = DefaultDuration
	t.visual = neutralVisual
}

// On reports whether the toggle is checked.
func (t *Toggle) On() bool {
	return t.on
}

// SetOn sets the value and animates the shapes towards it. Setting the
// current value restarts its animation.
func (t *Toggle) SetOn(on bool) {
	t.init()
	changed := t.on != on
	t.on = on
	t.trans = newTransition(on, t.duration)
	t.timeline.Play(t.duration)
	if changed && t.OnChange != nil {
		t.OnChange(on)
	}
}

// Toggle flips the value.
func (t *Toggle) Toggle() {
	t.SetOn(!t.On())
}

// AccentColor returns the background color shown while checked.
func (t *Toggle) AccentColor() color.NRGBA {
	t.init()
	return t.accent
}

// SetAccentColor sets the background color shown while checked.
func (t *Toggle) SetAccentColor(c color.NRGBA) {
	t.init()
	t.accent = c
}

// Duration returns the animation duration.
func (t *Toggle) Duration() time.Duration {
	t.init()
	return t.duration
}

// SetDuration sets the animation duration, clamped to
// [MinDuration, MaxDuration]. The running animation keeps its duration.
func (t *Toggle) SetDuration(d time.Duration) {
	t.init()
	t.duration = clampDuration(d)
}

// ShowGlyphs reports whether the on and off glyphs are visible.
func (t *Toggle) ShowGlyphs() bool {
	return t.showGlyphs
}

// SetShowGlyphs shows or hides the on and off glyphs immediately.
func (t *Toggle) SetShowGlyphs(show bool) {
	t.showGlyphs = show
}

// Animating reports whether an animation is in flight.
func (t *Toggle) Animating() bool {
	return t.timeline.Running()
}

// Visual returns the animated state as of the most recent Tick.
func (t *Toggle) Visual() Visual {
	t.init()
	return t.visual
}

// Geometry returns the shapes as of the most recent Resize, with the knob
// at its animated position.
func (t *Toggle) Geometry() Geometry {
	t.init()
	g := t.geom
	if g.Valid() {
		g.Knob = g.KnobAt(t.visual.Knob)
	}
	return g
}

// BackgroundColor returns the animated background color, blended from
// neutral to the accent color.
func (t *Toggle) BackgroundColor(neutral color.NRGBA) color.NRGBA {
	t.init()
	return f32color.Lerp(neutral, t.accent, t.visual.Accent)
}

// Resize fits the toggle shapes to the box w×h, keeping the aspect ratio,
// and snaps the knob to the end matching the value. An empty box leaves
// the geometry unchanged and Resize returns false.
func (t *Toggle) Resize(w, h float32) bool {
	t.init()
	g, ok := Layout(w, h)
	if !ok {
		return false
	}
	t.geom = g
	t.visual.Knob = knobPos(t.on)
	return true
}

// Tick advances the animation to now and reports whether it is still
// running.
func (t *Toggle) Tick(now time.Time) bool {
	t.init()
	if !t.timeline.Running() {
		return false
	}
	elapsed, running := t.timeline.Tick(now)
	t.visual = t.trans.at(elapsed)
	return running
}

// Update processes pointer presses and reports whether the toggle was
// flipped by the user.
func (t *Toggle) Update(gtx layout.Context) bool {
	t.init()
	toggled := false
	for {
		e, ok := t.click.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind == gesture.KindPress {
			t.Toggle()
			toggled = true
		}
	}
	return toggled
}

// Layout processes input, fits the shapes to the constrained size and
// advances the animation. It then lays out w, typically a style, with
// exact constraints equal to the fitted toggle, centered and transformed
// according to Scale and Translate.
func (t *Toggle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	t.Update(gtx)
	size := t.outerSize(gtx)
	inner := image.Pt(
		size.X-gtx.Dp(t.Padding.Left)-gtx.Dp(t.Padding.Right),
		size.Y-gtx.Dp(t.Padding.Top)-gtx.Dp(t.Padding.Bottom),
	)
	if inner != t.box {
		t.box = inner
		t.Resize(float32(inner.X), float32(inner.Y))
	}
	if t.Tick(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	dims := layout.Dimensions{Size: size}
	if !t.geom.Valid() {
		return dims
	}

	defer op.Affine(t.transform(gtx, size)).Push(gtx.Ops).Pop()
	bounds := image.Rectangle{Max: image.Pt(
		int(math.Ceil(float64(t.geom.Width))),
		int(math.Ceil(float64(t.geom.Height))),
	)}
	area := clip.UniformRRect(bounds, bounds.Dy()/2).Push(gtx.Ops)
	semantic.CheckBox.Add(gtx.Ops)
	semantic.SelectedOp(t.on).Add(gtx.Ops)
	pointer.CursorPointer.Add(gtx.Ops)
	t.click.Add(gtx.Ops)
	area.Pop()

	gtx.Constraints = layout.Exact(bounds.Max)
	w(gtx)
	return dims
}

// outerSize returns the preferred size clamped by the size bounds and the
// incoming constraints.
func (t *Toggle) outerSize(gtx layout.Context) image.Point {
	pref := t.Preferred.or(DefaultPreferred)
	mn := t.Min.or(DefaultMin)
	mx := t.Max.or(DefaultMax)
	sz := image.Pt(
		clampInt(gtx.Dp(pref.W), gtx.Dp(mn.W), gtx.Dp(mx.W)),
		clampInt(gtx.Dp(pref.H), gtx.Dp(mn.H), gtx.Dp(mx.H)),
	)
	return gtx.Constraints.Constrain(sz)
}

// transform centers the fitted toggle in the outer size, then applies
// Scale about the center and Translate.
func (t *Toggle) transform(gtx layout.Context, size image.Point) f32.Affine2D {
	fsize := layout.FPt(size)
	off := f32.Pt((fsize.X-t.geom.Width)*.5, (fsize.Y-t.geom.Height)*.5)
	aff := f32.Affine2D{}.Offset(off)
	sx, sy := t.Scale.X, t.Scale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sx != 1 || sy != 1 {
		aff = aff.Scale(fsize.Mul(.5), f32.Pt(sx, sy))
	}
	return aff.Offset(f32.Pt(float32(gtx.Dp(t.Translate.X)), float32(gtx.Dp(t.Translate.Y))))
}

func knobPos(on bool) float32 {
	if on {
		return 1
	}
	return 0
}

func clampDuration(d time.Duration) time.Duration {
	if d < MinDuration {
		return MinDuration
	}
	if d > MaxDuration {
		return MaxDuration
	}
	return d
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
