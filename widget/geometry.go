// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "gioui.org/f32"

// AspectRatio is the fixed height to width ratio of a toggle.
const AspectRatio float32 = 23.0 / 38.0

// Proportions of the child shapes, relative to the toggle height or width.
const (
	fillWidth    = 0.93421053
	fillHeight   = 0.89130435
	fillInset    = 0.05434783
	knobRadius   = 0.44565217
	oneWidth     = 0.0326087
	oneHeight    = 0.32608696
	oneCenterX   = 0.225
	zeroRadius   = 0.1413
	zeroCenterX  = 0.765
	zeroStroke   = 0.04
	shadowBlur   = 0.14
	shadowOffset = 0.065
)

// Rect is a floating point rectangle.
type Rect struct {
	Min, Max f32.Point
}

// Dx returns the width of r.
func (r Rect) Dx() float32 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float32 { return r.Max.Y - r.Min.Y }

// Center returns the center point of r.
func (r Rect) Center() f32.Point {
	return f32.Pt((r.Min.X+r.Max.X)*.5, (r.Min.Y+r.Max.Y)*.5)
}

// RoundRect is a rectangle with rounded corners. Arc is the diameter of
// the corner arcs; an Arc equal to the rectangle height gives a pill.
type RoundRect struct {
	Rect
	Arc float32
}

// Radius returns the corner radius.
func (r RoundRect) Radius() float32 { return r.Arc * .5 }

// Scale returns r scaled by s about its center.
func (r RoundRect) Scale(s float32) RoundRect {
	c := r.Center()
	hw, hh := r.Dx()*.5*s, r.Dy()*.5*s
	return RoundRect{
		Rect: Rect{
			Min: f32.Pt(c.X-hw, c.Y-hh),
			Max: f32.Pt(c.X+hw, c.Y+hh),
		},
		Arc: r.Arc * s,
	}
}

// Circle is a disc.
type Circle struct {
	Center f32.Point
	Radius float32
}

// Ring is a circle outline.
type Ring struct {
	Circle
	Stroke float32
}

// Shadow describes the drop shadow under the knob.
type Shadow struct {
	Blur    float32
	OffsetY float32
}

// Geometry is the layout of a toggle and its child shapes, in pixels
// relative to the top left corner of the toggle.
type Geometry struct {
	Width, Height float32

	Background RoundRect
	// Fill is the overlay that hides the accent colored background while
	// the toggle is off.
	Fill RoundRect
	// Knob is the knob at its off position.
	Knob Circle
	// One is the bar glyph shown on the on side.
	One Rect
	// Zero is the ring glyph shown on the off side.
	Zero   Ring
	Shadow Shadow
}

// Valid reports whether g has been computed from a positive size.
func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// KnobOffX is the knob center at the off end, flush with the left edge
// of the fill overlay.
func (g Geometry) KnobOffX() float32 {
	return g.Fill.Min.X + g.Knob.Radius
}

// KnobOnX is the knob center at the on end, flush with the right edge of
// the fill overlay.
func (g Geometry) KnobOnX() float32 {
	return g.Fill.Max.X - g.Knob.Radius
}

// KnobAt returns the knob positioned at pos, where 0 is the off end and 1
// the on end.
func (g Geometry) KnobAt(pos float32) Circle {
	k := g.Knob
	off, on := g.KnobOffX(), g.KnobOnX()
	switch {
	case pos <= 0:
		k.Center.X = off
	case pos >= 1:
		k.Center.X = on
	default:
		k.Center.X = off + (on-off)*pos
	}
	return k
}

// Fit shrinks the box w×h to the largest box of the toggle aspect ratio
// it contains.
func Fit(w, h float32) (float32, float32) {
	if AspectRatio*w > h {
		w = h / AspectRatio
	} else if h/AspectRatio > w {
		h = AspectRatio * w
	}
	return w, h
}

// Layout computes the geometry for a toggle in the box w×h. It returns
// false and a zero Geometry if the box is empty.
func Layout(w, h float32) (Geometry, bool) {
	if !(w > 0 && h > 0) {
		return Geometry{}, false
	}
	w, h = Fit(w, h)

	var g Geometry
	g.Width, g.Height = w, h
	g.Shadow = Shadow{Blur: h * shadowBlur, OffsetY: h * shadowOffset}
	g.Background = RoundRect{
		Rect: Rect{Max: f32.Pt(w, h)},
		Arc:  h,
	}

	ow, oh := h*oneWidth, h*oneHeight
	ox, oy := w*oneCenterX-ow*.5, (h-oh)*.5
	g.One = Rect{
		Min: f32.Pt(ox, oy),
		Max: f32.Pt(ox+ow, oy+oh),
	}

	inset := h * fillInset
	g.Fill = RoundRect{
		Rect: Rect{
			Min: f32.Pt(inset, inset),
			Max: f32.Pt(inset+w*fillWidth, inset+h*fillHeight),
		},
		Arc: h * fillHeight,
	}

	g.Zero = Ring{
		Circle: Circle{
			Center: f32.Pt(w*zeroCenterX, h*.5),
			Radius: h * zeroRadius,
		},
		Stroke: h * zeroStroke,
	}

	g.Knob.Radius = h * knobRadius
	g.Knob.Center = f32.Pt(g.KnobOffX(), h*.5)
	return g, true
}
