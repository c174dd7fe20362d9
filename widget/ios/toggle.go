// SPDX-License-Identifier: Unlicense OR MIT

package ios

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/iosfx/toggle/internal/f32color"
	"github.com/iosfx/toggle/widget"
)

// ToggleStyle paints a widget.Toggle. The background blends from Neutral
// to the toggle accent color.
type ToggleStyle struct {
	Neutral color.NRGBA
	Fill    color.NRGBA
	Knob    color.NRGBA
	Shadow  color.NRGBA
	// One and Zero color the on and off glyphs.
	One  color.NRGBA
	Zero color.NRGBA

	Toggle *widget.Toggle
}

// CheckBox returns the style of an iOS check box.
func CheckBox(t *widget.Toggle) ToggleStyle {
	return ToggleStyle{
		Neutral: rgb(0xe5e5e5),
		Fill:    rgb(0xffffff),
		Knob:    rgb(0xffffff),
		Shadow:  argb(0x40000000),
		One:     rgb(0xffffff),
		Zero:    rgb(0xb3b3b3),
		Toggle:  t,
	}
}

// Switch returns the style of an iOS switch: a cooler neutral track and a
// lighter knob shadow.
func Switch(t *widget.Toggle) ToggleStyle {
	s := CheckBox(t)
	s.Neutral = rgb(0xe9e9eb)
	s.Shadow = argb(0x26000000)
	s.Zero = rgb(0xa7a7ab)
	return s
}

// Layout updates the toggle and paints it.
func (s ToggleStyle) Layout(gtx layout.Context) layout.Dimensions {
	return s.Toggle.Layout(gtx, s.paint)
}

// layer is one of the painted toggle shapes.
type layer uint8

const (
	layerBackground layer = iota
	layerOne
	layerFill
	layerZero
	layerShadow
	layerKnob
)

// layers returns the visible shapes back to front. The glyphs are only
// painted while the toggle shows them.
func (s ToggleStyle) layers(v widget.Visual) []layer {
	glyphs := s.Toggle.ShowGlyphs()
	ls := []layer{layerBackground}
	if glyphs && v.OneOpacity > 0 {
		ls = append(ls, layerOne)
	}
	if v.FillScale > 0 && v.FillOpacity > 0 {
		ls = append(ls, layerFill)
	}
	if glyphs && v.ZeroOpacity > 0 {
		ls = append(ls, layerZero)
	}
	if s.Shadow.A > 0 {
		ls = append(ls, layerShadow)
	}
	return append(ls, layerKnob)
}

// paint draws the toggle shapes: background, on glyph, fill overlay, off
// glyph, knob shadow and knob.
func (s ToggleStyle) paint(gtx layout.Context) layout.Dimensions {
	dims := layout.Dimensions{Size: gtx.Constraints.Min}
	t := s.Toggle
	g := t.Geometry()
	if !g.Valid() {
		return dims
	}
	v := t.Visual()
	ops := gtx.Ops
	for _, l := range s.layers(v) {
		switch l {
		case layerBackground:
			paint.FillShape(ops, t.BackgroundColor(s.Neutral), clip.Outline{Path: roundRectPath(ops, g.Background)}.Op())
		case layerOne:
			paint.FillShape(ops, f32color.MulAlpha(s.One, v.OneOpacity), clip.Outline{Path: rectPath(ops, g.One)}.Op())
		case layerFill:
			fill := g.Fill.Scale(v.FillScale)
			paint.FillShape(ops, f32color.MulAlpha(s.Fill, v.FillOpacity), clip.Outline{Path: roundRectPath(ops, fill)}.Op())
		case layerZero:
			paint.FillShape(ops, f32color.MulAlpha(s.Zero, v.ZeroOpacity), clip.Stroke{
				Path:  circlePath(ops, g.Zero.Circle),
				Width: g.Zero.Stroke,
			}.Op())
		case layerShadow:
			drawShadow(gtx, g.Knob, g.Shadow, s.Shadow)
		case layerKnob:
			paint.FillShape(ops, s.Knob, clip.Outline{Path: circlePath(ops, g.Knob)}.Op())
		}
	}
	return dims
}

// drawShadow approximates a gaussian drop shadow with translucent discs
// of increasing radius.
func drawShadow(gtx layout.Context, knob widget.Circle, sh widget.Shadow, col color.NRGBA) {
	const layers = 4
	c := knob.Center
	c.Y += sh.OffsetY
	layer := f32color.MulAlpha(col, 1.0/layers)
	for i := layers; i > 0; i-- {
		disc := widget.Circle{
			Center: c,
			Radius: knob.Radius + sh.Blur*.5*float32(i)/layers,
		}
		paint.FillShape(gtx.Ops, layer, clip.Outline{Path: circlePath(gtx.Ops, disc)}.Op())
	}
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
