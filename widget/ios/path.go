// SPDX-License-Identifier: Unlicense OR MIT

package ios

import (
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"

	"github.com/iosfx/toggle/widget"
)

// q is the cubic bezier control distance that approximates a quarter
// circle of radius 1.
const q = 4 * (math.Sqrt2 - 1) / 3
const iq = 1 - q

// roundRectPath returns the outline of r. The corner radius is limited to
// half the shorter side.
func roundRectPath(ops *op.Ops, r widget.RoundRect) clip.PathSpec {
	rad := min(r.Radius(), r.Dx()*.5, r.Dy()*.5)
	w, n, e, s := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(w+rad, n))
	p.LineTo(f32.Pt(e-rad, n))
	p.CubeTo(f32.Pt(e-rad*iq, n), f32.Pt(e, n+rad*iq), f32.Pt(e, n+rad)) // NE
	p.LineTo(f32.Pt(e, s-rad))
	p.CubeTo(f32.Pt(e, s-rad*iq), f32.Pt(e-rad*iq, s), f32.Pt(e-rad, s)) // SE
	p.LineTo(f32.Pt(w+rad, s))
	p.CubeTo(f32.Pt(w+rad*iq, s), f32.Pt(w, s-rad*iq), f32.Pt(w, s-rad)) // SW
	p.LineTo(f32.Pt(w, n+rad))
	p.CubeTo(f32.Pt(w, n+rad*iq), f32.Pt(w+rad*iq, n), f32.Pt(w+rad, n)) // NW
	p.Close()
	return p.End()
}

func circlePath(ops *op.Ops, c widget.Circle) clip.PathSpec {
	r := c.Radius
	return roundRectPath(ops, widget.RoundRect{
		Rect: widget.Rect{
			Min: f32.Pt(c.Center.X-r, c.Center.Y-r),
			Max: f32.Pt(c.Center.X+r, c.Center.Y+r),
		},
		Arc: 2 * r,
	})
}

func rectPath(ops *op.Ops, r widget.Rect) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(r.Min)
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.Close()
	return p.End()
}
