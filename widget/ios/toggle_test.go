// SPDX-License-Identifier: Unlicense OR MIT

package ios_test

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/iosfx/toggle/widget"
	"github.com/iosfx/toggle/widget/ios"
)

func TestStyles(t *testing.T) {
	tg := widget.New()
	cb, sw := ios.CheckBox(tg), ios.Switch(tg)
	if cb.Toggle != tg || sw.Toggle != tg {
		t.Fatal("style does not reference its toggle")
	}
	if cb.Neutral == sw.Neutral {
		t.Error("switch and check box share the neutral color")
	}
	if cb.Knob.A != 0xff || cb.Fill.A != 0xff {
		t.Error("knob and fill must be opaque")
	}
}

func TestLayoutAnimates(t *testing.T) {
	var r input.Router
	tg := widget.New(widget.ShowGlyphs(true), widget.PreferredSize(76, 46))
	start := time.Unix(10, 0)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Constraints{Max: image.Pt(400, 400)},
		Now:         start,
	}
	style := ios.Switch(tg)
	frame := func(now time.Time) layout.Dimensions {
		gtx.Ops.Reset()
		gtx.Now = now
		dims := style.Layout(gtx)
		r.Frame(gtx.Ops)
		return dims
	}
	if dims := frame(start); dims.Size != image.Pt(76, 46) {
		t.Fatalf("dims = %v, want 76x46", dims.Size)
	}
	r.Queue(pointer.Event{
		Source:   pointer.Touch,
		Kind:     pointer.Press,
		Position: f32.Pt(38, 23),
	})
	frame(start)
	if !tg.On() || !tg.Animating() {
		t.Fatalf("press: on=%v animating=%v", tg.On(), tg.Animating())
	}
	frame(start.Add(100 * time.Millisecond))
	if v := tg.Visual(); v.Knob <= 0 || v.Knob >= 1 {
		t.Errorf("knob position mid animation = %v", v.Knob)
	}
	frame(start.Add(time.Second))
	if tg.Animating() {
		t.Error("animation still running")
	}
	if v := tg.Visual(); v.Knob != 1 || v.FillScale != 0 {
		t.Errorf("end visual = %+v", v)
	}
}

func TestLayoutEmpty(t *testing.T) {
	var r input.Router
	tg := widget.New()
	gtx := layout.Context{
		Ops:    new(op.Ops),
		Source: r.Source(),
	}
	if dims := ios.CheckBox(tg).Layout(gtx); dims.Size != (image.Point{}) {
		t.Errorf("dims = %v, want empty", dims.Size)
	}
}
