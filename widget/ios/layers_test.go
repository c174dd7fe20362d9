// SPDX-License-Identifier: Unlicense OR MIT

package ios

import (
	"slices"
	"testing"
	"time"

	"github.com/iosfx/toggle/widget"
)

func TestLayersGlyphs(t *testing.T) {
	tg := widget.New()
	s := CheckBox(tg)
	if got, want := s.layers(tg.Visual()), []layer{layerBackground, layerFill, layerShadow, layerKnob}; !slices.Equal(got, want) {
		t.Errorf("hidden glyphs: layers = %v, want %v", got, want)
	}

	tg.SetShowGlyphs(true)
	if got, want := s.layers(tg.Visual()), []layer{layerBackground, layerOne, layerFill, layerZero, layerShadow, layerKnob}; !slices.Equal(got, want) {
		t.Errorf("shown glyphs: layers = %v, want %v", got, want)
	}

	// Checked: the fill overlay and the off glyph have faded out.
	tg.SetOn(true)
	start := time.Unix(10, 0)
	tg.Tick(start)
	tg.Tick(start.Add(time.Second))
	if got, want := s.layers(tg.Visual()), []layer{layerBackground, layerOne, layerShadow, layerKnob}; !slices.Equal(got, want) {
		t.Errorf("checked: layers = %v, want %v", got, want)
	}

	tg.SetShowGlyphs(false)
	if got, want := s.layers(tg.Visual()), []layer{layerBackground, layerShadow, layerKnob}; !slices.Equal(got, want) {
		t.Errorf("checked, hidden glyphs: layers = %v, want %v", got, want)
	}
}

func TestLayersNoShadow(t *testing.T) {
	s := CheckBox(widget.New())
	s.Shadow.A = 0
	if slices.Contains(s.layers(s.Toggle.Visual()), layerShadow) {
		t.Error("transparent shadow is painted")
	}
}
