// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"
	"testing"
)

func TestLerpBoundary(t *testing.T) {
	for col := 0; col <= 0xFF; col++ {
		a := color.NRGBA{R: uint8(col), G: 0xFF - uint8(col), A: 0xFF}
		b := color.NRGBA{R: 0xFF - uint8(col), B: uint8(col), A: uint8(col)}
		if got := Lerp(a, b, 0); got != a {
			t.Errorf("Lerp(%v, %v, 0) = %v", a, b, got)
		}
		if got := Lerp(a, b, 1); got != b {
			t.Errorf("Lerp(%v, %v, 1) = %v", a, b, got)
		}
		if got := Lerp(a, b, -3); got != a {
			t.Errorf("Lerp(%v, %v, -3) = %v", a, b, got)
		}
		if got := Lerp(a, b, 7); got != b {
			t.Errorf("Lerp(%v, %v, 7) = %v", a, b, got)
		}
	}
}

func TestLerpMidpoint(t *testing.T) {
	gray := color.NRGBA{R: 229, G: 229, B: 229, A: 0xFF}
	green := color.NRGBA{R: 75, G: 216, B: 99, A: 0xFF}
	want := color.NRGBA{R: 152, G: 223, B: 164, A: 0xFF}
	if got := Lerp(gray, green, 0.5); got != want {
		t.Errorf("got %v expected %v", got, want)
	}
}

func TestMulAlpha(t *testing.T) {
	for alpha := 0; alpha <= 0xFF; alpha++ {
		in := color.NRGBA{R: 10, G: 20, B: 30, A: uint8(alpha)}
		if got := MulAlpha(in, 1); got != in {
			t.Errorf("MulAlpha(%v, 1) = %v", in, got)
		}
		if got := MulAlpha(in, 0); got.A != 0 || got.R != in.R {
			t.Errorf("MulAlpha(%v, 0) = %v", in, got)
		}
	}
	if got := MulAlpha(color.NRGBA{A: 200}, 0.5); got.A != 100 {
		t.Errorf("got alpha %v expected 100", got.A)
	}
}

var sink color.NRGBA

func BenchmarkLerp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = Lerp(color.NRGBA{R: byte(i), A: 0xFF}, color.NRGBA{G: byte(i >> 8), A: 0x50}, float32(i%100)/100)
	}
}
