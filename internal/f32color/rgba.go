// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color implements color helpers for animated painting.
package f32color

import (
	"image/color"
	"math"
)

// Lerp interpolates between two colors, channel by channel, in
// non-premultiplied sRGB. t is clamped to [0, 1].
func Lerp(a, b color.NRGBA, t float32) color.NRGBA {
	t = clampUnit(t)
	return color.NRGBA{
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
		A: lerpByte(a.A, b.A, t),
	}
}

// MulAlpha scales the alpha channel of c by alpha, clamped to [0, 1].
func MulAlpha(c color.NRGBA, alpha float32) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * float64(clampUnit(alpha))))
	return c
}

func lerpByte(a, b uint8, t float32) uint8 {
	v := float32(a) + (float32(b)-float32(a))*t
	return uint8(math.Round(float64(v)))
}

func clampUnit(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
