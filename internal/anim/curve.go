// SPDX-License-Identifier: Unlicense OR MIT

// Package anim implements key frame timelines driven by frame times.
package anim

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float32) float32

// Linear is the identity curve.
func Linear(t float32) float32 {
	return t
}

// EaseBoth accelerates quadratically over the first fifth of a segment,
// moves linearly through the middle and decelerates over the last fifth.
func EaseBoth(t float32) float32 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.2:
		return 3.125 * t * t
	case t > 0.8:
		return -3.125*t*t + 6.25*t - 2.125
	default:
		return 1.25*t - 0.125
	}
}
