// SPDX-License-Identifier: Unlicense OR MIT

// Package ios draws toggles in the style of iOS check boxes and switches.
//
// As in package widget/material of Gio, the control is split into the
// stateful widget.Toggle, which handles input, geometry and animation, and
// a stateless style that paints it:
//
//	toggle := widget.New(widget.ShowGlyphs(true))
//
//	ios.Switch(toggle).Layout(gtx)
//
// Adjust the style fields to change colors for a single toggle:
//
//	s := ios.CheckBox(toggle)
//	s.Knob = color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
//	s.Layout(gtx)
package ios
