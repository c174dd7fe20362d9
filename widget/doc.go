// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements an animated two state toggle. Toggle contains
// the persistent state, processes pointer presses and animates the
// geometry of its shapes; style packages such as widget/ios paint it.
//
// Toggle fits its shapes in a fixed 23:38 aspect ratio box and
// recomputes them whenever its laid out size changes. Setting the value
// plays a key frame animation between the neutral and accent states,
// driven by frame times; a new value replaces the running animation.
package widget
