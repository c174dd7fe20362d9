// SPDX-License-Identifier: Unlicense OR MIT

package anim

import "time"

// Key is the value of a track at a point in a timeline.
type Key struct {
	At    time.Duration
	Value float32
}

// Track is a sequence of keys ordered by time. Each segment between two
// keys is interpolated with Curve.
type Track struct {
	Keys []Key
	// Curve eases every segment. A nil Curve is Linear.
	Curve Curve
}

// Value returns the track value at elapsed. The first key holds before
// it starts and the last key holds after it ends.
func (tr Track) Value(elapsed time.Duration) float32 {
	if len(tr.Keys) == 0 {
		return 0
	}
	curve := tr.Curve
	if curve == nil {
		curve = Linear
	}
	prev := tr.Keys[0]
	if elapsed <= prev.At {
		return prev.Value
	}
	for _, k := range tr.Keys[1:] {
		if elapsed < k.At {
			span := k.At - prev.At
			f := float32(elapsed-prev.At) / float32(span)
			return prev.Value + (k.Value-prev.Value)*curve(f)
		}
		prev = k
	}
	return prev.Value
}

// End returns the value of the last key.
func (tr Track) End() float32 {
	if len(tr.Keys) == 0 {
		return 0
	}
	return tr.Keys[len(tr.Keys)-1].Value
}

// Timeline measures the progress of a single animation. The start time
// is taken from the first Tick after Play, so that Play can be called
// outside a frame.
type Timeline struct {
	Duration time.Duration

	start   time.Time
	armed   bool
	running bool
}

// Play restarts the timeline from zero.
func (tl *Timeline) Play(d time.Duration) {
	tl.Duration = d
	tl.armed = true
	tl.running = true
}

// Stop ends the timeline as if it had completed.
func (tl *Timeline) Stop() {
	tl.armed = false
	tl.running = false
}

// Running reports whether the timeline has been played and not yet
// completed.
func (tl *Timeline) Running() bool {
	return tl.running
}

// Tick returns the time elapsed at now and whether the timeline is still
// running. A completed timeline reports its full duration.
func (tl *Timeline) Tick(now time.Time) (time.Duration, bool) {
	if !tl.running {
		return tl.Duration, false
	}
	if tl.armed {
		tl.start = now
		tl.armed = false
	}
	elapsed := now.Sub(tl.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= tl.Duration {
		tl.running = false
		return tl.Duration, false
	}
	return elapsed, true
}
