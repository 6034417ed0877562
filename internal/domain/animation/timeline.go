package animation

import "math"

// Timeline is the playback cursor over one Definition.
//
// Invariants: 0 <= frame < FrameCount, and after Advance the accumulator is
// in [0, FrameDuration).
type Timeline struct {
	def   *Definition
	time  float64
	frame int
}

// NewTimeline returns a timeline at frame 0 of def
func NewTimeline(def *Definition) Timeline {
	return Timeline{def: def}
}

// Definition returns the definition being played (nil for an empty timeline)
func (t *Timeline) Definition() *Definition { return t.def }

// Frame returns the current frame index
func (t *Timeline) Frame() int { return t.frame }

// Accumulated returns the time spent on the current frame
func (t *Timeline) Accumulated() float64 { return t.time }

// Reset rewinds to frame 0 with an empty accumulator
func (t *Timeline) Reset() {
	t.frame = 0
	t.time = 0
}

// Finished reports whether a non-looping timeline has reached its last frame.
// Looping timelines never finish.
func (t *Timeline) Finished() bool {
	if t.def == nil || t.def.loop {
		return false
	}
	return t.frame == t.def.frameCount-1
}

// Advance moves playback forward by dt seconds.
//
// Every whole frame duration contained in the accumulator advances the frame
// by one, wrapping when looping and parking on the last frame otherwise. The
// step count is computed in closed form. Negative or non-finite dt is ignored.
func (t *Timeline) Advance(dt float64) {
	if t.def == nil || !(dt > 0) || math.IsInf(dt, 1) {
		return
	}

	d := t.def.frameDuration
	t.time += dt
	if t.time < d {
		return
	}
	if math.IsInf(t.time, 1) {
		// Overflowed: the loop phase is unknowable, a clamped one is at its end.
		t.time = 0
		if !t.def.loop {
			t.frame = t.def.frameCount - 1
		}
		return
	}

	steps := math.Floor(t.time / d)
	if math.IsInf(steps, 1) {
		steps = math.MaxFloat64
		t.time = 0
	} else {
		t.time -= steps * d
	}
	// Guard against rounding pushing the remainder out of [0, d).
	if t.time < 0 || math.IsNaN(t.time) {
		t.time = 0
	}
	if t.time >= d {
		t.time = math.Mod(t.time, d)
		if t.time >= d {
			t.time = 0
		}
	}

	n := t.def.frameCount
	if t.def.loop {
		t.frame = (t.frame + int(math.Mod(steps, float64(n)))) % n
		return
	}

	remaining := float64(n - 1 - t.frame)
	if steps >= remaining {
		t.frame = n - 1
	} else {
		t.frame += int(steps)
	}
}
