// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timing provides a frame clock for animated sketches
// and small helpers for cyclic values and repetition.
package timing

import (
	"math"
	"time"
)

// Timer turns wall clock times into frame numbers at a fixed
// frame rate. It is not safe for concurrent use.
type Timer struct {

	// FrameRate is the number of frames per second.
	// Zero or negative keeps every tick on frame 0.
	FrameRate float64

	start     time.Time
	prev      time.Time
	prevFrame int
}

// Tick is the state of a [Timer] at one point in time.
type Tick struct {

	// Elapsed is the time since the timer started.
	Elapsed time.Duration

	// Millis is Elapsed in whole milliseconds.
	Millis int64

	// Seconds is Elapsed in whole seconds.
	Seconds int64

	// FrameNum is the whole frame number since the start.
	FrameNum int

	// NewFrame is whether FrameNum differs from the previous tick.
	NewFrame bool

	// Delta is the time since the previous tick.
	Delta time.Duration
}

// NewTimer returns a timer at the given frame rate starting at start.
func NewTimer(frameRate float64, start time.Time) *Timer {
	return &Timer{FrameRate: frameRate, start: start, prev: start, prevFrame: -1}
}

// Start returns the time the timer started.
func (t *Timer) Start() time.Time {
	return t.start
}

// Tick advances the timer to now and returns its state. The first
// tick at the start time is frame 0 and is a new frame.
func (t *Timer) Tick(now time.Time) Tick {
	el := now.Sub(t.start)
	tk := Tick{
		Elapsed: el,
		Millis:  el.Milliseconds(),
		Seconds: int64(math.Floor(el.Seconds())),
		Delta:   now.Sub(t.prev),
	}
	if t.FrameRate > 0 {
		perFrame := 1000 / t.FrameRate
		tk.FrameNum = int(math.Floor(float64(el) / float64(time.Millisecond) / perFrame))
	}
	tk.NewFrame = tk.FrameNum != t.prevFrame
	t.prev = now
	t.prevFrame = tk.FrameNum
	return tk
}

// FrameDuration returns the duration of one frame at the given rate
// rounded up to a whole nanosecond, so n frame durations always
// reach frame n. A non-positive rate gives 0.
func FrameDuration(frameRate float64) time.Duration {
	if frameRate <= 0 {
		return 0
	}
	return time.Duration(math.Ceil(float64(time.Second) / frameRate))
}

// Cycle returns sin(elapsed*freq + phase)*mul + add, with elapsed in
// seconds, so freq is in radians per second.
func Cycle(elapsed time.Duration, freq, phase, mul, add float64) float64 {
	return math.Sin(elapsed.Seconds()*freq+phase)*mul + add
}

// Times calls fn n times with the iteration index.
func Times(n int, fn func(i int)) {
	for i := range n {
		fn(i)
	}
}
