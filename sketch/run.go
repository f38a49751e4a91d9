// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"context"
	"time"

	"cogentcore.org/sketch/timing"
)

// RunOptions configures [Sketch.Run].
type RunOptions struct {

	// Frames is the number of frames to draw before returning;
	// zero or negative runs until the context is done.
	Frames int
}

// Static reports whether the sketch draws a single frame.
func (s *Sketch) Static() bool {
	return s.FrameRate <= 0
}

// Render draws the given number of frames immediately, with ticks
// spaced exactly one frame apart starting at frame 0. A static
// sketch draws once.
func (s *Sketch) Render(draw DrawFunc, frames int) {
	if s.Static() {
		frames = 1
	}
	var start time.Time
	timer := timing.NewTimer(s.FrameRate, start)
	per := timing.FrameDuration(s.FrameRate)
	for i := range max(frames, 1) {
		draw(s, timer.Tick(start.Add(time.Duration(i)*per)))
	}
}

// Run draws the sketch in real time at its frame rate until the
// requested number of frames is drawn or ctx is done. A static
// sketch draws once and returns. Run returns ctx.Err() only when
// the context ends before a requested frame count is reached.
func (s *Sketch) Run(ctx context.Context, draw DrawFunc, opts RunOptions) error {
	if s.Static() {
		draw(s, timing.Tick{NewFrame: true})
		return nil
	}
	timer := timing.NewTimer(s.FrameRate, time.Now())
	ticker := time.NewTicker(timing.FrameDuration(s.FrameRate))
	defer ticker.Stop()

	drawn := 0
	tick := func(now time.Time) {
		tk := timer.Tick(now)
		if tk.NewFrame {
			draw(s, tk)
			drawn++
		}
	}
	tick(timer.Start())
	for opts.Frames <= 0 || drawn < opts.Frames {
		select {
		case <-ctx.Done():
			s.Logger.Debug("sketch stopped", "title", s.Title, "frames", drawn)
			if opts.Frames > 0 {
				return ctx.Err()
			}
			return nil
		case now := <-ticker.C:
			tick(now)
		}
	}
	s.Logger.Debug("sketch done", "title", s.Title, "frames", drawn)
	return nil
}
