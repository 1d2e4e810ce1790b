// Copyright © 2024 Galvanized Logic Inc.

package main

// timing.go adapts the root vu package's Timing struct to the demo's
// tick loop: a tick here is what Timing called a render, Elapsed/Update
// carry the same meaning, and Dump logs through log/slog rather than
// fmt.Printf to match the physics package's own logging.

import (
	"log/slog"
	"time"
)

// Timing collects one reporting period's worth of loop numbers.
type Timing struct {
	Elapsed time.Duration // total loop time since the last report
	Update  time.Duration // time spent in the previous Tick call
	Ticks   int           // simulation ticks since the last report
}

// Zero resets all accumulated values.
func (t *Timing) Zero() {
	t.Elapsed = 0
	t.Update = 0
	t.Ticks = 0
}

// Dump logs the current period's numbers in milliseconds.
func (t *Timing) Dump() {
	const milliseconds = 1000.0
	slog.Info("tick timing",
		"elapsed_ms", t.Elapsed.Seconds()*milliseconds,
		"update_ms", t.Update.Seconds()*milliseconds,
		"ticks", t.Ticks,
	)
}

// pace sleeps the remainder of a frame period when fpsTarget is positive,
// so the loop steps at roughly fpsTarget ticks per second instead of as
// fast as possible.
func pace(fpsTarget int, frameStart time.Time) {
	if fpsTarget <= 0 {
		return
	}
	period := time.Second / time.Duration(fpsTarget)
	if elapsed := time.Since(frameStart); elapsed < period {
		time.Sleep(period - elapsed)
	}
}
