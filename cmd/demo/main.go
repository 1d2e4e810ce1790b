// Copyright © 2024 Galvanized Logic Inc.

// Command demo drives a physics.Simulation loaded from a YAML scene file
// through a fixed-step tick loop, optionally pacing it to a target rate
// and logging the debug overlay.
package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/ironvale/rigidphys/camera"
	"github.com/ironvale/rigidphys/input"
	"github.com/ironvale/rigidphys/math/lin"
	"github.com/ironvale/rigidphys/render"
)

func main() {
	scenePath := flag.String("scene", "", "path to scene YAML file")
	ticks := flag.Int("ticks", 600, "number of simulation ticks to run")
	fps := flag.Int("fps", 0, "pace ticks to this many per second (0 = unpaced)")
	debug := flag.Bool("debug", false, "log the debug overlay each tick")
	flag.Parse()

	if *scenePath == "" {
		slog.Error("demo: -scene is required")
		os.Exit(1)
	}

	cfg := newConfig(Scene(*scenePath), Ticks(*ticks), FPSTarget(*fps), Debug(*debug))

	sim, err := LoadScene(cfg.ScenePath)
	if err != nil {
		slog.Error("demo: failed to load scene", "error", err)
		os.Exit(1)
	}

	events := make(chan input.Event, 8)
	go drainSignals(events)

	reducer := input.NewReducer()
	cam := camera.NewOrbitController(lin.V3{}, 10, 1, 100)

	const dt = 1.0 / 60.0
	var timing Timing
	for tick := 0; tick < cfg.Ticks; tick++ {
		frameStart := time.Now()

		intent := reducer.Reduce(drainPending(events))
		if intent.Quit {
			slog.Info("demo: quit requested", "tick", tick)
			break
		}
		cam.Update(intent)

		if intent.Reset {
			sim.Reset()
		}

		updateStart := time.Now()
		if intent.AdvanceSimulation || intent.Tick {
			sim.Tick(dt)
		}
		timing.Update = time.Since(updateStart)
		timing.Ticks++
		timing.Elapsed += time.Since(frameStart)

		if cfg.Debug {
			overlay := render.BuildDebugOverlay(sim)
			slog.Info("tick", "tick", tick, "pairs", len(overlay.Pairs))
		}

		pace(cfg.FPSTarget, frameStart)
	}
	timing.Dump()
}

// drainPending drains whatever host-input events have arrived since the
// last frame without blocking, mirroring the teacher's device input loop
// draining its event channel at the top of each frame.
func drainPending(events <-chan input.Event) []input.Event {
	var pending []input.Event
	for {
		select {
		case e := <-events:
			pending = append(pending, e)
		default:
			return pending
		}
	}
}

// drainSignals is the demo's stand-in host-input producer: it owns the
// only goroutine boundary, translating OS interrupts into quit events so
// the frame loop can exit cleanly without polling os.Signal itself.
func drainSignals(events chan<- input.Event) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	for range sigs {
		events <- input.Event{Kind: input.EventQuit}
	}
}
