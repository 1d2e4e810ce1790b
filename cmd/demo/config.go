// Copyright © 2024 Galvanized Logic Inc.

package main

// config.go is the demo binary's own functional-options config, the same
// Attr func(*Config) pattern the root vu package uses for engine startup
// options, repurposed for a headless simulation driver: how many ticks to
// run, whether to pace them to a target rate, and whether to log the
// debug overlay each tick.

// Config holds the demo driver's run-time options.
type Config struct {
	ScenePath string
	Ticks     int
	FPSTarget int // 0 disables pacing: run ticks back to back.
	Debug     bool
}

// Attr is one functional option applied over the Config defaults.
type Attr func(*Config)

// Scene sets the YAML scene file to load.
func Scene(path string) Attr {
	return func(c *Config) { c.ScenePath = path }
}

// Ticks bounds how many simulation steps the demo runs before exiting.
func Ticks(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.Ticks = n
		}
	}
}

// FPSTarget paces ticks to roughly fps steps per second. A non-positive
// value disables pacing.
func FPSTarget(fps int) Attr {
	return func(c *Config) { c.FPSTarget = fps }
}

// Debug turns on per-tick debug-overlay logging.
func Debug(on bool) Attr {
	return func(c *Config) { c.Debug = on }
}

func newConfig(attrs ...Attr) *Config {
	c := &Config{Ticks: 600}
	for _, attr := range attrs {
		attr(c)
	}
	return c
}
