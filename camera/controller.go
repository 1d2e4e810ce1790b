// Copyright © 2024 Galvanized Logic Inc.

package camera

// controller.go implements the two camera modes, grounded on camera.go's
// pov-embedding (Loc/Rot, Move/Spin) idiom, reworked around an explicit
// yaw/pitch pair instead of an accumulated quaternion so the spec's pitch
// clamp and yaw wrap can be applied directly to the angles that drive them.

import (
	"math"

	"github.com/ironvale/rigidphys/input"
	"github.com/ironvale/rigidphys/math/lin"
)

// Mode selects which of the two control schemes Update applies.
type Mode int

const (
	ModeOrbit Mode = iota
	ModeFps
)

// pitchLimit keeps the spherical direction vector well defined; exactly
// π/2 would make Yaw meaningless (straight up/down), so it's pulled in
// slightly.
const pitchLimit = math.Pi/2 - 1e-3

// Controller holds one camera's live state. Orbit mode reads Center and
// Distance; Fps mode reads and writes Position directly.
type Controller struct {
	Mode Mode

	Center   lin.V3
	Position lin.V3
	Distance float64
	Near     float64
	Far      float64

	Yaw, Pitch float64 // radians

	WheelScale float64
	ThetaScale float64
	MoveFact   float64
}

// NewOrbitController returns a controller circling center at distance,
// clamped into [near,far] as the wheel zooms it.
func NewOrbitController(center lin.V3, distance, near, far float64) *Controller {
	c := &Controller{
		Mode: ModeOrbit, Center: center, Distance: lin.Clamp(distance, near, far),
		Near: near, Far: far, WheelScale: 0.5, ThetaScale: 0.01,
	}
	c.Position = c.orbitPosition()
	return c
}

// NewFpsController returns a controller that walks freely from position.
func NewFpsController(position lin.V3) *Controller {
	return &Controller{Mode: ModeFps, Position: position, ThetaScale: 0.01, MoveFact: 0.1}
}

// direction returns the unit look direction for the controller's current
// yaw (about world up) and pitch.
func (c *Controller) direction() lin.V3 {
	return lin.V3{
		X: math.Cos(c.Pitch) * math.Sin(c.Yaw),
		Y: math.Sin(c.Pitch),
		Z: math.Cos(c.Pitch) * math.Cos(c.Yaw),
	}
}

func (c *Controller) orbitPosition() lin.V3 {
	dir := c.direction()
	return *lin.NewV3().Sub(&c.Center, lin.NewV3().Scale(&dir, c.Distance))
}

func (c *Controller) clampPitch() {
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	} else if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
}

func wrapTwoPi(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// Update advances the controller by one frame's reduced input.
func (c *Controller) Update(intent input.FrameIntent) {
	switch c.Mode {
	case ModeOrbit:
		c.updateOrbit(intent)
	case ModeFps:
		c.updateFps(intent)
	}
}

func (c *Controller) updateOrbit(intent input.FrameIntent) {
	c.Distance = lin.Clamp(c.Distance-float64(intent.WheelDy)*c.WheelScale, c.Near, c.Far)
	if intent.Buttons[input.MouseLeft] {
		c.Yaw += float64(intent.MouseDx) * c.ThetaScale
		c.Pitch -= float64(intent.MouseDy) * c.ThetaScale
		c.clampPitch()
	}
	c.Position = c.orbitPosition()
}

func (c *Controller) updateFps(intent input.FrameIntent) {
	if intent.Buttons[input.MouseLeft] {
		c.Yaw += float64(intent.MouseDx) * c.ThetaScale
		c.Pitch -= float64(intent.MouseDy) * c.ThetaScale
	}
	c.clampPitch()
	c.Yaw = wrapTwoPi(c.Yaw)

	forward := c.direction()
	worldUp := lin.V3{Y: 1}
	right := *lin.NewV3().Cross(&forward, &worldUp)
	right.Unit()
	up := *lin.NewV3().Cross(&right, &forward)
	up.Unit()

	move := lin.V3{}
	if intent.Pressed[input.KeyW] {
		move.Add(&move, &forward)
	}
	if intent.Pressed[input.KeyS] {
		move.Sub(&move, &forward)
	}
	if intent.Pressed[input.KeyD] {
		move.Add(&move, &right)
	}
	if intent.Pressed[input.KeyA] {
		move.Sub(&move, &right)
	}
	if intent.Pressed[input.KeyE] {
		move.Add(&move, &up)
	}
	if intent.Pressed[input.KeyQ] {
		move.Sub(&move, &up)
	}
	move.Scale(&move, c.MoveFact)
	c.Position.Add(&c.Position, &move)
}
