// Copyright © 2024 Galvanized Logic Inc.

package camera

import (
	"math"
	"testing"

	"github.com/ironvale/rigidphys/input"
	"github.com/ironvale/rigidphys/math/lin"
)

func TestOrbitWheelClampsDistance(t *testing.T) {
	c := NewOrbitController(lin.V3{}, 10, 2, 20)
	c.WheelScale = 1
	c.Update(input.FrameIntent{Buttons: map[input.MouseButton]bool{}, WheelDy: 100})
	if c.Distance != c.Near {
		t.Errorf("expected distance clamped to near=%v, got %v", c.Near, c.Distance)
	}
	c.Update(input.FrameIntent{Buttons: map[input.MouseButton]bool{}, WheelDy: -1000})
	if c.Distance != c.Far {
		t.Errorf("expected distance clamped to far=%v, got %v", c.Far, c.Distance)
	}
}

func TestOrbitPositionTracksCenterAtDistance(t *testing.T) {
	c := NewOrbitController(lin.V3{X: 1, Y: 2, Z: 3}, 5, 1, 50)
	got := lin.NewV3().Sub(&c.Position, &c.Center)
	if !lin.Aeq(got.Len(), 5) {
		t.Errorf("expected camera 5 units from center, got %v", got.Len())
	}
}

func TestOrbitDragOnlyRotatesWithLeftButtonHeld(t *testing.T) {
	c := NewOrbitController(lin.V3{}, 10, 1, 50)
	c.ThetaScale = 0.1
	before := c.Yaw
	c.Update(input.FrameIntent{Buttons: map[input.MouseButton]bool{}, MouseDx: 10})
	if c.Yaw != before {
		t.Error("yaw should not change without the left button held")
	}
	c.Update(input.FrameIntent{Buttons: map[input.MouseButton]bool{input.MouseLeft: true}, MouseDx: 10})
	if c.Yaw == before {
		t.Error("yaw should change when dragging with the left button held")
	}
}

func TestFpsPitchClampsToQuarterTurn(t *testing.T) {
	c := NewFpsController(lin.V3{})
	c.ThetaScale = 1
	c.Update(input.FrameIntent{Buttons: map[input.MouseButton]bool{input.MouseLeft: true}, MouseDy: 1000})
	if c.Pitch < -math.Pi/2 || c.Pitch > math.Pi/2 {
		t.Errorf("pitch %v exceeds +/- pi/2", c.Pitch)
	}
}

func TestFpsYawWrapsModuloTwoPi(t *testing.T) {
	c := NewFpsController(lin.V3{})
	c.Yaw = 2*math.Pi - 0.05
	c.Update(input.FrameIntent{Buttons: map[input.MouseButton]bool{}})
	if c.Yaw < 0 || c.Yaw >= 2*math.Pi {
		t.Errorf("yaw %v not wrapped into [0, 2pi)", c.Yaw)
	}
}

func TestFpsKeysTranslateAlongLocalAxes(t *testing.T) {
	c := NewFpsController(lin.V3{})
	c.MoveFact = 2
	start := c.Position
	c.Update(input.FrameIntent{
		Buttons: map[input.MouseButton]bool{},
		Pressed: map[input.KeyCode]bool{input.KeyW: true},
	})
	moved := lin.NewV3().Sub(&c.Position, &start)
	if !lin.Aeq(moved.Len(), 2) {
		t.Errorf("expected W to move 2 units forward, moved %v", moved.Len())
	}
}
