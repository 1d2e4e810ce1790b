// Copyright © 2024 Galvanized Logic Inc.

package input

// reducer.go folds a stream of host input events into a FrameIntent,
// grounded on device/input.go's key-duration map idiom (a held key stays
// in the map until its matching release event), simplified to plain
// pressed/released booleans since the simulator only needs edge triggers,
// not how long a key has been held.

// KeyCode enumerates the keys the simulator cares about. Host adapters
// translate their native key codes into this set.
type KeyCode int

const (
	KeyA KeyCode = iota
	KeyD
	KeyE
	KeyQ
	KeyR
	KeyS
	KeyW
	KeyZ
	KeyReturn
	KeySpace
	KeyTab
	KeyEscape
	KeyLCtrl
	KeyLShift
)

// MouseButton enumerates the mouse buttons the simulator reads.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// EventKind selects which fields of an Event are meaningful.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMotion
	EventMouseWheel
	EventQuit
)

// Event is a tagged union over every input the host can deliver in one
// frame's queue.
type Event struct {
	Kind   EventKind
	Key    KeyCode
	Button MouseButton

	X, Y, Dx, Dy     int
	WheelDx, WheelDy int
}

// FrameIntent is the reduced, renderer/simulation-facing view of one
// frame's input: persistent key/button state plus this frame's transient
// deltas and edge-triggered flags.
type FrameIntent struct {
	Pressed map[KeyCode]bool
	Buttons map[MouseButton]bool

	MouseX, MouseY, MouseDx, MouseDy int
	WheelDx, WheelDy                 int

	AdvanceSimulation bool
	Reset             bool
	Tick              bool
	Quit              bool
}

// Reducer holds the persistent key/button/mouse state across frames; its
// zero value is not usable, use NewReducer.
type Reducer struct {
	pressed           map[KeyCode]bool
	buttons           map[MouseButton]bool
	mouseX, mouseY    int
	advanceSimulation bool
}

// NewReducer returns a Reducer with advance_simulation starting true, per
// the rule that the simulation runs by default until the user pauses it.
func NewReducer() *Reducer {
	return &Reducer{
		pressed:           map[KeyCode]bool{},
		buttons:           map[MouseButton]bool{},
		advanceSimulation: true,
	}
}

// Reduce folds one frame's worth of events into a FrameIntent. Mouse
// motion and wheel deltas are accumulated across this call's events only
// and are not carried to the next call — the driver is expected to call
// Reduce once per frame with that frame's drained event queue.
func (r *Reducer) Reduce(events []Event) FrameIntent {
	intent := FrameIntent{}

	for _, e := range events {
		switch e.Kind {
		case EventKeyDown:
			r.pressed[e.Key] = true
		case EventKeyUp:
			wasPressed := r.pressed[e.Key]
			delete(r.pressed, e.Key)
			switch e.Key {
			case KeySpace:
				// Toggle only fires on key-up, and only if the key was
				// actually down, to guard against key-repeat KeyUp events.
				if wasPressed {
					r.advanceSimulation = !r.advanceSimulation
				}
			case KeyReturn:
				intent.Tick = true
			case KeyR:
				intent.Reset = true
			case KeyEscape:
				intent.Quit = true
			}
		case EventMouseButtonDown:
			r.buttons[e.Button] = true
		case EventMouseButtonUp:
			delete(r.buttons, e.Button)
		case EventMouseMotion:
			r.mouseX, r.mouseY = e.X, e.Y
			intent.MouseDx += e.Dx
			intent.MouseDy += e.Dy
		case EventMouseWheel:
			intent.WheelDx += e.WheelDx
			intent.WheelDy += e.WheelDy
		case EventQuit:
			intent.Quit = true
		}
	}

	intent.Pressed = make(map[KeyCode]bool, len(r.pressed))
	for k := range r.pressed {
		intent.Pressed[k] = true
	}
	intent.Buttons = make(map[MouseButton]bool, len(r.buttons))
	for b := range r.buttons {
		intent.Buttons[b] = true
	}
	intent.MouseX, intent.MouseY = r.mouseX, r.mouseY
	intent.AdvanceSimulation = r.advanceSimulation
	return intent
}
