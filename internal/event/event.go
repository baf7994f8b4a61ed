// Package event defines the input and timer events the scene consumes. The set is closed:
// only the types declared here implement Event.
package event

import "balls/internal/vec"

// Event is one of Tick, ButtonDown, Motion, ButtonUp or Quit.
type Event interface {
	isEvent()
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return "unknown"
}

// Buttons is the set of buttons held during a motion event.
type Buttons uint8

// With returns the set plus b.
func (s Buttons) With(b Button) Buttons {
	return s | 1<<(b-1)
}

// Has reports whether b is held.
func (s Buttons) Has(b Button) bool {
	return b != 0 && s&(1<<(b-1)) != 0
}

// Tick is the fixed-interval physics step signal. Seq counts ticks from 1.
type Tick struct {
	Seq uint64
}

// ButtonDown is a pointer press at Pos.
type ButtonDown struct {
	Pos    vec.Vec2
	Button Button
}

// Motion is pointer movement to Pos; Rel is the displacement since the previous motion event.
type Motion struct {
	Pos     vec.Vec2
	Rel     vec.Vec2
	Buttons Buttons
}

// ButtonUp is a pointer release at Pos.
type ButtonUp struct {
	Pos    vec.Vec2
	Button Button
}

// Quit asks the loop to stop.
type Quit struct{}

func (Tick) isEvent()       {}
func (ButtonDown) isEvent() {}
func (Motion) isEvent()     {}
func (ButtonUp) isEvent()   {}
func (Quit) isEvent()       {}
