// Package input turns polled pointer state into discrete events.
package input

import (
	"balls/internal/event"
	"balls/internal/vec"
)

// buttons lists the tracked buttons in the order their events are emitted.
var buttons = [...]event.Button{event.ButtonLeft, event.ButtonMiddle, event.ButtonRight}

// State is the pointer as polled once per frame.
type State struct {
	Pos  vec.Vec2
	Down [len(buttons)]bool // indexed by Button-1
}

// Held returns the set of buttons down in s.
func (s State) Held() event.Buttons {
	var set event.Buttons
	for i, b := range buttons {
		if s.Down[i] {
			set = set.With(b)
		}
	}
	return set
}

// Diff returns the events that take the pointer from prev to cur: presses first (at the
// new position), then motion, then releases. Motion carries the displacement since prev.
func Diff(prev, cur State) []event.Event {
	var out []event.Event
	for i, b := range buttons {
		if cur.Down[i] && !prev.Down[i] {
			out = append(out, event.ButtonDown{Pos: cur.Pos, Button: b})
		}
	}
	if cur.Pos != prev.Pos {
		out = append(out, event.Motion{Pos: cur.Pos, Rel: cur.Pos.Sub(prev.Pos), Buttons: cur.Held()})
	}
	for i, b := range buttons {
		if !cur.Down[i] && prev.Down[i] {
			out = append(out, event.ButtonUp{Pos: cur.Pos, Button: b})
		}
	}
	return out
}
