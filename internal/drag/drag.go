// Package drag lets the pointer pick up a body, carry it, and throw it.
package drag

import (
	"fmt"

	"balls/internal/event"
	"balls/internal/physics"
	"balls/internal/vec"
)

// Controller binds at most one body to the left pointer button.
type Controller struct {
	held    physics.ID
	holding bool
	lastPos vec.Vec2
}

// New returns an idle controller.
func New() *Controller {
	return &Controller{}
}

// Held returns the dragged body ID, if any.
func (c *Controller) Held() (physics.ID, bool) {
	return c.held, c.holding
}

// LastPos returns the last pointer position seen while dragging.
func (c *Controller) LastPos() vec.Vec2 {
	return c.lastPos
}

// Handle applies ev to bodies and reports whether the controller consumed it.
// bodies is the scene arena: the body with ID n must be bodies[n].
//
// A left press on a body deactivates it and starts a drag; the first body in slice order
// containing the point wins. While dragging, motion moves the body to the pointer and sets
// its velocity to the motion's displacement, so the release throws it. A left release
// reactivates the body. Anything else is ignored.
func (c *Controller) Handle(ev event.Event, bodies []*physics.Body) bool {
	switch e := ev.(type) {
	case event.ButtonDown:
		if c.holding || e.Button != event.ButtonLeft {
			return false
		}
		b := Locate(bodies, e.Pos)
		if b == nil {
			return false
		}
		b.Active = false
		c.held, c.holding, c.lastPos = b.ID, true, e.Pos
		return true
	case event.Motion:
		if !c.holding {
			return false
		}
		b := c.lookup(bodies)
		b.SetKinematics(e.Pos, e.Rel)
		c.lastPos = e.Pos
		return true
	case event.ButtonUp:
		if !c.holding || e.Button != event.ButtonLeft {
			return false
		}
		c.lookup(bodies).Active = true
		c.holding = false
		return true
	}
	return false
}

func (c *Controller) lookup(bodies []*physics.Body) *physics.Body {
	i := int(c.held)
	if i < 0 || i >= len(bodies) || bodies[i] == nil || bodies[i].ID != c.held {
		panic(fmt.Sprintf("drag: held body %d is not in the scene", c.held))
	}
	return bodies[i]
}

// Locate returns the first body whose rect contains p, or nil.
func Locate(bodies []*physics.Body, p vec.Vec2) *physics.Body {
	for _, b := range bodies {
		if b.Contains(p) {
			return b
		}
	}
	return nil
}
