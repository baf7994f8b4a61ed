package physics

import (
	"fmt"

	"balls/internal/vec"
)

// DefaultGravity is the downward velocity gain per tick, in pixels/tick².
const DefaultGravity = 0.2

// ID identifies a body within a scene. IDs are dense: the body with ID n lives at index n
// of the scene's body slice.
type ID int

// Body is a 2D moving body: center position, velocity per tick, and half extents of its
// bounding rect. Inactive bodies (e.g. while dragged) are not integrated.
type Body struct {
	ID         ID
	Position   vec.Vec2
	Velocity   vec.Vec2
	HalfExtent vec.Vec2
	Active     bool
}

// NewBody returns an active body centered at position with the given velocity and size.
func NewBody(id ID, position, velocity vec.Vec2, width, height float64) *Body {
	return &Body{
		ID:         id,
		Position:   position,
		Velocity:   velocity,
		HalfExtent: vec.New(width/2, height/2),
		Active:     true,
	}
}

// Advance moves an active body by its velocity, then adds gravity to its vertical velocity.
func (b *Body) Advance(gravity float64) {
	if !b.Active {
		return
	}
	b.Position = b.Position.Add(b.Velocity)
	b.Velocity.Y += gravity
}

// SetKinematics overrides position and velocity. Both must be finite.
func (b *Body) SetKinematics(position, velocity vec.Vec2) {
	if !position.IsFinite() || !velocity.IsFinite() {
		panic(fmt.Sprintf("physics: non-finite kinematics for body %d: %v %v", b.ID, position, velocity))
	}
	b.Position = position
	b.Velocity = velocity
}

// SetSize changes the bounding rect size while keeping the center.
func (b *Body) SetSize(width, height float64) {
	b.HalfExtent = vec.New(width/2, height/2)
}

// Contains reports whether p lies inside the body's rect. The right and bottom edges are exclusive.
func (b *Body) Contains(p vec.Vec2) bool {
	lo := b.Position.Sub(b.HalfExtent)
	hi := b.Position.Add(b.HalfExtent)
	return p.X >= lo.X && p.X < hi.X && p.Y >= lo.Y && p.Y < hi.Y
}

// TopLeft returns the integer pixel of the rect's top-left corner. Masks are aligned to it.
func (b *Body) TopLeft() (x, y int) {
	return b.Position.Sub(b.HalfExtent).Round()
}
