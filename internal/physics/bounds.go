package physics

import "balls/internal/vec"

// Size is the extent of the surface bodies bounce inside.
type Size struct {
	Width  float64
	Height float64
}

// Clamp reflects a body off the surface walls. On each axis, a rect poking out of the
// leading edge is moved back to touch it, then one poking out of the trailing edge is moved
// back to that edge; each fix negates the axis velocity. Axes are handled independently,
// so a corner hit reflects both components.
//
// A body larger than the surface on an axis trips both checks: the trailing edge wins the
// position and the two negations cancel.
func Clamp(b *Body, surface Size) (position, velocity vec.Vec2) {
	position, velocity = b.Position, b.Velocity
	position.X, velocity.X = reflect(position.X, velocity.X, b.HalfExtent.X, surface.Width)
	position.Y, velocity.Y = reflect(position.Y, velocity.Y, b.HalfExtent.Y, surface.Height)
	return position, velocity
}

// ClampTo applies Clamp to b in place.
func (b *Body) ClampTo(surface Size) {
	b.Position, b.Velocity = Clamp(b, surface)
}

func reflect(center, speed, half, extent float64) (float64, float64) {
	if center < half {
		center, speed = half, -speed
	}
	if center > extent-half {
		center, speed = extent-half, -speed
	}
	return center, speed
}
