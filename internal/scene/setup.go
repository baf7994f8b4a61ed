package scene

import (
	"math/rand"

	"balls/internal/physics"
	"balls/internal/sprite"
	"balls/internal/vec"
)

// RandomSpawns places n balls uniformly over the surface, each with both velocity
// components drawn from [minSpeed, maxSpeed) and a random spin direction. All balls
// share spr.
func RandomSpawns(n int, surface physics.Size, minSpeed, maxSpeed float64, spr *sprite.Sprite, rng *rand.Rand) []Spawn {
	w, h := max(1, int(surface.Width)), max(1, int(surface.Height))
	out := make([]Spawn, 0, n)
	for i := 0; i < n; i++ {
		x, y := rng.Intn(w), rng.Intn(h)
		dx := minSpeed + rng.Float64()*(maxSpeed-minSpeed)
		dy := minSpeed + rng.Float64()*(maxSpeed-minSpeed)
		dir := 1
		if rng.Intn(2) == 0 {
			dir = -1
		}
		out = append(out, Spawn{
			Position: vec.New(float64(x), float64(y)),
			Velocity: vec.New(dx, dy),
			Sprite:   spr,
			Dir:      dir,
		})
	}
	return out
}
