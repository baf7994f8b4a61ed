// Package render draws scene snapshots with raylib.
package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"balls/internal/scene"
	"balls/internal/sprite"
)

// Target is the surface a frame is drawn onto. Run passes it to every draw call.
type Target struct {
	Width      int32
	Height     int32
	Background rl.Color
}

// Renderer uploads sprite frames as textures on first use and blits bodies.
// It must only be used between window open and close.
type Renderer struct {
	textures map[*sprite.Frame]rl.Texture2D
}

// New returns a renderer with no textures loaded.
func New() *Renderer {
	return &Renderer{textures: make(map[*sprite.Frame]rl.Texture2D)}
}

// Draw blits every body's current frame with its rect's top-left at the snapped position.
// Held bodies are drawn too, at the pointer.
func (r *Renderer) Draw(t Target, bodies []scene.BodyState) {
	for _, b := range bodies {
		if b.Frame == nil {
			continue
		}
		x := snap(float32(b.Position.X - b.HalfExtent.X))
		y := snap(float32(b.Position.Y - b.HalfExtent.Y))
		if x >= float32(t.Width) || y >= float32(t.Height) {
			continue
		}
		rl.DrawTextureV(r.texture(b.Frame), rl.NewVector2(x, y), rl.White)
	}
}

func (r *Renderer) texture(f *sprite.Frame) rl.Texture2D {
	if tex, ok := r.textures[f]; ok {
		return tex
	}
	img := rl.NewImageFromImage(f.Image)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	r.textures[f] = tex
	return tex
}

// Loaded returns the number of textures on the GPU.
func (r *Renderer) Loaded() int {
	return len(r.textures)
}

// Unload frees every texture. Call before the window closes.
func (r *Renderer) Unload() {
	for f, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, f)
	}
}

// snap rounds to the nearest whole pixel so sprites do not shimmer.
func snap(v float32) float32 {
	return math32.Floor(v + 0.5)
}
