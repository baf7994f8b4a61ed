package scene

import (
	"image"
	"image/color"

	"balls/internal/physics"
)

var colorRed = color.NRGBA{R: 200, G: 30, B: 30, A: 255}

func barImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, colorRed)
		}
	}
	return img
}

func rectsOverlap(a, b *physics.Body) bool {
	amin, amax := a.Position.Sub(a.HalfExtent), a.Position.Add(a.HalfExtent)
	bmin, bmax := b.Position.Sub(b.HalfExtent), b.Position.Add(b.HalfExtent)
	return amin.X < bmax.X && bmin.X < amax.X && amin.Y < bmax.Y && bmin.Y < amax.Y
}
