// Package mask holds per-pixel collision masks built from sprite alpha channels.
package mask

import (
	"image"
	"math/bits"
)

// DefaultThreshold is the alpha value a pixel must exceed to count as solid.
const DefaultThreshold = 127

// Mask is a bitmap of solid pixels, one row of 64-bit words per image row.
type Mask struct {
	w, h  int
	words int // words per row
	bits  []uint64
}

// New returns an empty mask of the given size.
func New(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	words := (w + 63) / 64
	return &Mask{w: w, h: h, words: words, bits: make([]uint64, words*h)}
}

// FromImage marks every pixel whose alpha is above threshold. The mask origin is the
// image's Bounds().Min.
func FromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	limit := uint32(threshold) * 0x101
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if _, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA(); a > limit {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Size returns the mask width and height.
func (m *Mask) Size() (w, h int) {
	return m.w, m.h
}

// Get reports whether (x, y) is solid. Out-of-range points are never solid.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.words+x/64]&(1<<(uint(x)%64)) != 0
}

// Set marks (x, y) solid or clear. Out-of-range points are ignored.
func (m *Mask) Set(x, y int, solid bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := y*m.words + x/64
	bit := uint64(1) << (uint(x) % 64)
	if solid {
		m.bits[i] |= bit
	} else {
		m.bits[i] &^= bit
	}
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap reports whether m and other share a solid pixel when other's origin is placed
// at (dx, dy) in m's coordinates.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	_, ok := m.OverlapPoint(other, dx, dy)
	return ok
}

// OverlapPoint returns the first shared solid pixel, in m's coordinates, scanning rows top
// to bottom and columns left to right.
func (m *Mask) OverlapPoint(other *Mask, dx, dy int) (image.Point, bool) {
	x0, x1 := max(0, dx), min(m.w, dx+other.w)
	y0, y1 := max(0, dy), min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return image.Point{}, false
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}
