package mask

import (
	"image"
	"image/color"
	"testing"
)

func disc(d int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	r := float64(d) / 2
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			fx, fy := float64(x)+0.5-r, float64(y)+0.5-r
			if fx*fx+fy*fy <= r*r {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
			}
		}
	}
	return img
}

func TestFromImage_Threshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{A: 127})
	img.SetNRGBA(2, 0, color.NRGBA{A: 128})
	m := FromImage(img, DefaultThreshold)
	if m.Get(0, 0) || m.Get(1, 0) || !m.Get(2, 0) {
		t.Errorf("threshold mismatch: %v %v %v", m.Get(0, 0), m.Get(1, 0), m.Get(2, 0))
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 12, 12))
	img.SetNRGBA(11, 11, color.NRGBA{A: 255})
	m := FromImage(img, DefaultThreshold)
	if w, h := m.Size(); w != 2 || h != 2 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	if !m.Get(1, 1) {
		t.Error("pixel not mapped to mask origin")
	}
}

func TestWideMaskCrossesWords(t *testing.T) {
	m := New(130, 2)
	m.Set(0, 0, true)
	m.Set(64, 1, true)
	m.Set(129, 1, true)
	if !m.Get(64, 1) || !m.Get(129, 1) || m.Get(63, 1) {
		t.Error("word boundary bits wrong")
	}
	m.Set(64, 1, false)
	if m.Get(64, 1) || m.Count() != 2 {
		t.Error("clear failed")
	}
	m.Set(500, 0, true)
	if m.Get(500, 0) || m.Get(-1, 0) {
		t.Error("out of range reads must be false")
	}
}

func TestOverlap(t *testing.T) {
	a := FromImage(disc(20), DefaultThreshold)
	b := FromImage(disc(20), DefaultThreshold)
	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"same place", 0, 0, true},
		{"half overlap", 10, 0, true},
		{"touching rect corners only", 18, 18, false},
		{"apart", 25, 0, false},
		{"negative offset", -15, 0, true},
		{"far negative", -40, -40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlap(b, tt.dx, tt.dy); got != tt.want {
				t.Errorf("Overlap(%d,%d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
			if got := b.Overlap(a, -tt.dx, -tt.dy); got != tt.want {
				t.Errorf("reverse Overlap(%d,%d) = %v, want %v", -tt.dx, -tt.dy, got, tt.want)
			}
		})
	}
}

func TestOverlapPoint(t *testing.T) {
	a := New(4, 4)
	b := New(4, 4)
	a.Set(3, 3, true)
	b.Set(1, 1, true)
	p, ok := a.OverlapPoint(b, 2, 2)
	if !ok || p != image.Pt(3, 3) {
		t.Errorf("OverlapPoint = %v %v, want (3,3) true", p, ok)
	}
	if _, ok := a.OverlapPoint(b, 1, 2); ok {
		t.Error("expected no overlap")
	}
}
