// Package sprite loads ball images and produces rotated frames with their collision masks.
package sprite

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"balls/internal/mask"
)

// Frame is one rendered orientation of a sprite.
type Frame struct {
	Angle  int // degrees, counterclockwise, 0..359
	Image  *image.NRGBA
	Mask   *mask.Mask
	Width  int
	Height int
}

// Sprite is a source image plus lazily built rotated frames. Frames are cached per whole degree
// and shared by every body using the sprite.
type Sprite struct {
	Name      string
	base      *image.NRGBA
	threshold uint8
	frames    map[int]*Frame
}

// New wraps img as a sprite. The image is copied into NRGBA at origin (0,0).
func New(name string, img image.Image) *Sprite {
	b := img.Bounds()
	base := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(base, base.Bounds(), img, b.Min, draw.Src)
	return &Sprite{
		Name:      name,
		base:      base,
		threshold: mask.DefaultThreshold,
		frames:    make(map[int]*Frame),
	}
}

// Load decodes the image at path (png, gif, jpeg, bmp or webp). If diameter > 0 the image is
// scaled so its larger side equals diameter.
func Load(path string, diameter int) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode %s: %w", path, err)
	}
	if diameter > 0 {
		img = scale(img, diameter)
	}
	s := New(path, img)
	if s.base.Bounds().Empty() {
		return nil, fmt.Errorf("sprite: %s (%s) is empty", path, format)
	}
	return s, nil
}

func scale(img image.Image, diameter int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || max(w, h) == diameter {
		return img
	}
	f := float64(diameter) / float64(max(w, h))
	dw := max(1, int(math.Round(float64(w)*f)))
	dh := max(1, int(math.Round(float64(h)*f)))
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Procedural draws a shaded ball of the given diameter, used when no sprite file is available.
func Procedural(diameter int, c color.NRGBA) *Sprite {
	if diameter < 1 {
		diameter = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, diameter, diameter))
	r := float64(diameter) / 2
	// highlight sits up and to the left of center
	hx, hy := r*0.65, r*0.6
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			d := math.Hypot(fx-r, fy-r)
			if d > r {
				continue
			}
			light := 1 - 0.6*math.Min(1, math.Hypot(fx-hx, fy-hy)/(1.6*r))
			a := 255.0
			if edge := r - d; edge < 1 {
				a *= edge
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: shade(c.R, light),
				G: shade(c.G, light),
				B: shade(c.B, light),
				A: uint8(a * float64(c.A) / 255),
			})
		}
	}
	return New("procedural", img)
}

func shade(v uint8, light float64) uint8 {
	return uint8(math.Min(255, float64(v)*light+40*light*light))
}

// NormalizeAngle maps any whole-degree angle into 0..359.
func NormalizeAngle(angle int) int {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return angle
}

// Frame returns the sprite rotated counterclockwise by angle degrees. Rotation grows the
// bounds so no pixel is clipped; the mask is rebuilt from the rotated alpha.
func (s *Sprite) Frame(angle int) *Frame {
	angle = NormalizeAngle(angle)
	if f, ok := s.frames[angle]; ok {
		return f
	}
	img := s.base
	if angle != 0 {
		rotated := transform.Rotate(s.base, -float64(angle), &transform.RotationOptions{ResizeBounds: true})
		img = image.NewNRGBA(image.Rect(0, 0, rotated.Bounds().Dx(), rotated.Bounds().Dy()))
		draw.Draw(img, img.Bounds(), rotated, rotated.Bounds().Min, draw.Src)
	}
	f := &Frame{
		Angle:  angle,
		Image:  img,
		Mask:   mask.FromImage(img, s.threshold),
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}
	s.frames[angle] = f
	return f
}

// Size returns the unrotated width and height.
func (s *Sprite) Size() (w, h int) {
	return s.base.Bounds().Dx(), s.base.Bounds().Dy()
}

// Cached returns how many frames have been built.
func (s *Sprite) Cached() int {
	return len(s.frames)
}
