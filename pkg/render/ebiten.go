// pkg/render/ebiten.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface is an offscreen ebiten image the field is painted on.
// The host composites it onto the screen at Opacity.
type EbitenSurface struct {
	img     *ebiten.Image
	width   int
	height  int
	opacity float64
}

func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{}
}

// Resize reallocates the backing image when the size changes.
func (s *EbitenSurface) Resize(width, height int) {
	if s.img != nil && s.width == width && s.height == height {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.width, s.height = width, height
	if width > 0 && height > 0 {
		s.img = ebiten.NewImage(width, height)
	}
}

func (s *EbitenSurface) Image() *ebiten.Image { return s.img }

func (s *EbitenSurface) Opacity() float64 { return s.opacity }

func (s *EbitenSurface) SetOpacity(opacity float64) { s.opacity = opacity }

func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), clr, true)
}

// DrawTo composites the surface onto dst with the current opacity.
func (s *EbitenSurface) DrawTo(dst *ebiten.Image) {
	if s.img == nil || s.opacity <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(s.opacity))
	dst.DrawImage(s.img, op)
}
