// pkg/render/raster.go
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// circleSegments is the number of polygon edges used to approximate a disc.
const circleSegments = 24

type point struct{ x, y float64 }

// RasterSurface renders into an in-memory *image.RGBA. It needs no window or
// GPU and is used for headless snapshots and tests.
type RasterSurface struct {
	img     *image.RGBA
	z       *vector.Rasterizer
	opacity float64
	poly    []point
}

func NewRasterSurface() *RasterSurface {
	return &RasterSurface{
		img: image.NewRGBA(image.Rect(0, 0, 0, 0)),
		z:   vector.NewRasterizer(0, 0),
	}
}

// Resize reallocates the backing image. Previous content is discarded.
func (s *RasterSurface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.z = vector.NewRasterizer(width, height)
}

func (s *RasterSurface) Image() *image.RGBA { return s.img }

func (s *RasterSurface) Opacity() float64 { return s.opacity }

func (s *RasterSurface) SetOpacity(opacity float64) { s.opacity = opacity }

func (s *RasterSurface) FillRect(x, y, w, h float64, clr color.Color) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(clr), image.Point{}, draw.Over)
}

// StrokeLine draws the segment as a quad of the given width.
func (s *RasterSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	s.poly = append(s.poly[:0],
		point{x0 + nx, y0 + ny},
		point{x1 + nx, y1 + ny},
		point{x1 - nx, y1 - ny},
		point{x0 - nx, y0 - ny},
	)
	s.fillPolygon(clr)
}

func (s *RasterSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 || math.IsNaN(cx+cy+r) || math.IsInf(cx+cy+r, 0) {
		return
	}
	s.poly = s.poly[:0]
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		s.poly = append(s.poly, point{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	s.fillPolygon(clr)
}

// fillPolygon hands s.poly to the rasterizer unclipped; vector.Rasterizer
// handles vertices outside the image.
func (s *RasterSurface) fillPolygon(clr color.Color) {
	b := s.img.Bounds()
	if b.Empty() {
		return
	}
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
	s.z.MoveTo(float32(s.poly[0].x), float32(s.poly[0].y))
	for _, p := range s.poly[1:] {
		s.z.LineTo(float32(p.x), float32(p.y))
	}
	s.z.ClosePath()
	s.z.Draw(s.img, b, image.NewUniform(clr), image.Point{})
}
