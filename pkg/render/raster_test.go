package render

import (
	"image/color"
	"math"
	"testing"
)

func TestRasterSurfaceDrawsPrimitives(t *testing.T) {
	s := NewRasterSurface()
	s.Resize(100, 80)

	bg := color.RGBA{10, 25, 47, 255}
	s.FillRect(0, 0, 100, 80, bg)
	if got := s.Image().RGBAAt(99, 79); got != bg {
		t.Fatalf("background pixel = %v, want %v", got, bg)
	}

	disc := color.RGBA{255, 215, 0, 255}
	s.FillCircle(50, 40, 3, disc)
	if got := s.Image().RGBAAt(50, 40); got.R < 250 || got.G < 210 || got.B > 5 {
		t.Errorf("disc centre = %v, want ~%v", got, disc)
	}
	if got := s.Image().RGBAAt(60, 40); got != bg {
		t.Errorf("pixel outside disc = %v, want background", got)
	}

	s.StrokeLine(10, 10.5, 40, 10.5, 1, color.NRGBA{100, 255, 218, 255})
	if got := s.Image().RGBAAt(25, 10); got.G <= bg.G {
		t.Errorf("line pixel not tinted: %v", got)
	}
}

func TestRasterSurfaceSkipsDegenerateShapes(t *testing.T) {
	s := NewRasterSurface()
	s.Resize(20, 20)

	// ни один вызов не должен паниковать
	s.StrokeLine(5, 5, 5, 5, 0.5, color.White)
	s.StrokeLine(math.NaN(), 0, 1, 1, 0.5, color.White)
	s.FillCircle(math.NaN(), math.NaN(), 2, color.White)
	s.FillCircle(math.Inf(1), 3, 2, color.White)
	s.FillCircle(-500, -500, 3, color.White)
	s.StrokeLine(-100, -100, 300, 300, 1, color.White)
	s.FillCircle(19, 19, 3, color.White) // частично за краем

	if got := s.Image().RGBAAt(10, 10); got.A == 0 {
		t.Error("diagonal line crossing the image left no mark")
	}
}

func TestRasterSurfaceOffImageVertices(t *testing.T) {
	s := NewRasterSurface()
	s.Resize(20, 20)

	// квадрат целиком накрывает изображение, все вершины за краем
	s.poly = append(s.poly[:0], point{-100, -100}, point{300, -100}, point{300, 300}, point{-100, 300})
	s.fillPolygon(color.White)
	for _, p := range []struct{ x, y int }{{0, 0}, {10, 10}, {19, 19}} {
		if got := s.Image().RGBAAt(p.x, p.y); got != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("pixel (%d,%d) = %v, want white", p.x, p.y, got)
		}
	}
}

func TestRasterSurfacePartiallyOffImageDisc(t *testing.T) {
	s := NewRasterSurface()
	s.Resize(20, 20)
	s.FillCircle(20, 20, 4, color.White)

	if got := s.Image().RGBAAt(19, 19); got.A == 0 {
		t.Error("visible part of the disc was not drawn")
	}
	if got := s.Image().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel far from the disc = %v, want transparent", got)
	}
}

func TestRasterSurfaceResizeAndOpacity(t *testing.T) {
	s := NewRasterSurface()
	s.Resize(1600, 1200)
	if b := s.Image().Bounds(); b.Dx() != 1600 || b.Dy() != 1200 {
		t.Errorf("bounds = %v", b)
	}
	s.SetOpacity(1)
	if s.Opacity() != 1 {
		t.Errorf("opacity = %v", s.Opacity())
	}
}
