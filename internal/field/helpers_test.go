package field

import "image/color"

type fakeHost struct {
	width, height int
	scrollY       float64
	heroHeight    float64
}

func (h *fakeHost) InnerSize() (int, int) { return h.width, h.height }
func (h *fakeHost) ScrollY() float64      { return h.scrollY }
func (h *fakeHost) HeroHeight() float64   { return h.heroHeight }

type line struct {
	x0, y0, x1, y1, width float64
	clr                   color.Color
}

type circle struct {
	cx, cy, r float64
	clr       color.Color
}

// recordingSurface запоминает все вызовы примитивов
type recordingSurface struct {
	width, height int
	resizes       int
	opacity       float64
	fills         int
	lines         []line
	circles       []circle
}

func (s *recordingSurface) Resize(w, h int) {
	s.width, s.height = w, h
	s.resizes++
}

func (s *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) { s.fills++ }

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	s.lines = append(s.lines, line{x0, y0, x1, y1, width, clr})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	s.circles = append(s.circles, circle{cx, cy, r, clr})
}

func (s *recordingSurface) SetOpacity(opacity float64) { s.opacity = opacity }

func (s *recordingSurface) reset() {
	s.fills = 0
	s.lines = s.lines[:0]
	s.circles = s.circles[:0]
}

func newTestField(w, h int) (*Field, *fakeHost, *recordingSurface) {
	host := &fakeHost{width: w, height: h, heroHeight: float64(h)}
	surface := &recordingSurface{}
	opts := DefaultOptions()
	opts.Seed = 1
	return New(host, surface, opts), host, surface
}
