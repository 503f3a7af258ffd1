// pkg/render/terminal.go
package render

import (
	"image/color"
	"math"

	"go-magnetic-field/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal character of a TerminalSurface.
type Cell struct {
	Rune   rune
	Fg, Bg color.RGBA
}

// TerminalSurface maps pixel coordinates onto a grid of terminal cells,
// each covering cellW×cellH pixels. Primitives write into a cell buffer;
// Show flushes it to the tcell screen.
type TerminalSurface struct {
	screen       tcell.Screen
	cellW, cellH int
	cols, rows   int
	cells        []Cell
	opacity      float64
}

func NewTerminalSurface(screen tcell.Screen, cellW, cellH int) *TerminalSurface {
	return &TerminalSurface{screen: screen, cellW: cellW, cellH: cellH}
}

// Resize takes the size in pixels and rounds it up to whole cells.
func (s *TerminalSurface) Resize(width, height int) {
	s.cols = utils.CeilDiv(width, s.cellW)
	s.rows = utils.CeilDiv(height, s.cellH)
	s.cells = make([]Cell, s.cols*s.rows)
}

// CellSize returns the pixel footprint of one cell.
func (s *TerminalSurface) CellSize() (int, int) { return s.cellW, s.cellH }

func (s *TerminalSurface) Grid() (cols, rows int) { return s.cols, s.rows }

// Cell returns the buffered cell at column x, row y.
func (s *TerminalSurface) Cell(x, y int) Cell {
	return s.cells[y*s.cols+x]
}

func (s *TerminalSurface) SetOpacity(opacity float64) { s.opacity = opacity }

func (s *TerminalSurface) FillRect(x, y, w, h float64, clr color.Color) {
	bg := Blend(color.Black, clr)
	x0, y0 := s.toCell(x, y)
	x1, y1 := s.toCell(x+w-1, y+h-1)
	for cy := max(y0, 0); cy <= min(y1, s.rows-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, s.cols-1); cx++ {
			s.cells[cy*s.cols+cx] = Cell{Rune: ' ', Fg: bg, Bg: bg}
		}
	}
}

// StrokeLine walks the cells between the endpoints and tints them with a dot.
// Width is ignored: a cell is the thinnest mark a terminal can make.
func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if math.IsNaN(x0+y0+x1+y1) || math.IsInf(x0+y0+x1+y1, 0) {
		return
	}
	cx0, cy0 := s.toCell(x0, y0)
	cx1, cy1 := s.toCell(x1, y1)
	steps := max(utils.Abs(cx1-cx0), utils.Abs(cy1-cy0))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cx := cx0 + int(math.Round(float64(cx1-cx0)*t))
		cy := cy0 + int(math.Round(float64(cy1-cy0)*t))
		if !s.inside(cx, cy) {
			continue
		}
		cell := &s.cells[cy*s.cols+cx]
		base := cell.Bg
		if cell.Rune == '·' {
			base = cell.Fg
		}
		cell.Rune = '·'
		cell.Fg = Blend(base, clr)
	}
}

func (s *TerminalSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	if math.IsNaN(cx+cy) || math.IsInf(cx+cy, 0) {
		return
	}
	x, y := s.toCell(cx, cy)
	if !s.inside(x, y) {
		return
	}
	cell := &s.cells[y*s.cols+x]
	cell.Rune = '•'
	if r >= 2 {
		cell.Rune = '●'
	}
	cell.Fg = Blend(cell.Bg, clr)
}

// Show flushes the buffer. A hidden surface clears to the terminal default.
func (s *TerminalSurface) Show() {
	s.screen.Clear()
	if s.opacity > 0 {
		for y := 0; y < s.rows; y++ {
			for x := 0; x < s.cols; x++ {
				c := s.cells[y*s.cols+x]
				r := c.Rune
				if r == 0 {
					r = ' '
				}
				style := tcell.StyleDefault.Foreground(tcellColor(c.Fg)).Background(tcellColor(c.Bg))
				s.screen.SetContent(x, y, r, nil, style)
			}
		}
	}
	s.screen.Show()
}

func (s *TerminalSurface) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / float64(s.cellW))), int(math.Floor(y / float64(s.cellH)))
}

func (s *TerminalSurface) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.cols && y < s.rows
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
