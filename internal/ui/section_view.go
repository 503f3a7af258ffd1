// internal/ui/section_view.go
package ui

import (
	"image/color"

	"go-magnetic-field/internal/page"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SectionView — заголовок и рамка секции виртуальной страницы.
type SectionView struct {
	ID     string
	Title  string
	Lines  []string
	Reveal page.Reveal
	Color  color.RGBA
	face   font.Face
	fade   float32
}

func NewSectionView(id, title string, lines []string, clr color.RGBA, face font.Face) *SectionView {
	return &SectionView{ID: id, Title: title, Lines: lines, Color: clr, face: face}
}

// Update продвигает CSS-подобный переход opacity/transform к целевому стилю
func (s *SectionView) Update() {
	target, _ := s.Reveal.Style()
	s.fade += (float32(target) - s.fade) * 0.1
}

// Draw рисует секцию, верх которой в экранных координатах равен top
func (s *SectionView) Draw(screen *ebiten.Image, left, top, width, height float32) {
	if s.fade < 0.01 {
		return
	}
	_, offset := s.Reveal.Style()
	shift := float32(offset) * (1 - s.fade)

	frame := s.Color
	frame.A = uint8(120 * s.fade)
	vector.StrokeRect(screen, left, top+40+shift, width, height-80, 1, premultiply(frame), true)

	ink := s.Color
	ink.A = uint8(255 * s.fade)
	text.Draw(screen, s.Title, s.face, int(left)+24, int(top+shift)+80, premultiply(ink))
	for i, line := range s.Lines {
		text.Draw(screen, line, s.face, int(left)+24, int(top+shift)+112+i*20, premultiply(ink))
	}
}
