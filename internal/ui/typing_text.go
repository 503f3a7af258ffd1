// internal/ui/typing_text.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TypingText отображает печатающуюся строку с мигающим курсором.
type TypingText struct {
	X, Y             int
	Prefix           string
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	fontFace         font.Face
	started          time.Time
}

func NewTypingText(x, y int, prefix string, clr color.RGBA, face font.Face) *TypingText {
	return &TypingText{
		X:                x,
		Y:                y,
		Prefix:           prefix,
		Color:            clr,
		OutlineColor:     color.RGBA{10, 25, 47, 255},
		OutlineThickness: 1,
		fontFace:         face,
		started:          time.Now(),
	}
}

// Draw рисует строку по центру X со смещением по вертикали offsetY
func (t *TypingText) Draw(screen *ebiten.Image, typed string, offsetY int) {
	line := t.Prefix + typed
	if time.Since(t.started)/(500*time.Millisecond)%2 == 0 {
		line += "_"
	}
	bounds := text.BoundString(t.fontFace, t.Prefix+typed+"_")
	x := t.X - bounds.Dx()/2
	y := t.Y + offsetY

	// Обводка
	for dy := -t.OutlineThickness; dy <= t.OutlineThickness; dy++ {
		for dx := -t.OutlineThickness; dx <= t.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, line, t.fontFace, x+dx, y+dy, t.OutlineColor)
		}
	}
	text.Draw(screen, line, t.fontFace, x, y, t.Color)
}
