// internal/ui/badge.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Badge — декоративный голографический значок в углу экрана.
type Badge struct {
	X, Y     float32
	Size     float32
	Label    string
	Color    color.RGBA
	Visible  bool
	alpha    float32
	fontFace font.Face
}

func NewBadge(x, y, size float32, label string, clr color.RGBA, face font.Face) *Badge {
	return &Badge{X: x, Y: y, Size: size, Label: label, Color: clr, fontFace: face}
}

// Update плавно проявляет или прячет значок
func (b *Badge) Update(visible bool) {
	b.Visible = visible
	target := float32(0)
	if visible {
		target = 1
	}
	b.alpha += (target - b.alpha) * 0.2
}

// Draw рисует шестиугольник с подписью
func (b *Badge) Draw(screen *ebiten.Image) {
	if b.alpha < 0.01 {
		return
	}
	fill := b.Color
	fill.A = uint8(60 * b.alpha)
	vector.DrawFilledCircle(screen, b.X, b.Y, b.Size*0.85, premultiply(fill), true)

	stroke := b.Color
	stroke.A = uint8(255 * b.alpha)
	for i := 0; i < 6; i++ {
		a0 := math.Pi/6 + float64(i)*math.Pi/3
		a1 := a0 + math.Pi/3
		vector.StrokeLine(screen,
			b.X+b.Size*float32(math.Cos(a0)), b.Y+b.Size*float32(math.Sin(a0)),
			b.X+b.Size*float32(math.Cos(a1)), b.Y+b.Size*float32(math.Sin(a1)),
			1.5, premultiply(stroke), true)
	}

	bounds := text.BoundString(b.fontFace, b.Label)
	text.Draw(screen, b.Label, b.fontFace, int(b.X)-bounds.Dx()/2, int(b.Y)+bounds.Dy()/2, premultiply(stroke))
}

// premultiply переводит прямую альфу в премультиплицированный color.RGBA
func premultiply(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(c.A) / 255),
		G: uint8(uint16(c.G) * uint16(c.A) / 255),
		B: uint8(uint16(c.B) * uint16(c.A) / 255),
		A: c.A,
	}
}
