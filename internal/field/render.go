// internal/field/render.go
package field

import (
	"image/color"

	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/utils"
	"go-magnetic-field/pkg/render"
)

// Surface — растровая поверхность, на которой рисуется поле.
// Реализации: render.EbitenSurface, render.RasterSurface, render.TerminalSurface
// и DOM-холст в cmd/fieldwasm.
type Surface interface {
	Resize(width, height int)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	SetOpacity(opacity float64)
}

// Link — соединительная линия между частицами A и B
type Link struct {
	A, B  int
	Alpha float64
}

// Renderer рисует кадр поля
type Renderer struct {
	Background color.RGBA
	LinkColor  color.RGBA
	links      []Link
}

func NewRenderer(background, linkColor color.RGBA) *Renderer {
	return &Renderer{
		Background: background,
		LinkColor:  linkColor,
		links:      make([]Link, 0, config.ParticleCount*4),
	}
}

// LinkAlpha — прозрачность линии для пары на расстоянии distance:
// 1 при нуле и стремится к 0 у LinkDistance.
func LinkAlpha(distance float64) float64 {
	return 1 - distance/config.LinkDistance
}

// Links перебирает все неупорядоченные пары, включая пару частицы с самой собой,
// и возвращает те, что ближе LinkDistance. Перебор O(n²); буфер переиспользуется
// между кадрами, поэтому результат действителен до следующего вызова.
func (r *Renderer) Links(particles []Particle) []Link {
	r.links = r.links[:0]
	for a := 0; a < len(particles); a++ {
		for b := a; b < len(particles); b++ {
			distance := utils.Distance(particles[a].X, particles[a].Y, particles[b].X, particles[b].Y)
			if distance < config.LinkDistance {
				r.links = append(r.links, Link{A: a, B: b, Alpha: LinkAlpha(distance)})
			}
		}
	}
	return r.links
}

// Render полностью перерисовывает холст: фон, линии, затем диски частиц.
// Примитивы с нечисловыми координатами пропускаются, как это делает canvas браузера.
func (r *Renderer) Render(surface Surface, width, height int, particles []Particle) {
	surface.FillRect(0, 0, float64(width), float64(height), r.Background)

	for _, link := range r.Links(particles) {
		a, b := &particles[link.A], &particles[link.B]
		surface.StrokeLine(a.X, a.Y, b.X, b.Y, config.LinkWidth, render.WithAlpha(r.LinkColor, link.Alpha))
	}

	for i := range particles {
		p := &particles[i]
		if !utils.IsFinite(p.X, p.Y) {
			continue
		}
		surface.FillCircle(p.X, p.Y, p.Size, p.Color)
	}
}
