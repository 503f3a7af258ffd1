// internal/page/reveal.go
package page

import "go-magnetic-field/internal/config"

// Reveal — проявление секции при первом попадании в окно.
// Один раз став видимой, секция остаётся видимой.
type Reveal struct {
	Visible bool
}

// Observe принимает долю площади секции, видимую в окне, [0, 1]
func (r *Reveal) Observe(ratio float64) {
	if ratio >= config.RevealThreshold {
		r.Visible = true
	}
}

// Style — прозрачность и вертикальный сдвиг секции
func (r *Reveal) Style() (opacity, offsetY float64) {
	if r.Visible {
		return 1, 0
	}
	return 0, config.RevealOffsetY
}

// VisibleRatio — доля отрезка [top, bottom), попавшая в [0, viewportHeight)
func VisibleRatio(top, bottom, viewportHeight float64) float64 {
	height := bottom - top
	if height <= 0 {
		return 0
	}
	visible := min(bottom, viewportHeight) - max(top, 0)
	if visible <= 0 {
		return 0
	}
	return visible / height
}
