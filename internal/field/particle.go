// internal/field/particle.go
package field

import (
	"image/color"

	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/utils"
)

// Particle — одна точка поля. После создания меняется только X, Y.
type Particle struct {
	X, Y         float64 // текущая позиция в пикселях холста
	VX, VY       float64 // скорость хранится, но к позиции не применяется
	Size         float64 // радиус диска, [1, 3)
	Color        color.RGBA
	BaseX, BaseY float64 // позиция покоя, к ней частица возвращается
	Density      float64 // множитель силы отталкивания, [1, 31)
}

// NewParticles строит набор частиц заново независимыми равномерными
// выборками в пределах области width×height.
// При scatter=false частица появляется в своей базовой позиции,
// при scatter=true стартовая позиция выбирается отдельно и частица «стекается» к базе.
func NewParticles(n int, width, height int, palette []color.RGBA, rng *utils.PRNGService, scatter bool) []Particle {
	particles := make([]Particle, n)
	w, h := float64(width), float64(height)
	for i := range particles {
		p := &particles[i]
		p.X = rng.Float64() * w
		p.Y = rng.Float64() * h
		p.VX = rng.Centered(config.VelocitySpread)
		p.VY = rng.Centered(config.VelocitySpread)
		p.Size = rng.Range(config.SizeMin, config.SizeSpread)
		p.Color = palette[rng.Intn(len(palette))]
		if scatter {
			p.BaseX = rng.Float64() * w
			p.BaseY = rng.Float64() * h
		} else {
			p.BaseX, p.BaseY = p.X, p.Y
		}
		p.Density = rng.Range(config.DensityMin, config.DensitySpread)
	}
	return particles
}
