// internal/field/physics.go
package field

import (
	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/utils"
)

// Step продвигает каждую частицу на один шаг симуляции.
//
// Внутри радиуса MaxDistance частица отталкивается от указателя на
// direction*force*density, где force линейно падает от 1 до 0.
// Снаружи частица возвращается к базовой позиции на 1/ReturnDivisor разрыва.
// Границы холста не учитываются.
//
// При совпадении позиции частицы и указателя направление равно 0/0 = NaN;
// это значение попадает в позицию частицы и не исправляется.
func Step(particles []Particle, pointer Pointer) {
	for i := range particles {
		p := &particles[i]

		dx := pointer.X - p.X
		dy := pointer.Y - p.Y
		distance := utils.Distance(p.X, p.Y, pointer.X, pointer.Y)
		forceDirectionX := dx / distance
		forceDirectionY := dy / distance

		force := (config.MaxDistance - distance) / config.MaxDistance

		if distance < config.MaxDistance {
			p.X -= forceDirectionX * force * p.Density
			p.Y -= forceDirectionY * force * p.Density
			continue
		}

		if p.X != p.BaseX {
			p.X -= (p.X - p.BaseX) / config.ReturnDivisor
		}
		if p.Y != p.BaseY {
			p.Y -= (p.Y - p.BaseY) / config.ReturnDivisor
		}
	}
}
