// internal/field/visibility.go
package field

import "go-magnetic-field/internal/config"

// Visibility управляет прозрачностью холста в зависимости от прокрутки.
type Visibility struct {
	Opacity float64
	surface Surface
}

func NewVisibility(surface Surface) *Visibility {
	return &Visibility{surface: surface}
}

// HandleScroll делает холст видимым, как только прокрутка прошла половину hero-секции.
// Чистая функция позиции прокрутки: повторный вызов с теми же входами ничего не меняет.
func (v *Visibility) HandleScroll(scrollY, heroHeight float64) {
	if scrollY > heroHeight*config.HeroFadeRatio {
		v.Opacity = 1
	} else {
		v.Opacity = 0
	}
	v.surface.SetOpacity(v.Opacity)
}
