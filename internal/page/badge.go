// internal/page/badge.go
package page

import "go-magnetic-field/internal/config"

// BadgeInView — декоративный значок виден, пока секция навыков заметно в окне:
// её верх выше 70% высоты окна, а низ ниже 30%.
func BadgeInView(rectTop, rectBottom, windowHeight float64) bool {
	return rectTop <= windowHeight*config.BadgeTopRatio && rectBottom >= windowHeight*config.BadgeBottomRatio
}
