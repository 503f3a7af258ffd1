// internal/field/pointer.go
package field

import "go-magnetic-field/internal/config"

// Pointer — последняя известная позиция указателя
type Pointer struct {
	X, Y float64
}

// NewPointer возвращает указатель в позиции-заглушке далеко за пределами окна,
// чтобы до первого движения мыши ни одна частица не отталкивалась.
func NewPointer() Pointer {
	return Pointer{X: config.PointerSentinel, Y: config.PointerSentinel}
}

// Move перезаписывает координаты: без сглаживания, побеждает последнее событие.
func (p *Pointer) Move(x, y float64) {
	p.X = x
	p.Y = y
}
