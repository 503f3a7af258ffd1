// internal/event/types.go
package event

const (
	Resize      EventType = "Resize"      // Изменился размер окна
	Scroll      EventType = "Scroll"      // Изменилась позиция прокрутки
	PointerMove EventType = "PointerMove" // Указатель сдвинулся
)

// PointerData — координаты указателя относительно окна
type PointerData struct {
	X, Y float64
}

// ResizeEvent, ScrollEvent и PointerMoveEvent — короткие конструкторы событий.
func ResizeEvent() Event { return Event{Type: Resize} }

func ScrollEvent() Event { return Event{Type: Scroll} }

func PointerMoveEvent(x, y float64) Event {
	return Event{Type: PointerMove, Data: PointerData{X: x, Y: y}}
}
