// internal/field/viewport.go
package field

// Viewport хранит размеры холста в пикселях и синхронизирует с ними поверхность.
type Viewport struct {
	Width, Height int
	host          Host
	surface       Surface
}

func NewViewport(host Host, surface Surface) *Viewport {
	v := &Viewport{host: host, surface: surface}
	v.Resize()
	return v
}

// Resize читает внутренний размер окна и подгоняет под него поверхность.
// Частицы не трогаются: после уменьшения окна они могут оказаться за краем.
func (v *Viewport) Resize() {
	v.Width, v.Height = v.host.InnerSize()
	v.surface.Resize(v.Width, v.Height)
}
