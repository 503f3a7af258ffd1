// internal/field/field.go
package field

import (
	"image/color"

	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/event"
	"go-magnetic-field/internal/utils"
	"go-magnetic-field/pkg/render"
)

// Host — окружение, в котором живёт поле: окно браузера, окно ebiten или терминал.
type Host interface {
	InnerSize() (width, height int)
	ScrollY() float64
	HeroHeight() float64
}

// Options — параметры создания поля
type Options struct {
	Count      int          // число частиц, по умолчанию config.ParticleCount
	Palette    []color.RGBA // по умолчанию config.ParticlePalette
	Background color.RGBA
	LinkColor  color.RGBA
	Scatter    bool  // стартовая позиция не совпадает с базовой
	Seed       int64 // 0 — сид от текущего времени
}

// DefaultOptions возвращает параметры поля из config
func DefaultOptions() Options {
	palette := make([]color.RGBA, 0, len(config.ParticlePalette))
	for _, h := range config.ParticlePalette {
		palette = append(palette, render.MustParseHex(h))
	}
	return Options{
		Count:      config.ParticleCount,
		Palette:    palette,
		Background: render.MustParseHex(config.BackgroundHex),
		LinkColor:  render.MustParseHex(config.LinkHex),
	}
}

// Field — единое состояние симуляции: окно, частицы, указатель и видимость.
// Все методы вызываются из одного потока кадрового цикла.
type Field struct {
	Viewport   *Viewport
	Particles  []Particle
	Pointer    Pointer
	Visibility *Visibility

	host     Host
	surface  Surface
	renderer *Renderer
}

// New создаёт поле в порядке исходного компонента: размер, частицы,
// указатель-заглушка, начальная проверка прокрутки.
func New(host Host, surface Surface, opts Options) *Field {
	defaults := DefaultOptions()
	if opts.Count <= 0 {
		opts.Count = defaults.Count
	}
	if len(opts.Palette) == 0 {
		opts.Palette = defaults.Palette
	}
	if opts.Background == (color.RGBA{}) {
		opts.Background = defaults.Background
	}
	if opts.LinkColor == (color.RGBA{}) {
		opts.LinkColor = defaults.LinkColor
	}

	f := &Field{
		host:       host,
		surface:    surface,
		Viewport:   NewViewport(host, surface),
		Pointer:    NewPointer(),
		Visibility: NewVisibility(surface),
		renderer:   NewRenderer(opts.Background, opts.LinkColor),
	}
	rng := utils.NewPRNGService(opts.Seed)
	f.Particles = NewParticles(opts.Count, f.Viewport.Width, f.Viewport.Height, opts.Palette, rng, opts.Scatter)
	f.HandleScroll()
	return f
}

// Subscribe подписывает поле на события окна
func (f *Field) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.Resize, f)
	d.Subscribe(event.Scroll, f)
	d.Subscribe(event.PointerMove, f)
}

// Unsubscribe отключает поле от событий окна; цикл кадров при этом не трогается
func (f *Field) Unsubscribe(d *event.Dispatcher) {
	d.Unsubscribe(event.Resize, f)
	d.Unsubscribe(event.Scroll, f)
	d.Unsubscribe(event.PointerMove, f)
}

// OnEvent реализует event.Listener
func (f *Field) OnEvent(e event.Event) {
	switch e.Type {
	case event.Resize:
		f.Viewport.Resize()
	case event.Scroll:
		f.HandleScroll()
	case event.PointerMove:
		if data, ok := e.Data.(event.PointerData); ok {
			f.Pointer.Move(data.X, data.Y)
		}
	}
}

// HandleScroll перечитывает прокрутку и высоту hero-секции у хоста
func (f *Field) HandleScroll() {
	f.Visibility.HandleScroll(f.host.ScrollY(), f.host.HeroHeight())
}

// Update — шаг физики по последнему известному положению указателя
func (f *Field) Update() {
	Step(f.Particles, f.Pointer)
}

// Draw перерисовывает холст
func (f *Field) Draw() {
	f.renderer.Render(f.surface, f.Viewport.Width, f.Viewport.Height, f.Particles)
}

// Frame — один кадр: Update, затем Draw
func (f *Field) Frame() {
	f.Update()
	f.Draw()
}

// Links возвращает соединения, нарисованные последним кадром
func (f *Field) Links() []Link {
	return f.renderer.links
}
