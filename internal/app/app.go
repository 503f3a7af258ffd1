// internal/app/app.go
package app

import (
	"fmt"
	"image/color"
	"time"

	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/event"
	"go-magnetic-field/internal/field"
	"go-magnetic-field/internal/page"
	"go-magnetic-field/internal/ui"
	"go-magnetic-field/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// sectionSpec — содержимое секции виртуальной страницы
type sectionSpec struct {
	id, title string
	lines     []string
}

var sectionSpecs = []sectionSpec{
	{"hero", "", nil},
	{"about", "ABOUT", []string{"Research engineer working where hardware meets software."}},
	{"skills", "SKILLS", []string{"Go  ·  Embedded  ·  Signal processing  ·  PCB design"}},
	{"projects", "PROJECTS", []string{"Magnetic field visualiser", "Voltage defender"}},
	{"contact", "CONTACT", []string{"mail · github · linkedin"}},
}

// App — окно ebiten с виртуальной прокручиваемой страницей и полем частиц под ней.
// Реализует ebiten.Game и field.Host.
type App struct {
	field      *field.Field
	driver     *field.Driver
	surface    *render.EbitenSurface
	dispatcher *event.Dispatcher

	scroller   *page.Scroller
	rail       *page.NavRail
	railView   *ui.NavRailView
	sections   []*ui.SectionView
	typing     *page.Ticker
	typingView *ui.TypingText
	badge      *ui.Badge
	background color.RGBA

	width, height    int
	cursorX, cursorY int
	lastUpdateTime   time.Time
	Debug            bool
}

// New создаёт окно размера width×height
func New(width, height int, opts field.Options) *App {
	face := basicfont.Face7x13
	accent := render.MustParseHex(config.LinkHex)
	gold := render.MustParseHex(config.ParticlePalette[1])
	ink := render.MustParseHex(config.ParticlePalette[2])

	a := &App{
		surface:        render.NewEbitenSurface(),
		dispatcher:     event.NewDispatcher(),
		scroller:       page.NewScroller(0),
		typing:         page.NewTicker(page.NewTypewriter(config.TypingTexts)),
		background:     render.MustParseHex(config.BackgroundHex),
		width:          width,
		height:         height,
		cursorX:        -1,
		cursorY:        -1,
		lastUpdateTime: time.Now(),
	}

	hrefs := make([]string, 0, len(sectionSpecs))
	for _, s := range sectionSpecs {
		hrefs = append(hrefs, "#"+s.id)
		a.sections = append(a.sections, ui.NewSectionView(s.id, s.title, s.lines, ink, face))
	}
	a.rail = page.NewNavRail(hrefs)
	a.railView = ui.NewNavRailView(32, 0, 0, 5, accent)
	a.typingView = ui.NewTypingText(0, 0, "> ", accent, face)
	a.badge = ui.NewBadge(0, 0, 28, "HOLO", gold, face)
	a.layoutViews()

	a.field = field.New(a, a.surface, opts)
	a.field.Subscribe(a.dispatcher)
	a.driver = field.NewDriver(a.field, nil)
	a.updatePage()
	return a
}

// InnerSize, ScrollY и HeroHeight реализуют field.Host
func (a *App) InnerSize() (int, int) { return a.width, a.height }

func (a *App) ScrollY() float64 { return a.scroller.Y }

// HeroHeight — hero-секция занимает ровно один экран
func (a *App) HeroHeight() float64 { return float64(a.height) }

// Stop завершает цикл на следующем Update
func (a *App) Stop() { a.driver.Stop() }

func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.driver.Stop()
	}
	if a.driver.Stopped() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.Debug = !a.Debug
	}

	a.handleInput()
	if a.scroller.Step() {
		a.dispatcher.Dispatch(event.ScrollEvent())
	}
	a.updatePage()
	a.typing.Advance(time.Duration(deltaTime * float64(time.Second)))
	a.badge.Update(a.badgeVisible())

	a.driver.Step()
	return nil
}

func (a *App) handleInput() {
	x, y := ebiten.CursorPosition()
	if x != a.cursorX || y != a.cursorY {
		a.cursorX, a.cursorY = x, y
		a.dispatcher.Dispatch(event.PointerMoveEvent(float64(x), float64(y)))
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		a.scroller.ScrollBy(-wy * config.WheelStep)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i, ok := a.railView.HitNode(float32(x), float32(y), len(a.rail.Nodes)); ok {
			a.scroller.ScrollTo(a.sectionTop(i))
		}
	}
}

// updatePage пересчитывает навигацию и проявление секций по текущей прокрутке
func (a *App) updatePage() {
	a.rail.Update(a.scroller.Y, a.pageSections())
	for i, s := range a.sections {
		top := a.sectionTop(i) - a.scroller.Y
		s.Reveal.Observe(page.VisibleRatio(top, top+float64(a.height), float64(a.height)))
		s.Update()
	}
}

func (a *App) badgeVisible() bool {
	for i, s := range a.sections {
		if s.ID == "skills" {
			top := a.sectionTop(i) - a.scroller.Y
			return page.BadgeInView(top, top+float64(a.height), float64(a.height))
		}
	}
	return false
}

func (a *App) pageSections() []page.Section {
	sections := make([]page.Section, len(a.sections))
	for i, s := range a.sections {
		sections[i] = page.Section{ID: s.ID, Top: a.sectionTop(i)}
	}
	return sections
}

// sectionTop — каждая секция высотой в один экран
func (a *App) sectionTop(i int) float64 {
	return float64(i * a.height)
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)
	a.surface.DrawTo(screen)

	w, h := float32(a.width), float32(a.height)
	for i, s := range a.sections {
		top := float32(a.sectionTop(i) - a.scroller.Y)
		if top > h || top+h < 0 {
			continue
		}
		s.Draw(screen, 96, top, w-192, h)
	}
	a.typingView.Draw(screen, a.typing.Text(), int(-a.scroller.Y))
	a.railView.Draw(screen, a.rail)
	a.badge.Draw(screen)

	if a.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f  frames: %d  scroll: %.0f  opacity: %.0f",
			ebiten.ActualFPS(), a.driver.Frames(), a.scroller.Y, a.field.Visibility.Opacity))
	}
}

// Layout следует за размером окна и рассылает Resize при его изменении
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.layoutViews()
		a.dispatcher.Dispatch(event.ResizeEvent())
		a.dispatcher.Dispatch(event.ScrollEvent())
	}
	return a.width, a.height
}

func (a *App) layoutViews() {
	a.scroller.SetMax(float64((len(sectionSpecs) - 1) * a.height))
	a.railView.Top = float32(a.height) * 0.2
	a.railView.Bottom = float32(a.height) * 0.8
	a.typingView.X = a.width / 2
	a.typingView.Y = a.height / 2
	a.badge.X = float32(a.width) - 64
	a.badge.Y = float32(a.height) - 64
}
