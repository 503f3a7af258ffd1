//go:build js && wasm

// cmd/fieldwasm/main.go
//
// fieldwasm mounts the field on the page's #game-canvas and drives the page
// decorations: anchor smooth scrolling, the typing headline, section reveals,
// the PCB navigation rail and the holo badge.
package main

import (
	"context"
	"image/color"
	"log/slog"
	"math"
	"os"
	"strconv"
	"syscall/js"
	"time"

	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/event"
	"go-magnetic-field/internal/field"
	"go-magnetic-field/internal/page"
	"go-magnetic-field/pkg/render"
)

var (
	window   = js.Global()
	document = js.Global().Get("document")
)

// canvasSurface рисует через CanvasRenderingContext2D
type canvasSurface struct {
	canvas js.Value
	ctx    js.Value
}

func (s *canvasSurface) Resize(width, height int) {
	s.canvas.Set("width", width)
	s.canvas.Set("height", height)
}

func (s *canvasSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.ctx.Set("fillStyle", render.CSS(clr))
	s.ctx.Call("fillRect", x, y, w, h)
}

func (s *canvasSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	s.ctx.Set("lineWidth", width)
	s.ctx.Set("strokeStyle", render.CSS(clr))
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", x0, y0)
	s.ctx.Call("lineTo", x1, y1)
	s.ctx.Call("stroke")
}

func (s *canvasSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	s.ctx.Set("fillStyle", render.CSS(clr))
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", cx, cy, r, 0, 2*math.Pi)
	s.ctx.Call("fill")
}

func (s *canvasSurface) SetOpacity(opacity float64) {
	s.canvas.Get("style").Set("opacity", strconv.FormatFloat(opacity, 'f', -1, 64))
}

// domHost читает размеры окна, прокрутку и высоту #hero
type domHost struct{}

func (domHost) InnerSize() (int, int) {
	return window.Get("innerWidth").Int(), window.Get("innerHeight").Int()
}

func (domHost) ScrollY() float64 { return window.Get("scrollY").Float() }

func (domHost) HeroHeight() float64 {
	hero := document.Call("getElementById", "hero")
	if hero.IsNull() {
		return 0
	}
	return hero.Get("offsetHeight").Float()
}

// rafScheduler ждёт requestAnimationFrame, попутно разбирая события окна
type rafScheduler struct {
	loop   *field.LoopScheduler
	frames chan time.Time
	tick   js.Func
}

func newRAFScheduler(events <-chan event.Event, d *event.Dispatcher) *rafScheduler {
	frames := make(chan time.Time, 1)
	s := &rafScheduler{frames: frames}
	s.loop = &field.LoopScheduler{Frames: frames, Events: events, Dispatcher: d}
	s.tick = js.FuncOf(func(this js.Value, args []js.Value) any {
		select {
		case frames <- time.Now():
		default:
		}
		return nil
	})
	return s
}

func (s *rafScheduler) NextFrame(ctx context.Context) error {
	window.Call("requestAnimationFrame", s.tick)
	return s.loop.NextFrame(ctx)
}

// post кладёт событие в очередь кадрового цикла, не блокируя обработчик JS
func post(events chan<- event.Event, e event.Event) {
	select {
	case events <- e:
	default:
	}
}

func forEach(list js.Value, fn func(i int, el js.Value)) {
	for i := 0; i < list.Length(); i++ {
		fn(i, list.Index(i))
	}
}

func bindSmoothScroll() {
	forEach(document.Call("querySelectorAll", `a[href^="#"]`), func(_ int, anchor js.Value) {
		anchor.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
			args[0].Call("preventDefault")
			id, ok := page.AnchorID(this.Call("getAttribute", "href").String())
			if !ok {
				return nil
			}
			// getElementById, в отличие от querySelector, не бросает на кривом id
			target := document.Call("getElementById", id)
			if !target.IsNull() {
				opts := map[string]any{"behavior": "smooth"}
				target.Call("scrollIntoView", opts)
			}
			return nil
		}))
	})
}

func runTyping() {
	el := document.Call("getElementById", "typing-text")
	if el.IsNull() {
		return
	}
	tw := page.NewTypewriter(config.TypingTexts)
	for {
		text, delay := tw.Next()
		el.Set("textContent", text)
		time.Sleep(delay)
	}
}

func bindReveal() {
	style := document.Call("createElement", "style")
	style.Set("innerHTML", ".section.visible { opacity: 1 !important; transform: translateY(0) !important; }")
	document.Get("head").Call("appendChild", style)

	sections := document.Call("querySelectorAll", ".section")
	reveals := make([]page.Reveal, sections.Length())

	callback := js.FuncOf(func(this js.Value, args []js.Value) any {
		forEach(args[0], func(_ int, entry js.Value) {
			if !entry.Get("isIntersecting").Bool() {
				return
			}
			target := entry.Get("target")
			i, err := strconv.Atoi(target.Get("dataset").Get("revealIndex").String())
			if err != nil || i >= len(reveals) {
				return
			}
			// наблюдатель сообщает о пересечении уже на пороге
			reveals[i].Observe(math.Max(entry.Get("intersectionRatio").Float(), config.RevealThreshold))
			if reveals[i].Visible {
				target.Get("classList").Call("add", "visible")
			}
		})
		return nil
	})
	observer := window.Get("IntersectionObserver").New(callback, map[string]any{"threshold": config.RevealThreshold})

	forEach(sections, func(i int, section js.Value) {
		opacity, offset := reveals[i].Style()
		st := section.Get("style")
		st.Set("opacity", strconv.FormatFloat(opacity, 'f', -1, 64))
		st.Set("transform", "translateY("+strconv.FormatFloat(offset, 'f', -1, 64)+"px)")
		st.Set("transition", "all 0.6s ease-out")
		section.Get("dataset").Set("revealIndex", strconv.Itoa(i))
		observer.Call("observe", section)
	})
}

func bindNavRail() {
	flow := document.Call("getElementById", "pcb-flow")
	nodes := document.Call("querySelectorAll", ".pcb-node")
	hrefs := make([]string, 0, nodes.Length())
	forEach(nodes, func(_ int, n js.Value) {
		hrefs = append(hrefs, n.Call("getAttribute", "href").String())
	})
	rail := page.NewNavRail(hrefs)

	update := func() {
		var sections []page.Section
		forEach(document.Call("querySelectorAll", ".section, .hero-section"), func(_ int, s js.Value) {
			sections = append(sections, page.Section{ID: s.Call("getAttribute", "id").String(), Top: s.Get("offsetTop").Float()})
		})
		rail.Update(window.Get("pageYOffset").Float(), sections)
		forEach(nodes, func(i int, n js.Value) {
			n.Get("classList").Call("remove", "active")
			if rail.IsActive(i) {
				n.Get("classList").Call("add", "active")
			}
		})
		if len(hrefs) > 1 && !flow.IsNull() {
			flow.Get("style").Set("height", strconv.FormatFloat(rail.Progress, 'f', -1, 64)+"%")
		}
	}

	window.Call("addEventListener", "scroll", js.FuncOf(func(js.Value, []js.Value) any {
		update()
		return nil
	}))
	forEach(nodes, func(_ int, n js.Value) {
		n.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
			// дать плавной прокрутке начаться
			time.AfterFunc(50*time.Millisecond, update)
			return nil
		}))
	})
	update()
}

func bindBadge() {
	badge := document.Call("getElementById", "holo-badge")
	skills := document.Call("getElementById", "skills")
	if badge.IsNull() || skills.IsNull() {
		return
	}
	check := func() {
		rect := skills.Call("getBoundingClientRect")
		inView := page.BadgeInView(rect.Get("top").Float(), rect.Get("bottom").Float(), window.Get("innerHeight").Float())
		if inView {
			badge.Get("classList").Call("add", "visible")
		} else {
			badge.Get("classList").Call("remove", "visible")
		}
	}
	window.Call("addEventListener", "scroll", js.FuncOf(func(js.Value, []js.Value) any {
		check()
		return nil
	}))
	check()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	bindSmoothScroll()
	go runTyping()
	bindReveal()

	canvas := document.Call("getElementById", "game-canvas")
	if canvas.IsNull() {
		slog.Error("canvas #game-canvas not found")
		return
	}
	surface := &canvasSurface{canvas: canvas, ctx: canvas.Call("getContext", "2d")}
	f := field.New(domHost{}, surface, field.DefaultOptions())

	dispatcher := event.NewDispatcher()
	f.Subscribe(dispatcher)
	events := make(chan event.Event, 256)

	window.Call("addEventListener", "resize", js.FuncOf(func(js.Value, []js.Value) any {
		post(events, event.ResizeEvent())
		return nil
	}))
	window.Call("addEventListener", "scroll", js.FuncOf(func(js.Value, []js.Value) any {
		post(events, event.ScrollEvent())
		return nil
	}))
	window.Call("addEventListener", "mousemove", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		post(events, event.PointerMoveEvent(e.Get("clientX").Float(), e.Get("clientY").Float()))
		return nil
	}))

	driver := field.NewDriver(f, newRAFScheduler(events, dispatcher))
	window.Set("magneticFieldStop", js.FuncOf(func(js.Value, []js.Value) any {
		driver.Stop()
		return nil
	}))

	bindNavRail()
	bindBadge()

	slog.Info("magnetic field mounted", "particles", len(f.Particles))
	err := driver.Run(context.Background())
	f.Unsubscribe(dispatcher)
	if err != nil {
		slog.Error("field loop stopped", "error", err)
		return
	}
	slog.Info("magnetic field stopped", "frames", driver.Frames())
}
