// cmd/fieldterm/main.go
//
// fieldterm draws the particle field in a terminal. Mouse motion pushes the
// particles, the wheel scrolls the virtual page, q or Esc quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/event"
	"go-magnetic-field/internal/field"
	"go-magnetic-field/internal/page"
	"go-magnetic-field/pkg/render"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
)

const (
	wheel event.EventType = "Wheel" // Data: шаг колеса, -1 вверх, +1 вниз
	quit  event.EventType = "Quit"
)

// termHost — окно терминала в пикселях: ячейка считается за 8×16 пикселей
type termHost struct {
	screen   tcell.Screen
	scroller *page.Scroller
}

func (h *termHost) InnerSize() (int, int) {
	cols, rows := h.screen.Size()
	return cols * config.TerminalCellWidth, rows * config.TerminalCellHeight
}

func (h *termHost) ScrollY() float64 { return h.scroller.Y }

// HeroHeight — hero-секция занимает один экран терминала
func (h *termHost) HeroHeight() float64 {
	_, rows := h.screen.Size()
	return float64(rows * config.TerminalCellHeight)
}

// controls обрабатывает события, которые не относятся к полю
type controls struct {
	host   *termHost
	driver *field.Driver
}

func (c *controls) OnEvent(e event.Event) {
	switch e.Type {
	case wheel:
		c.host.scroller.ScrollBy(e.Data.(float64) * config.WheelStep)
	case quit:
		c.driver.Stop()
	case event.Resize:
		_, h := c.host.InnerSize()
		c.host.scroller.SetMax(float64(3 * h))
	}
}

// termScheduler выводит готовый кадр, ждёт следующего тика и продвигает прокрутку
type termScheduler struct {
	loop       *field.LoopScheduler
	surface    *render.TerminalSurface
	scroller   *page.Scroller
	dispatcher *event.Dispatcher
}

func (s *termScheduler) NextFrame(ctx context.Context) error {
	s.surface.Show()
	if err := s.loop.NextFrame(ctx); err != nil {
		return err
	}
	if s.scroller.Step() {
		s.dispatcher.Dispatch(event.ScrollEvent())
	}
	return nil
}

// pollEvents переводит события tcell в события поля до закрытия экрана
func pollEvents(screen tcell.Screen, out chan<- event.Event) {
	defer close(out)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			out <- event.ResizeEvent()
		case *tcell.EventMouse:
			x, y := ev.Position()
			out <- event.PointerMoveEvent(
				float64(x*config.TerminalCellWidth+config.TerminalCellWidth/2),
				float64(y*config.TerminalCellHeight+config.TerminalCellHeight/2),
			)
			switch {
			case ev.Buttons()&tcell.WheelUp != 0:
				out <- event.Event{Type: wheel, Data: -1.0}
			case ev.Buttons()&tcell.WheelDown != 0:
				out <- event.Event{Type: wheel, Data: 1.0}
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				out <- event.Event{Type: quit}
			}
		}
	}
}

// loop крутит поле на экране до выхода и возвращает число кадров
func loop(screen tcell.Screen) (uint64, error) {
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	host := &termHost{screen: screen, scroller: page.NewScroller(0)}
	surface := render.NewTerminalSurface(screen, config.TerminalCellWidth, config.TerminalCellHeight)
	f := field.New(host, surface, field.DefaultOptions())

	dispatcher := event.NewDispatcher()
	f.Subscribe(dispatcher)

	events := make(chan event.Event, 64)
	go pollEvents(screen, events)

	ticker := time.NewTicker(time.Second / config.TerminalFPS)
	defer ticker.Stop()

	scheduler := &termScheduler{
		loop:       &field.LoopScheduler{Frames: ticker.C, Events: events, Dispatcher: dispatcher},
		surface:    surface,
		scroller:   host.scroller,
		dispatcher: dispatcher,
	}
	driver := field.NewDriver(f, scheduler)

	ctl := &controls{host: host, driver: driver}
	dispatcher.Subscribe(wheel, ctl)
	dispatcher.Subscribe(quit, ctl)
	dispatcher.Subscribe(event.Resize, ctl)
	ctl.OnEvent(event.ResizeEvent())

	err := driver.Run(context.Background())
	if err != nil && !errors.Is(err, context.Canceled) {
		return driver.Frames(), fmt.Errorf("run field: %w", err)
	}
	return driver.Frames(), nil
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	start := time.Now()
	frames, err := loop(screen)
	if err != nil {
		return err
	}
	// логируем только после Fini, иначе вывод попадёт в полноэкранный режим
	slog.Info("terminal field stopped",
		"frames", humanize.Comma(int64(frames)),
		"uptime", time.Since(start).Round(time.Second),
	)
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("fieldterm failed", "error", err)
		os.Exit(1)
	}
}
