// cmd/fieldshot/main.go
//
// fieldshot renders the particle field headlessly and writes the last frame as PNG.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/event"
	"go-magnetic-field/internal/field"
	"go-magnetic-field/pkg/render"

	"github.com/dustin/go-humanize"
)

// scriptedHost — неподвижное окно с заданной прокруткой
type scriptedHost struct {
	width, height int
	scrollY       float64
}

func (h *scriptedHost) InnerSize() (int, int) { return h.width, h.height }
func (h *scriptedHost) ScrollY() float64      { return h.scrollY }
func (h *scriptedHost) HeroHeight() float64   { return float64(h.height) }

// pointerScript водит указатель по окружности и выдаёт кадры без ожидания
type pointerScript struct {
	dispatcher *event.Dispatcher
	driver     *field.Driver
	host       *scriptedHost
	frames     int
}

func (s *pointerScript) NextFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n := s.driver.Frames()
	if n >= uint64(s.frames) {
		s.driver.Stop()
		return nil
	}
	angle := float64(n) / 60 * math.Pi
	cx, cy := float64(s.host.width)/2, float64(s.host.height)/2
	r := math.Min(cx, cy) * 0.6
	s.dispatcher.Dispatch(event.PointerMoveEvent(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	return nil
}

func run() error {
	width := flag.Int("width", config.ScreenWidth, "canvas width")
	height := flag.Int("height", config.ScreenHeight, "canvas height")
	frames := flag.Int("frames", 240, "frames to simulate")
	seed := flag.Int64("seed", 1, "particle seed (0 = time based)")
	scatter := flag.Bool("scatter", false, "spawn particles away from their rest positions")
	out := flag.String("out", "field.png", "output PNG path")
	palette := flag.String("palette", "", "comma separated particle colors, e.g. #64ffda,#ff6b6b")
	flag.Parse()

	if *frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", *frames)
	}

	host := &scriptedHost{width: *width, height: *height, scrollY: float64(*height)}
	surface := render.NewRasterSurface()
	opts := field.DefaultOptions()
	opts.Seed = *seed
	opts.Scatter = *scatter
	if *palette != "" {
		colors, err := render.ParsePalette(strings.Split(*palette, ","))
		if err != nil {
			return fmt.Errorf("parse palette: %w", err)
		}
		opts.Palette = colors
	}

	f := field.New(host, surface, opts)
	dispatcher := event.NewDispatcher()
	f.Subscribe(dispatcher)

	script := &pointerScript{dispatcher: dispatcher, host: host, frames: *frames}
	driver := field.NewDriver(f, script)
	script.driver = driver

	start := time.Now()
	if err := driver.Run(context.Background()); err != nil {
		return fmt.Errorf("run field: %w", err)
	}
	f.Unsubscribe(dispatcher)
	elapsed := time.Since(start)

	var buf bytes.Buffer
	if err := png.Encode(&buf, surface.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}

	slog.Info("snapshot written",
		"path", *out,
		"frames", humanize.Comma(int64(driver.Frames())),
		"links", humanize.Comma(int64(len(f.Links()))),
		"size", humanize.Bytes(uint64(buf.Len())),
		"elapsed", elapsed.Round(time.Millisecond),
		"opacity", surface.Opacity(),
	)
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("fieldshot failed", "error", err)
		os.Exit(1)
	}
}
