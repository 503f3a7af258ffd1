// cmd/field/main.go
package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"go-magnetic-field/internal/app"
	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/field"
	"go-magnetic-field/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	width := flag.Int("width", config.ScreenWidth, "initial window width")
	height := flag.Int("height", config.ScreenHeight, "initial window height")
	seed := flag.Int64("seed", 0, "particle seed (0 = time based)")
	scatter := flag.Bool("scatter", false, "spawn particles away from their rest positions")
	debug := flag.Bool("debug", false, "show the FPS overlay (toggle with F3)")
	palette := flag.String("palette", "", "comma separated particle colors, e.g. #64ffda,#ff6b6b")
	flag.Parse()

	opts := field.DefaultOptions()
	opts.Seed = *seed
	opts.Scatter = *scatter
	if *palette != "" {
		colors, err := render.ParsePalette(strings.Split(*palette, ","))
		if err != nil {
			slog.Error("parse palette", "error", err)
			os.Exit(2)
		}
		opts.Palette = colors
	}

	game := app.New(*width, *height, opts)
	game.Debug = *debug

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Magnetic Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("starting magnetic field", "width", *width, "height", *height, "particles", opts.Count, "seed", *seed)
	if err := ebiten.RunGame(game); err != nil {
		slog.Error("run game", "error", err)
		os.Exit(1)
	}
	slog.Info("window closed")
}
