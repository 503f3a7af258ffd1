// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a CSS-style "#rrggbb" colour into an opaque color.RGBA.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustParseHex is ParseHex for compile-time palette constants.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParsePalette parses every entry of a hex palette.
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	palette := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// WithAlpha returns c with a straight (non-premultiplied) alpha in [0, 1].
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

// Blend mixes fg over bg by the alpha of fg and returns an opaque colour.
// Used by surfaces that cannot composite, such as terminal cells.
func Blend(bg, fg color.Color) color.RGBA {
	b, _ := colorful.MakeColor(opaque(bg))
	f, _ := colorful.MakeColor(opaque(fg))
	_, _, _, a := fg.RGBA()
	mixed := b.BlendRgb(f, float64(a)/0xffff)
	r, g, bl := mixed.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// CSS renders c as a canvas "rgba(r, g, b, a)" style string.
func CSS(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", n.R, n.G, n.B, float64(n.A)/255)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// opaque strips alpha so colorful sees the straight RGB channels.
func opaque(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}
