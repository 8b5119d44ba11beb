// Package colormix interpolates scalars and colors by a normalized progress value.
package colormix

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Mix returns a + t*(b-a). Values of t outside [0, 1] extrapolate.
func Mix(t, a, b float64) float64 {
	if t == 1 {
		return b
	}
	return a + t*(b-a)
}

// Color holds 0-255 channels and an optional 0-1 alpha.
type Color struct {
	R, G, B  float64
	A        float64
	HasAlpha bool
}

func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// Hex parses "#rrggbb" into an opaque color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(float64(r), float64(g), float64(b)), nil
}

// MustHex is Hex for package-level palettes.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with an explicit alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	c.HasAlpha = true
	return c
}

// MixColor blends a into b channel by channel. RGB channels are floored.
// Alpha is interpolated only when both endpoints carry one; otherwise the
// result is opaque.
func MixColor(t float64, a, b Color) Color {
	out := RGB(
		math.Floor(Mix(t, a.R, b.R)),
		math.Floor(Mix(t, a.G, b.G)),
		math.Floor(Mix(t, a.B, b.B)),
	)
	if a.HasAlpha && b.HasAlpha {
		return out.WithAlpha(Mix(t, a.A, b.A))
	}
	return out
}

// NRGBA converts to a non-premultiplied color, clamping each channel.
func (c Color) NRGBA() color.NRGBA {
	a := 1.0
	if c.HasAlpha {
		a = c.A
	}
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(a * 255),
	}
}

// Hex formats the RGB channels as "#rrggbb".
func (c Color) Hex() string {
	n := c.NRGBA()
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}.Hex()
}

// CSS formats c as rgb(...) or rgba(...).
func (c Color) CSS() string {
	r, g, b := int(math.Floor(c.R)), int(math.Floor(c.G)), int(math.Floor(c.B))
	if c.HasAlpha {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(c.A, 'f', -1, 64))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
