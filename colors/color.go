package colors

import (
	"image/color"
	"math"

	"github.com/echoflaresat/punter/vectors"
)

// Color4 is a linear RGBA color with float64 components in [0,1].
type Color4 struct {
	R, G, B, A float64
}

func New(r, g, b, a float64) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

func Black() Color4 {
	return Color4{R: 0, G: 0, B: 0, A: 1}
}

// FromDirection visualises a unit direction: x, y and z become R, G and B,
// with the zero vector at 50% grey.
func FromDirection(d vectors.Vec3) Color4 {
	return Color4{
		R: (d.X + 1) * 0.5,
		G: (d.Y + 1) * 0.5,
		B: (d.Z + 1) * 0.5,
		A: 1,
	}
}

// ToNRGBA quantises each channel to round(255 * clamp01(x)).
func (c Color4) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		to8bit(c.R),
		to8bit(c.G),
		to8bit(c.B),
		to8bit(c.A),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8bit(x float64) uint8 {
	return uint8(math.Round(255.0 * clamp01(x)))
}
