package graphics

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGBA colour as used by lights, billboards and the star tables.
type Color struct {
	R, G, B, A uint8
}

var (
	White = FromColor(colornames.White)
	Black = FromColor(colornames.Black)
)

// FromColor converts any image/color value (e.g. a colornames entry).
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Mul modulates two colours channel by channel, 255 being the identity.
func (c Color) Mul(o Color) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(o.R) / 255),
		G: uint8(uint16(c.G) * uint16(o.G) / 255),
		B: uint8(uint16(c.B) * uint16(o.B) / 255),
		A: uint8(uint16(c.A) * uint16(o.A) / 255),
	}
}

// Scale multiplies the RGB channels by f (clamped to [0,1]); alpha is kept.
func (c Color) Scale(f float32) Color {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return Color{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}

// WithAlpha returns the colour with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Luminance returns the perceived brightness in [0,255].
func (c Color) Luminance() float32 {
	return 0.299*float32(c.R) + 0.587*float32(c.G) + 0.114*float32(c.B)
}

// Vec4 returns the colour as normalized floats for shader uniforms.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
