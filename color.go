package allrgb

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Rgb is an opaque color with 8 bits per channel.
type Rgb struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Rgb) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Colorful returns c as a colorful.Color with channels in [0,1].
func (c Rgb) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// RgbFromColorful clamps c into gamut and quantizes it to 8 bits per channel.
func RgbFromColorful(c colorful.Color) Rgb {
	r, g, b := c.Clamped().RGB255()
	return Rgb{R: r, G: g, B: b}
}

// ColorDist is the squared euclidean distance between a and b in RGB space.
func ColorDist(a, b Rgb) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
