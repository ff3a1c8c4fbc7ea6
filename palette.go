package allrgb

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// MaxLevels is the largest number of distinct values an 8-bit channel holds.
const MaxLevels = 256

var ErrNotCubic = errors.New("allrgb: image area is not a cube of a channel level count")

// CubeSide returns n such that n*n*n == width*height and n <= MaxLevels.
func CubeSide(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	area := width * height
	n := int(math.Round(math.Cbrt(float64(area))))
	if n*n*n != area || n > MaxLevels {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotCubic, width, height)
	}
	return n, nil
}

// level maps i in [0,n) onto [0,255], hitting both ends.
func level(i, n int) uint8 {
	if n == 1 {
		return 0
	}
	return uint8(i * 255 / (n - 1))
}

// EquallySpacedColors returns the n*n*n colors of an evenly spaced RGB
// cube, red varying slowest. It panics unless 1 <= n <= MaxLevels.
func EquallySpacedColors(n int) []Rgb {
	if n < 1 || n > MaxLevels {
		panic(fmt.Sprintf("allrgb: %d levels per channel out of range", n))
	}
	colors := make([]Rgb, 0, n*n*n)
	for ri := range n {
		for gi := range n {
			for bi := range n {
				colors = append(colors, Rgb{level(ri, n), level(gi, n), level(bi, n)})
			}
		}
	}
	return colors
}

// Shuffle randomizes the order of colors in place. Generate consumes
// colors from the end, so an unshuffled cube produces visible striping.
func Shuffle(colors []Rgb, r *rand.Rand) {
	r.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})
}
