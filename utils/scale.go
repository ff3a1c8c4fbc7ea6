package utils

import (
	"image"

	"golang.org/x/image/draw"
)

// Upscale enlarges img by an integer factor without smoothing, so each
// source pixel stays a crisp square. Factors below 2 return img as is.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	sr := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sr.Dx()*factor, sr.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, sr, draw.Src, nil)
	return dst
}
