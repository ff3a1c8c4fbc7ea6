package allrgb

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// WritePPM encodes img as a binary PPM (P6) with a maxval of 255.
func WritePPM(w io.Writer, img *Image[Rgb]) error {
	out := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(out, "P6\n%d %d\n255\n", img.w, img.h); err != nil {
		return err
	}
	row := make([]byte, 0, img.w*3)
	for y := range img.h {
		row = row[:0]
		for _, c := range img.data[y*img.w : (y+1)*img.w] {
			row = append(row, c.R, c.G, c.B)
		}
		if _, err := out.Write(row); err != nil {
			return err
		}
	}
	return out.Flush()
}

// ToRGBA copies img into an opaque *image.RGBA.
func ToRGBA(img *Image[Rgb]) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, img.w, img.h))
	for i, c := range img.data {
		off := i * 4
		dst.Pix[off] = c.R
		dst.Pix[off+1] = c.G
		dst.Pix[off+2] = c.B
		dst.Pix[off+3] = 255
	}
	return dst
}

// Snapshot renders a run in progress, painting unvisited cells with background.
func Snapshot(canvas *Image[Rgb], visited *Image[bool], background color.Color) *image.RGBA {
	dst := ToRGBA(canvas)
	bg := color.RGBAModel.Convert(background).(color.RGBA)
	for i, ok := range visited.data {
		if ok {
			continue
		}
		off := i * 4
		dst.Pix[off] = bg.R
		dst.Pix[off+1] = bg.G
		dst.Pix[off+2] = bg.B
		dst.Pix[off+3] = bg.A
	}
	return dst
}
