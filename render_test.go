package allrgb

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePPM(t *testing.T) {
	img := NewImage(Rgb{}, 2, 2)
	img.Set(0, 0, Rgb{1, 2, 3})
	img.Set(1, 0, Rgb{4, 5, 6})
	img.Set(0, 1, Rgb{7, 8, 9})
	img.Set(1, 1, Rgb{10, 11, 12})

	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, img))

	want := append([]byte("P6\n2 2\n255\n"), 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	require.Equal(t, want, buf.Bytes())
}

func TestWritePPMNonSquare(t *testing.T) {
	colors := EquallySpacedColors(2)
	img, err := Generate(colors, 4, 2, []Point{{0, 0}}, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, img))
	header := "P6\n4 2\n255\n"
	require.Equal(t, header, buf.String()[:len(header)])
	require.Len(t, buf.Bytes(), len(header)+4*2*3)

	body := buf.Bytes()[len(header):]
	for i, c := range img.Pixels() {
		require.Equal(t, []byte{c.R, c.G, c.B}, body[i*3:i*3+3])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePPMPropagatesErrors(t *testing.T) {
	img := NewImage(Rgb{}, 1, 1)
	require.EqualError(t, WritePPM(failingWriter{}, img), "disk full")
}

func TestToRGBAAndSnapshot(t *testing.T) {
	canvas := NewImage(Rgb{}, 2, 1)
	canvas.Set(0, 0, Rgb{10, 20, 30})
	canvas.Set(1, 0, Rgb{40, 50, 60})

	rgba := ToRGBA(canvas)
	require.Equal(t, color.RGBA{10, 20, 30, 255}, rgba.RGBAAt(0, 0))
	require.Equal(t, color.RGBA{40, 50, 60, 255}, rgba.RGBAAt(1, 0))

	visited := NewImage(false, 2, 1)
	visited.Set(0, 0, true)
	snap := Snapshot(canvas, visited, color.White)
	require.Equal(t, color.RGBA{10, 20, 30, 255}, snap.RGBAAt(0, 0))
	require.Equal(t, color.RGBA{255, 255, 255, 255}, snap.RGBAAt(1, 0))
}
