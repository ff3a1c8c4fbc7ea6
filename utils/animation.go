package utils

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/setanarut/allrgb"
	"golang.org/x/image/draw"
)

// GrowthRecorder turns progress reports of a generation run into
// animation frames. Pass Record as allrgb.Options.Progress.
type GrowthRecorder struct {
	// Background fills cells that are not painted yet.
	Background color.Color
	// Scale enlarges every frame by this integer factor.
	Scale int
	// Delay between frames in hundredths of a second.
	Delay int

	frames []*image.RGBA
}

func NewGrowthRecorder() *GrowthRecorder {
	return &GrowthRecorder{
		Background: color.Black,
		Scale:      1,
		Delay:      4,
	}
}

// Record appends a snapshot of the canvas in p.
func (r *GrowthRecorder) Record(p allrgb.Progress) {
	r.frames = append(r.frames, allrgb.Snapshot(p.Canvas, p.Visited, r.Background))
}

func (r *GrowthRecorder) Frames() int { return len(r.frames) }

// SaveAnimation writes the recorded frames as a looping GIF. Frames are
// reduced to 256 colors by median cut and Floyd-Steinberg dithered; the
// last frame is held for two seconds.
func (r *GrowthRecorder) SaveAnimation(filename string) error {
	if len(r.frames) == 0 {
		return errors.New("no frames recorded")
	}
	anim := &gif.GIF{}
	q := quantize.MedianCutQuantizer{}
	for i, frame := range r.frames {
		src := Upscale(frame, r.Scale)
		pal := q.Quantize(make(color.Palette, 0, 256), src)
		dst := image.NewPaletted(src.Bounds(), pal)
		draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, src.Bounds().Min)

		delay := r.Delay
		if i == len(r.frames)-1 {
			delay = 200
		}
		anim.Image = append(anim.Image, dst)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
