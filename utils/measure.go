package utils

import (
	"github.com/setanarut/allrgb"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Smoothness summarizes the color distance between neighboring pixels.
// Lower values mean softer gradients.
type Smoothness struct {
	Pairs  int
	Mean   float64
	StdDev float64
	Max    float64
}

// Measure computes the distance statistics over every neighboring pair
// of img under topo, counting each pair once.
func Measure(img *allrgb.Image[allrgb.Rgb], topo allrgb.Topology) Smoothness {
	w, h := img.Width(), img.Height()
	view := img.View(topo)

	dists := make([]float64, 0, w*h*4)
	for y := range h {
		for x := range w {
			c := img.At(x, y)
			nb := view.Neighbors(x, y)
			for _, q := range nb.Points() {
				if q.Y < y || (q.Y == y && q.X < x) {
					continue
				}
				dists = append(dists, float64(allrgb.ColorDist(c, img.At(q.X, q.Y))))
			}
		}
	}
	if len(dists) == 0 {
		return Smoothness{}
	}
	mean, std := stat.MeanStdDev(dists, nil)
	if len(dists) == 1 {
		std = 0
	}
	return Smoothness{
		Pairs:  len(dists),
		Mean:   mean,
		StdDev: std,
		Max:    floats.Max(dists),
	}
}
