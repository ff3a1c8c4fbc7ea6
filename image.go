package allrgb

import (
	"fmt"
	"strings"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Topology selects which cells count as neighbors.
type Topology int

const (
	// Moore connects a cell to its 8 surrounding cells. Diagonal contact
	// gives smoother gradients, so it is the default.
	Moore Topology = iota
	// VonNeumann connects a cell to its 4 edge-sharing cells only.
	VonNeumann
)

func (t Topology) String() string {
	switch t {
	case VonNeumann:
		return "vonneumann"
	default:
		return "moore"
	}
}

// ParseTopology accepts the names returned by Topology.String, plus
// "8" and "4".
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "moore", "8", "":
		return Moore, nil
	case "vonneumann", "von-neumann", "4":
		return VonNeumann, nil
	}
	return Moore, fmt.Errorf("allrgb: unknown topology %q", s)
}

// Image is a fixed size grid of pixels stored in row-major order.
type Image[P any] struct {
	Topology Topology
	w, h     int
	data     []P // len = w*h
}

// NewImage returns a width x height image with every pixel set to fill.
// It panics unless both dimensions are positive.
func NewImage[P any](fill P, width, height int) *Image[P] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("allrgb: invalid image size %dx%d", width, height))
	}
	data := make([]P, width*height)
	for i := range data {
		data[i] = fill
	}
	return &Image[P]{w: width, h: height, data: data}
}

func (im *Image[P]) Width() int { return im.w }
func (im *Image[P]) Height() int { return im.h }

// Contains reports whether (x, y) lies inside the image.
func (im *Image[P]) Contains(x, y int) bool {
	return uint(x) < uint(im.w) && uint(y) < uint(im.h)
}

// offset panics on out of range coordinates. Checking only the slice
// bound would let x = width silently alias the next row.
func (im *Image[P]) offset(x, y int) int {
	if !im.Contains(x, y) {
		panic(fmt.Sprintf("allrgb: pixel (%d,%d) outside %dx%d image", x, y, im.w, im.h))
	}
	return y*im.w + x
}

func (im *Image[P]) At(x, y int) P {
	return im.data[im.offset(x, y)]
}

func (im *Image[P]) Set(x, y int, pix P) {
	im.data[im.offset(x, y)] = pix
}

// View returns an image sharing im's pixels whose Neighbors follow topo.
func (im *Image[P]) View(topo Topology) *Image[P] {
	v := *im
	v.Topology = topo
	return &v
}

// Pixels exposes the backing slice. Callers must not modify it.
func (im *Image[P]) Pixels() []P { return im.data }

// Neighborhood holds up to 8 neighbor coordinates without allocating.
type Neighborhood struct {
	pts [8]Point
	n   int
}

func (nb *Neighborhood) Len() int { return nb.n }

// Points returns the neighbors in column-major order starting from the
// top-left one.
func (nb *Neighborhood) Points() []Point { return nb.pts[:nb.n] }

// Neighbors lists the in-bounds neighbors of (x, y) under im.Topology.
// (x, y) itself must be inside the image.
func (im *Image[P]) Neighbors(x, y int) Neighborhood {
	var nb Neighborhood
	diagonal := im.Topology == Moore
	for dx := -1; dx <= 1; dx++ {
		nx := x + dx
		if nx < 0 || nx >= im.w {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if dx != 0 && dy != 0 && !diagonal {
				continue
			}
			ny := y + dy
			if ny < 0 || ny >= im.h {
				continue
			}
			nb.pts[nb.n] = Point{X: nx, Y: ny}
			nb.n++
		}
	}
	return nb
}
