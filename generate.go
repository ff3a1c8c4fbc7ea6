package allrgb

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSize     = errors.New("allrgb: image dimensions must be positive")
	ErrSizeMismatch    = errors.New("allrgb: palette size does not match image area")
	ErrNoSeeds         = errors.New("allrgb: at least one seed is required")
	ErrSeedOutOfBounds = errors.New("allrgb: seed outside image")
)

// InvariantViolation is the panic value raised when the fill reaches a
// state that correct bookkeeping cannot produce, such as an empty
// frontier while colors remain.
type InvariantViolation struct {
	Msg string
}

func (e InvariantViolation) Error() string {
	return "allrgb: invariant violation: " + e.Msg
}

type Options struct {
	// Neighbor topology used both for scoring and for growing the frontier.
	Topology Topology
	// Progress is called after every ProgressEvery placements, and once
	// more when the image is complete. Zero disables periodic reports.
	ProgressEvery int
	// Progress receives live views of the run. It must not modify them.
	Progress func(Progress)
}

func DefaultOptions() Options {
	return Options{
		Topology: Moore,
	}
}

// Progress describes a generation run in flight.
type Progress struct {
	Placed, Total int
	Canvas        *Image[Rgb]
	Visited       *Image[bool]
}

func (p Progress) Done() bool { return p.Placed == p.Total }

// Generate paints a width x height image using every color of colors
// exactly once. colors is treated as a stack: the last element is
// placed first. Seeds are painted in slice order, duplicates are
// ignored, and growth then proceeds from the frontier around them, each
// color going to the frontier cell whose painted neighbors are closest
// to it on average.
//
// colors itself is not modified.
func Generate(colors []Rgb, width, height int, seeds []Point, opt Options) (*Image[Rgb], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if len(colors) != width*height {
		return nil, fmt.Errorf("%w: %d colors for %dx%d", ErrSizeMismatch, len(colors), width, height)
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	for _, s := range seeds {
		if uint(s.X) >= uint(width) || uint(s.Y) >= uint(height) {
			return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrSeedOutOfBounds, s.X, s.Y, width, height)
		}
	}

	f := newFiller(width, height, opt.Topology)
	stack := colors
	pop := func() Rgb {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return c
	}

	reported := -1
	report := func() {
		reported = f.placed
		opt.Progress(Progress{
			Placed:  f.placed,
			Total:   len(colors),
			Canvas:  f.canvas,
			Visited: f.seen,
		})
	}
	periodic := opt.Progress != nil && opt.ProgressEvery > 0

	for _, s := range seeds {
		if f.seen.At(s.X, s.Y) {
			continue
		}
		f.seed(s, pop())
	}
	for len(stack) > 0 {
		f.place(pop())
		if periodic && f.placed%opt.ProgressEvery == 0 {
			report()
		}
	}
	if opt.Progress != nil && reported != f.placed {
		report()
	}
	return f.canvas, nil
}

// filler owns the state of one generation run.
type filler struct {
	w      int
	canvas *Image[Rgb]
	seen   *Image[bool]
	free   *frontier
	placed int
}

func newFiller(w, h int, topo Topology) *filler {
	f := &filler{
		w:      w,
		canvas: NewImage(Rgb{}, w, h),
		seen:   NewImage(false, w, h),
		free:   newFrontier(w, h),
	}
	f.canvas.Topology = topo
	f.seen.Topology = topo
	return f
}

func (f *filler) seed(p Point, c Rgb) {
	f.paint(p, c)
}

// place puts c on the best frontier cell and returns that cell.
func (f *filler) place(c Rgb) Point {
	p := f.best(c)
	f.paint(p, c)
	return p
}

func (f *filler) paint(p Point, c Rgb) {
	if f.seen.At(p.X, p.Y) {
		panic(InvariantViolation{Msg: fmt.Sprintf("cell (%d,%d) painted twice", p.X, p.Y)})
	}
	f.canvas.Set(p.X, p.Y, c)
	f.seen.Set(p.X, p.Y, true)
	f.placed++

	f.free.remove(p)
	seen := f.seen.data
	nb := f.seen.Neighbors(p.X, p.Y)
	for _, q := range nb.Points() {
		if !seen[q.Y*f.w+q.X] {
			f.free.add(q)
		}
	}
}

// best returns the frontier cell minimizing the mean distance between
// c and its painted neighbors. Ties go to the earliest member.
func (f *filler) best(c Rgb) Point {
	if f.free.len() == 0 {
		panic(InvariantViolation{Msg: fmt.Sprintf("frontier empty with %d cells unpainted", len(f.seen.data)-f.placed)})
	}
	best := f.free.cells[0]
	bestScore := math.MaxInt
	for _, p := range f.free.cells {
		if s := f.score(p, c); s < bestScore {
			bestScore = s
			best = p
		}
	}
	return best
}

func (f *filler) score(p Point, c Rgb) int {
	seen := f.seen.data
	pix := f.canvas.data
	neighbors, total := 0, 0
	nb := f.seen.Neighbors(p.X, p.Y)
	for _, q := range nb.Points() {
		off := q.Y*f.w + q.X
		if !seen[off] {
			continue
		}
		neighbors++
		total += ColorDist(c, pix[off])
	}
	if neighbors == 0 {
		panic(InvariantViolation{Msg: fmt.Sprintf("frontier cell (%d,%d) has no painted neighbor", p.X, p.Y)})
	}
	return total / neighbors
}
