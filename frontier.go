package allrgb

// frontier is the set of unvisited cells touching the visited region.
//
// Members live in a dense slice so scoring walks contiguous memory;
// slot maps a cell offset to its index in cells plus one (0 = absent),
// which keeps add, remove and contains O(1). Removal swaps the last
// member into the freed slot, so iteration order is a pure function of
// the sequence of operations.
type frontier struct {
	w     int
	cells []Point
	slot  []int
}

func newFrontier(w, h int) *frontier {
	return &frontier{
		w:     w,
		cells: make([]Point, 0, 64),
		slot:  make([]int, w*h),
	}
}

func (f *frontier) len() int { return len(f.cells) }

func (f *frontier) contains(p Point) bool {
	return f.slot[p.Y*f.w+p.X] != 0
}

func (f *frontier) add(p Point) {
	off := p.Y*f.w + p.X
	if f.slot[off] != 0 {
		return
	}
	f.cells = append(f.cells, p)
	f.slot[off] = len(f.cells)
}

func (f *frontier) remove(p Point) {
	off := p.Y*f.w + p.X
	i := f.slot[off] - 1
	if i < 0 {
		return
	}
	last := len(f.cells) - 1
	if i != last {
		moved := f.cells[last]
		f.cells[i] = moved
		f.slot[moved.Y*f.w+moved.X] = i + 1
	}
	f.cells = f.cells[:last]
	f.slot[off] = 0
}
