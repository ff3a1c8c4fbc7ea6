package allrgb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontierSetSemantics(t *testing.T) {
	f := newFrontier(4, 4)
	f.add(Point{1, 1})
	f.add(Point{2, 1})
	f.add(Point{1, 1})
	require.Equal(t, 2, f.len())
	require.True(t, f.contains(Point{1, 1}))
	require.False(t, f.contains(Point{3, 3}))

	f.remove(Point{3, 3})
	require.Equal(t, 2, f.len())

	f.remove(Point{1, 1})
	require.Equal(t, 1, f.len())
	require.False(t, f.contains(Point{1, 1}))
	require.True(t, f.contains(Point{2, 1}))
	require.Equal(t, []Point{{2, 1}}, f.cells)
}

func TestFrontierSwapRemoveKeepsIndex(t *testing.T) {
	f := newFrontier(3, 3)
	pts := []Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}}
	for _, p := range pts {
		f.add(p)
	}
	f.remove(Point{1, 0})
	require.Equal(t, []Point{{0, 0}, {0, 1}, {2, 0}}, f.cells)
	for i, p := range f.cells {
		require.Equal(t, i+1, f.slot[p.Y*f.w+p.X])
	}
	f.remove(Point{2, 0})
	f.remove(Point{0, 0})
	f.remove(Point{0, 1})
	require.Zero(t, f.len())
	for _, s := range f.slot {
		require.Zero(t, s)
	}
}
