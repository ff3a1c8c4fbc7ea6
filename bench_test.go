package allrgb

import (
	"fmt"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	sizes := []struct{ w, h int }{
		{8, 8},
		{64, 64},
		{256, 128},
	}
	for _, topo := range []Topology{Moore, VonNeumann} {
		for _, s := range sizes {
			n, err := CubeSide(s.w, s.h)
			if err != nil {
				b.Fatal(err)
			}
			colors := shuffledCube(n, 42)
			seeds := []Point{{s.w / 2, s.h / 2}}
			name := fmt.Sprintf("%dx%d-%s", s.w, s.h, topo)
			b.Run(name, func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := Generate(colors, s.w, s.h, seeds, Options{Topology: topo}); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
