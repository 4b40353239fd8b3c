package bench

import (
	"testing"

	"github.com/G4mingJon4s/govo/internal/bench"
)

func BenchmarkAlphaBeta(b *testing.B) {
	for _, c := range bench.Suite {
		c := c
		b.Run(c.Fixture.Name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := bench.RunAlphaBeta(c); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMCTS(b *testing.B) {
	for _, c := range bench.Suite {
		c := c
		b.Run(c.Fixture.Name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := bench.RunMCTS(c); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
