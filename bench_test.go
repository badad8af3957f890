package salience_test

import (
	"testing"

	"github.com/katalvlaran/salience"
	"github.com/katalvlaran/salience/builder"
	"github.com/katalvlaran/salience/core"
)

// benchGraph builds a weighted complete graph K_n, the densest workload:
// N shortest-path runs over N(N-1)/2 edges.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.Option{builder.WithWeightFn(func(u, v string) float64 {
			return float64(len(u)+len(v)) / 2
		})},
		builder.Complete(n),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkSalience_Complete16(b *testing.B) {
	g := benchGraph(b, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := salience.Salience(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSalience_Complete48(b *testing.B) {
	g := benchGraph(b, 48)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := salience.Salience(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSalienceUnweighted_Cycle256(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(256))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := salience.SalienceUnweighted(g); err != nil {
			b.Fatal(err)
		}
	}
}
