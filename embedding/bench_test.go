package embedding_test

import (
	"testing"

	"github.com/katalvlaran/lvembed/builder"
	"github.com/katalvlaran/lvembed/embedding"
	"github.com/katalvlaran/lvembed/matrix"
)

// benchSink keeps the compiler from discarding results.
var benchSink *embedding.GSVD

// randomGraph builds a seeded directed graph with edge probability p.
func randomGraph(b *testing.B, n int, p float64, seed int64) *matrix.CSR {
	b.Helper()
	m, err := builder.BuildAdjacency(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDirected(true), builder.WithUniformWeight(1, 2)},
		builder.RandomSparse(n, p),
	)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkFitRandomized(b *testing.B) {
	adj := embedding.FromCSR(randomGraph(b, 2000, 0.004, 1))
	g, _ := embedding.NewGSVD(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := g.Fit(adj, embedding.WithSeed(1))
		if err != nil {
			b.Fatal(err)
		}
		benchSink = res
	}
}

func BenchmarkFitExact(b *testing.B) {
	adj := embedding.FromCSR(randomGraph(b, 800, 0.01, 2))
	g, _ := embedding.NewGSVD(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := g.Fit(adj, embedding.WithExact())
		if err != nil {
			b.Fatal(err)
		}
		benchSink = res
	}
}
