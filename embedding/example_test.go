package embedding_test

import (
	"fmt"

	"github.com/katalvlaran/lvembed/embedding"
	"github.com/katalvlaran/lvembed/matrix"
)

// ExampleGSVD_Fit embeds the path graph 0-1-2-3 in two dimensions.
func ExampleGSVD_Fit() {
	adj, _ := matrix.CSRFromTriplets(4, 4,
		[]int{0, 1, 1, 2, 2, 3},
		[]int{1, 0, 2, 1, 3, 2},
		[]float64{1, 1, 1, 1, 1, 1},
	)

	g, _ := embedding.NewGSVD(2)
	if _, err := g.Fit(embedding.FromCSR(adj), embedding.WithSeed(42)); err != nil {
		fmt.Println("fit:", err)
		return
	}
	emb, _ := g.Embedding()
	s, _ := g.SingularValues()
	r, c := emb.Dims()

	fmt.Printf("embedding: %dx%d\n", r, c)
	fmt.Printf("singular values: %.4f %.4f\n", s[0], s[1])
	// Output:
	// embedding: 4x2
	// singular values: 1.0000 1.0000
}

// ExampleNewAdjacency shows the input type boundary.
func ExampleNewAdjacency() {
	_, err := embedding.NewAdjacency([][]float64{{0, 1}, {1, 0}})
	fmt.Println(err)
	// Output:
	// NewAdjacency: [][]float64: embedding: adjacency must be a dense matrix or a CSR matrix
}
