// Package embedding computes GSVD (generalized singular value decomposition)
// embeddings of weighted graphs.
//
// Given a non-negative adjacency A of shape (n, m), the estimator produces
// k-dimensional coordinates for every row node (Embedding, n×k) and every
// column node (Features, m×k). Directed graphs and bipartite graphs are the
// same thing here: rows and columns are embedded independently.
//
// Usage:
//
//	g, _ := embedding.NewGSVD(2, embedding.WithLogger(logger))
//	if _, err := g.Fit(embedding.FromCSR(adj), embedding.WithSeed(42)); err != nil {
//		// ErrZeroWeight, matrix.ErrNegativeWeight, linalg.ErrInvalidRank, ...
//	}
//	emb, _ := g.Embedding()
//
// Solvers:
//   - WithRandomized (default): Halko randomized SVD; reproducible under WithSeed.
//   - WithExact: Lanczos bidiagonalization; needs k < min(n, m).
//   - WithAutoSolver: Halko above linalg.AutoSolverThreshold stored entries.
//   - WithDecomposer: any linalg.LowRankDecomposer.
//
// Isolated nodes (zero out- or in-degree) are not an error: before centering
// their coordinates are exactly zero, and afterwards they sit at minus the
// center-of-mass shift.
package embedding
