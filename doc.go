// Package lvembed computes spectral embeddings of weighted graphs, from sparse
// storage primitives to truncated SVD solvers and the GSVD estimator itself.
//
// 🚀 What is lvembed?
//
//	A small, deterministic library that brings together:
//		• Storage: row-major Dense and compressed-sparse-row CSR matrices
//		• Degrees: out/in degree vectors and the D^{-1/2} pseudo-inverse policy
//		• Solvers: randomized (Halko) and exact (Lanczos) truncated SVD
//		• Embedding: GSVD coordinates for row and column nodes of any
//		  directed or bipartite graph
//
// ✨ Why choose lvembed?
//
//   - Reproducible – seeded solvers give bit-identical output
//   - Sparse-first – nothing is densified on the hot path
//   - Pluggable – any LowRankDecomposer can drive the estimator
//   - Pure Go – gonum for dense kernels, zap for structured logs
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/    - Dense & CSR storage, validators, degree normalization
//	linalg/    - Operator contract, HalkoSVD, LanczosSVD, AutoSVD
//	embedding/ - Adjacency input variant and the GSVD estimator
//	builder/   - deterministic adjacency generators (path, grid, bipartite, random)
//
// Quick example:
//
//	g, _ := embedding.NewGSVD(2)
//	emb, err := g.FitTransform(embedding.FromCSR(adj), embedding.WithSeed(42))
//
//	go get github.com/katalvlaran/lvembed
package lvembed
