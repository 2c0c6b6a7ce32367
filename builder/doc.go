// Package builder generates weighted adjacency matrices of classic graph
// families as *matrix.CSR, ready to feed the embedding estimator.
//
// 🚀 What is inside?
//
//	One orchestrator, BuildAdjacency(opts, constructor), and a set of
//	deterministic constructors:
//	  • Path, Cycle, Star, Complete, Grid        (square n×n adjacency)
//	  • CompleteBipartite, RandomBipartite       (rectangular m×n biadjacency)
//	  • RandomSparse                             (Erdős–Rényi-like, seeded)
//
// ⚙️ Usage:
//
//	adj, err := builder.BuildAdjacency(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 5)},
//		builder.RandomSparse(500, 0.02),
//	)
//
// Conventions:
//   - Undirected constructors store every edge in both directions (symmetric A);
//     WithDirected(true) keeps only the forward orientation.
//   - Same options, seed and constructor ⇒ identical matrices.
//   - Constructors return sentinel errors; option constructors panic on
//     meaningless input.
package builder
