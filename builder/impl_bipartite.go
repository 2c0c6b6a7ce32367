// SPDX-License-Identifier: MIT
// Package: lvembed/builder
//
// impl_bipartite.go - CompleteBipartite(m, n) and RandomBipartite(m, n, p).
//
// Contract:
//   - The result is the m×n biadjacency B (rows = left part, cols = right part),
//     not the (m+n)×(m+n) adjacency; WithDirected has no effect.
//   - m, n ≥ 1; 0 ≤ p ≤ 1; an RNG is needed when 0 < p < 1.
//   - Stable trial order: left i asc, right j asc.
//
// Complexity:
//   - Time: O(m·n). Space: O(E) triplets.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodRandomBipartite   = "RandomBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds the biadjacency of K_{m,n}.
func CompleteBipartite(m, n int) Constructor {
	return func(cfg builderConfig) (*edgeList, error) {
		if m < minPartitionSize || n < minPartitionSize {
			return nil, fmt.Errorf("%s: m=%d, n=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, m, n, minPartitionSize, ErrTooFewVertices)
		}
		el := newEdgeList(m, n, m*n)
		var i, j int
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				el.arc(i, j, cfg.weightFn(cfg.rng))
			}
		}

		return el, nil
	}
}

// RandomBipartite returns a Constructor that keeps each left-right pair with probability p.
func RandomBipartite(m, n int, p float64) Constructor {
	return func(cfg builderConfig) (*edgeList, error) {
		if m < minPartitionSize || n < minPartitionSize {
			return nil, fmt.Errorf("%s: m=%d, n=%d (each must be ≥ %d): %w",
				methodRandomBipartite, m, n, minPartitionSize, ErrTooFewVertices)
		}
		if err := validateProbability(methodRandomBipartite, p, cfg); err != nil {
			return nil, err
		}
		el := newEdgeList(m, n, int(p*float64(m*n))+1)
		var i, j int
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				if keep(cfg, p) {
					el.arc(i, j, cfg.weightFn(cfg.rng))
				}
			}
		}

		return el, nil
	}
}
