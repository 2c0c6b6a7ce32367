// SPDX-License-Identifier: MIT
// Package: lvembed/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; edges (i-1) → i for i = 1..n-1 in increasing order.
//   - Cycle: n ≥ 3; the path plus the closing edge (n-1) → 0.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity:
//   - Time: O(n). Space: O(n) triplets.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*edgeList, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		el := newEdgeList(n, n, 2*(n-1))
		for i := 1; i < n; i++ {
			el.edge(cfg, i-1, i)
		}

		return el, nil
	}
}

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*edgeList, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		el := newEdgeList(n, n, 2*n)
		for i := 1; i < n; i++ {
			el.edge(cfg, i-1, i)
		}
		el.edge(cfg, n-1, 0)

		return el, nil
	}
}
