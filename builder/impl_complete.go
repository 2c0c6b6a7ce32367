// SPDX-License-Identifier: MIT
// Package: lvembed/builder
//
// impl_complete.go - Complete(n) and Star(n) constructors.
//
// Contract:
//   - Complete: n ≥ 1; every pair {i, j}, i < j (directed: ordered pairs i ≠ j).
//   - Star: n ≥ 2; hub 0 connected to leaves 1..n-1 (directed: hub → leaf).
//   - No self-loops.
//
// Complexity:
//   - Complete: O(n²). Star: O(n).

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	methodStar       = "Star"
	minCompleteNodes = 1
	minStarNodes     = 2
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*edgeList, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		el := newEdgeList(n, n, n*(n-1))
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				el.edge(cfg, i, j)
				if cfg.directed {
					el.edge(cfg, j, i)
				}
			}
		}

		return el, nil
	}
}

// Star returns a Constructor that builds the star S_n with hub 0.
func Star(n int) Constructor {
	return func(cfg builderConfig) (*edgeList, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		el := newEdgeList(n, n, 2*(n-1))
		for leaf := 1; leaf < n; leaf++ {
			el.edge(cfg, 0, leaf)
		}

		return el, nil
	}
}
