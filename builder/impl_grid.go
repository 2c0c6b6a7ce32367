// SPDX-License-Identifier: MIT
// Package: lvembed/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1; node index of cell (r, c) is r*cols + c.
//   - Right and bottom neighbors are linked in row-major cell order
//     (directed: forward orientation only).
//
// Complexity:
//   - Time: O(rows·cols). Space: O(rows·cols) triplets.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds the rows×cols lattice graph.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*edgeList, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		n := rows * cols
		el := newEdgeList(n, n, 4*n)
		var r, c, u int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = r*cols + c
				if c+1 < cols {
					el.edge(cfg, u, u+1)
				}
				if r+1 < rows {
					el.edge(cfg, u, u+cols)
				}
			}
		}

		return el, nil
	}
}
