// SPDX-License-Identifier: MIT
// Package: lvembed/builder
//
// config.go - resolved builder configuration and the edge accumulator.
//
// Contract:
//   - builderConfig is immutable once resolved by newBuilderConfig.
//   - edgeList records (row, col, weight) triplets in emission order; duplicate
//     coordinates are summed when the CSR is assembled.

package builder

import "math/rand"

// builderConfig holds the knobs shared by every constructor.
type builderConfig struct {
	rng      *rand.Rand // nil unless WithSeed/WithRand was given
	weightFn WeightFn   // per-edge weight source
	directed bool       // false ⇒ emit both orientations of an edge
}

// newBuilderConfig applies options over the defaults (constant weight 1, undirected).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// edgeList is the triplet accumulator filled by constructors.
type edgeList struct {
	rows, cols int
	ri, ci     []int
	w          []float64
}

func newEdgeList(rows, cols, capacity int) *edgeList {
	return &edgeList{
		rows: rows,
		cols: cols,
		ri:   make([]int, 0, capacity),
		ci:   make([]int, 0, capacity),
		w:    make([]float64, 0, capacity),
	}
}

// arc records the single entry A[u, v] = w.
func (e *edgeList) arc(u, v int, w float64) {
	e.ri = append(e.ri, u)
	e.ci = append(e.ci, v)
	e.w = append(e.w, w)
}

// edge records u→v and, unless directed, v→u with the same weight.
func (e *edgeList) edge(cfg builderConfig, u, v int) {
	w := cfg.weightFn(cfg.rng)
	e.arc(u, v, w)
	if !cfg.directed && u != v {
		e.arc(v, u, w)
	}
}
