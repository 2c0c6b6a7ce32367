// SPDX-License-Identifier: MIT
// Package: lvembed/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildAdjacency(opts, con). Resolves cfg, runs con,
//     assembles the CSR.
//   - All public factories are implemented in impl_*.go.
//   - Determinism: same options/seed and constructor ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvembed/matrix"
)

// Constructor emits the edges of one graph family for the resolved config.
// Constructors MUST validate parameters early and return sentinel errors.
type Constructor func(cfg builderConfig) (*edgeList, error)

// BuildAdjacency resolves the builder configuration from opts, runs con and
// compresses the emitted edges into a CSR (duplicate coordinates summed).
//
// Errors:
//   - ErrConstructFailed for a nil constructor; constructor sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource) and
//     matrix errors, all wrapped with "BuildAdjacency: %w".
//
// Complexity: constructor cost + O(E log E) for the triplet sort.
func BuildAdjacency(opts []BuilderOption, con Constructor) (*matrix.CSR, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildAdjacency: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	el, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", err)
	}
	m, err := matrix.CSRFromTriplets(el.rows, el.cols, el.ri, el.ci, el.w)
	if err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", err)
	}

	return m, nil
}
