// SPDX-License-Identifier: MIT

// Package embedding: functional configuration.
//
// Two option families:
//   - Option configures the estimator itself (logger) at NewGSVD time.
//   - FitOption configures one Fit call (decomposer choice and the randomized
//     solver's knobs). Iteration/normalizer/seed settings apply to the randomized
//     decomposer; they are ignored when the exact decomposer is selected.
//
// Constructors panic on nonsensical values (programmer error), in line with
// the linalg options they forward to.

package embedding

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvembed/linalg"
)

// Option configures a GSVD estimator.
type Option func(*GSVD)

// WithLogger sets the structured logger. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(g *GSVD) {
		if l == nil {
			l = zap.NewNop()
		}
		g.logger = l
	}
}

// FitOption configures a single Fit call.
type FitOption func(*fitOptions)

type solverKind int

const (
	solverRandomized solverKind = iota
	solverExact
	solverAuto
	solverCustom
)

type fitOptions struct {
	solver  solverKind
	custom  linalg.LowRankDecomposer
	sketch  []linalg.Option // forwarded to the randomized solver
	seeded  bool
	seedVal int64
}

// WithRandomized selects the Halko randomized SVD (the default).
func WithRandomized() FitOption {
	return func(o *fitOptions) { o.solver = solverRandomized }
}

// WithExact selects the Lanczos exact SVD. Requires dimension < min(n, m).
func WithExact() FitOption {
	return func(o *fitOptions) { o.solver = solverExact }
}

// WithAutoSolver picks Halko above linalg.AutoSolverThreshold stored entries
// and Lanczos otherwise.
func WithAutoSolver() FitOption {
	return func(o *fitOptions) { o.solver = solverAuto }
}

// WithDecomposer plugs in any LowRankDecomposer. Panics if d is nil.
// The randomized knobs below are not forwarded to a custom decomposer.
func WithDecomposer(d linalg.LowRankDecomposer) FitOption {
	if d == nil {
		panic("embedding: WithDecomposer(nil)")
	}
	return func(o *fitOptions) {
		o.solver = solverCustom
		o.custom = d
	}
}

// WithIterations sets the randomized solver's power iterations
// (linalg.AutoIterations by default).
func WithIterations(n int) FitOption {
	opt := linalg.WithIterations(n)
	return func(o *fitOptions) { o.sketch = append(o.sketch, opt) }
}

// WithNormalizer sets the randomized solver's power-iteration normalizer.
func WithNormalizer(n linalg.Normalizer) FitOption {
	opt := linalg.WithNormalizer(n)
	return func(o *fitOptions) { o.sketch = append(o.sketch, opt) }
}

// WithSeed fixes the randomized solver's random source. Two fits of the same
// adjacency with the same seed produce identical results.
func WithSeed(seed int64) FitOption {
	return func(o *fitOptions) {
		o.seeded = true
		o.seedVal = seed
	}
}

func gatherFitOptions(user ...FitOption) fitOptions {
	var o fitOptions
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.seeded {
		o.sketch = append(o.sketch, linalg.WithSeed(o.seedVal))
	}

	return o
}

// decomposer resolves the LowRankDecomposer for an adjacency with nnz stored entries.
func (o fitOptions) decomposer(nnz int) linalg.LowRankDecomposer {
	switch o.solver {
	case solverExact:
		return linalg.NewLanczosSVD()
	case solverAuto:
		return linalg.AutoSVD(nnz, o.sketch, nil)
	case solverCustom:
		return o.custom
	default:
		return linalg.NewHalkoSVD(o.sketch...)
	}
}
