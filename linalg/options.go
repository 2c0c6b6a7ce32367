// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for the low-rank decomposers.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that applies defaults then user options.
//
// Design goals:
//   - Deterministic behavior: a seeded decomposer never consults the clock.
//   - One Options type for every decomposer; each reads only the fields it uses
//     (Halko: iterations/normalizer/oversamples/seed; Lanczos: tolerance/maxIter/seed).
//   - Safe by construction: panic only on invalid parameters (programmer error).
package linalg

import (
	"fmt"
	"math"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// AutoIterations selects the power-iteration count from k and the operator shape:
	// 7 when k < 0.1·min(r, c), otherwise 4.
	AutoIterations = -1

	// DefaultOversamples is the number of extra sketch columns beyond k.
	DefaultOversamples = 10

	// DefaultTolerance is the relative Ritz residual (against σmax) accepted by Lanczos.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations = 0 lets Lanczos grow its subspace up to min(r, c),
	// where the bidiagonalization is exact.
	DefaultMaxIterations = 0

	// DefaultLanczosSeed seeds the Lanczos start vector so exact solves are reproducible.
	DefaultLanczosSeed int64 = 1

	// autoIterationsSmall / autoIterationsLarge / autoRankRatio encode the AutoIterations policy.
	autoIterationsSmall = 7
	autoIterationsLarge = 4
	autoRankRatio       = 0.1

	// autoNormalizerThreshold: Auto normalizer uses None at or below this many iterations.
	autoNormalizerThreshold = 2
)

// Normalizer selects how the power-iteration sketch is re-orthogonalized.
type Normalizer int

const (
	// NormalizerAuto picks None for iterations <= 2 and LU otherwise.
	NormalizerAuto Normalizer = iota
	// NormalizerQR re-orthonormalizes with a thin Householder QR (most stable, slowest).
	NormalizerQR
	// NormalizerLU rescales with the P·L factor of a partial-pivot LU (cheaper than QR).
	NormalizerLU
	// NormalizerNone skips normalization (fastest; fine for few iterations).
	NormalizerNone
)

// String returns the canonical spelling ("auto", "QR", "LU", "none").
func (n Normalizer) String() string {
	switch n {
	case NormalizerAuto:
		return "auto"
	case NormalizerQR:
		return "QR"
	case NormalizerLU:
		return "LU"
	case NormalizerNone:
		return "none"
	default:
		return fmt.Sprintf("Normalizer(%d)", int(n))
	}
}

func (n Normalizer) valid() bool { return n >= NormalizerAuto && n <= NormalizerNone }

// ParseNormalizer maps "auto", "QR", "LU" and "none" (case-insensitive; "" means none)
// onto a Normalizer.
func ParseNormalizer(s string) (Normalizer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return NormalizerAuto, nil
	case "qr":
		return NormalizerQR, nil
	case "lu":
		return NormalizerLU, nil
	case "none", "":
		return NormalizerNone, nil
	default:
		return NormalizerAuto, linalgErrorf("ParseNormalizer", fmt.Errorf("%q: %w", s, ErrUnknownNormalizer))
	}
}

// Option mutates Options during construction.
type Option func(*Options)

// Options holds decomposer configuration. Fields are unexported; use WithX.
type Options struct {
	iterations  int        // AutoIterations or >= 0
	normalizer  Normalizer // power-iteration normalizer
	oversamples int        // extra sketch columns (>= 0)
	seed        int64      // RNG seed, meaningful when seeded
	seeded      bool       // false ⇒ Halko draws from a time-seeded source
	tol         float64    // Lanczos relative residual tolerance
	maxIter     int        // Lanczos step cap (0 ⇒ min(r, c))
}

// WithIterations sets the number of power iterations (or AutoIterations).
// Panics if n < 0 and n != AutoIterations.
func WithIterations(n int) Option {
	if n < 0 && n != AutoIterations {
		panic(fmt.Sprintf("linalg: WithIterations(%d): must be >= 0 or AutoIterations", n))
	}
	return func(o *Options) { o.iterations = n }
}

// WithNormalizer sets the power-iteration normalizer. Panics on unknown values.
func WithNormalizer(n Normalizer) Option {
	if !n.valid() {
		panic(fmt.Sprintf("linalg: WithNormalizer(%d): unknown normalizer", int(n)))
	}
	return func(o *Options) { o.normalizer = n }
}

// WithOversamples sets the number of extra sketch columns. Panics if p < 0.
func WithOversamples(p int) Option {
	if p < 0 {
		panic(fmt.Sprintf("linalg: WithOversamples(%d): must be >= 0", p))
	}
	return func(o *Options) { o.oversamples = p }
}

// WithSeed fixes the random source; equal seeds give bit-identical results.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithTolerance sets the Lanczos relative residual tolerance. Panics if tol is
// negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("linalg: WithTolerance(%v): must be finite and >= 0", tol))
	}
	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the Lanczos bidiagonalization steps (0 ⇒ min(r, c)).
// Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("linalg: WithMaxIterations(%d): must be >= 0", n))
	}
	return func(o *Options) { o.maxIter = n }
}

// defaultOptions returns the documented zero-configuration state.
func defaultOptions() Options {
	return Options{
		iterations:  AutoIterations,
		normalizer:  NormalizerAuto,
		oversamples: DefaultOversamples,
		tol:         DefaultTolerance,
		maxIter:     DefaultMaxIterations,
	}
}

// gatherOptions applies user options over the defaults in order (last wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
