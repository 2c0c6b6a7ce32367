// SPDX-License-Identifier: MIT
// Package: lvembed/builder
//
// errors.go - sentinel errors for adjacency constructors.
//
// Policy:
//   - Constructors return these sentinels wrapped with method context via %w.
//   - Callers branch with errors.Is; messages are never parsed.

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below the family minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when an edge probability lies outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic constructor has no RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for a nil constructor (programmer error surfaced as error).
var ErrConstructFailed = errors.New("builder: construction failed")
