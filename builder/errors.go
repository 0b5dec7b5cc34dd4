// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is and never match error strings.
//   - Constructors attach parameter context by wrapping with %w.

package builder

import "errors"

// ErrNilCalculus indicates that a nil *calculus.Calculus was provided.
var ErrNilCalculus = errors.New("builder: calculus is nil")

// ErrTooFewVertices indicates that the requested variable count is below
// the minimum of 2 required by the d/(n-1) edge probability.
var ErrTooFewVertices = errors.New("builder: too few variables")

// ErrInvalidDegree indicates a negative average degree.
var ErrInvalidDegree = errors.New("builder: average degree out of range")

// ErrInvalidLabelSize indicates a negative average label size.
var ErrInvalidLabelSize = errors.New("builder: average label size out of range")

// ErrBadCount indicates a non-positive instance count.
var ErrBadCount = errors.New("builder: instance count must be positive")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without an RNG; supply one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
