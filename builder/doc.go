// Package builder generates random qualitative CSP instances for
// benchmarking and property testing, parameterized the classic way:
//
//	A(n, d, l) — n variables, average degree d, average label size l.
//
// For every ordered pair (i, j) of distinct variables the edge is
// included with probability d/(n-1); each base relation of the calculus
// is present in the edge's label with probability l/k; a draw that comes
// out empty is replaced by a single uniformly random base relation, so
// generated labels are never empty.
//
// Determinism policy: the stochastic constructors require an explicit RNG
// via WithSeed or WithRand and fail with ErrNeedRandSource otherwise.
// With the same seed, calculus, and parameters the generated instances
// are identical, which is what lets randomized tests assert exact
// behavior.
//
// Variable identifiers default to decimal indices ("0", "1", …) and can
// be customized with WithIDScheme.
//
// Write serializes instances in the CSP file format consumed by
// network.ParseInstances, so generated instances round-trip through the
// parser.
//
// Errors (sentinel):
//
//   - ErrNilCalculus      — no calculus provided.
//   - ErrTooFewVertices   — n < 2 (degree d/(n-1) needs at least two).
//   - ErrInvalidDegree    — d < 0.
//   - ErrInvalidLabelSize — l < 0.
//   - ErrBadCount         — non-positive instance count.
//   - ErrNeedRandSource   — stochastic constructor called without an RNG.
package builder
