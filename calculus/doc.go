// Package calculus implements the relation algebra of a qualitative
// calculus: a fixed, ordered set of base relations (such as the point
// calculus <, =, > or Allen's interval relations) together with the
// converse and composition tables that define how those relations combine.
//
// Overview:
//
//   - A Label is a set of base relations encoded as a bitmask (uint64),
//     so a calculus may declare at most 64 base relations.
//   - A Calculus assigns each declared base name a bit position in
//     declaration order and answers Compose, Converse and Complement for
//     arbitrary labels by consulting precomputed base-level tables.
//   - Parse reads the line-oriented calculus file format (relations,
//     converse pairs, composition triples) and builds a validated Calculus.
//
// Key properties:
//
//   - Converse is an involution: Converse(Converse(l)) == l for every l.
//   - Compose short-circuits on the empty label and on the universe:
//     Compose(l, 0) == Compose(0, l) == 0, and Compose(l, U) == U for l ≠ 0.
//   - Complement(l) partitions the universe: l | Complement(l) == Universe,
//     l & Complement(l) == 0.
//   - Bases enumerates the base relations of a label in ascending bit
//     order, which keeps every downstream search deterministic.
//
// Errors (sentinel):
//
//   - ErrMalformedCalculus — the declared tables violate the format:
//     duplicate or unknown names, converse not total or not an involution,
//     composition not total on base×base.
//   - ErrTooManyRelations  — more than 64 base relations declared.
//   - ErrUnknownRelation   — Encode/EncodeSet asked about an undeclared name.
//
// A Calculus is immutable after construction and safe to share between
// goroutines; all operations are pure.
//
// Complexity: Compose is O(k²) in the worst case for k base relations,
// Converse and Decode are O(k), Count is O(1); construction is O(k²).
package calculus
