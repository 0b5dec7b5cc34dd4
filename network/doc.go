// Package network provides the symmetric qualitative constraint network:
// a labelling of ordered variable pairs with calculus.Label values, kept
// converse-consistent on every mutation.
//
// Overview:
//
//   - A Network is a flat symmetric map from ordered pairs of variables
//     (opaque string identifiers) to labels, plus an insertion-ordered
//     variable list so that every iteration the closure and refinement
//     algorithms perform is deterministic.
//   - Insert is the only mutator: writing (i, j, l) also writes
//     (j, i, Converse(l)), so the symmetry invariant
//     Lookup(j, i) == Converse(Lookup(i, j)) holds after any sequence of
//     mutations.
//   - Lookup of an unstored pair returns the universe (no information).
//     Inserting the empty label is legal; it records an inconsistency as
//     data, not as an error.
//   - Clone produces an independent deep copy; refinement search isolates
//     its branches this way.
//
// The package also hosts the CSP instance parser (ParseInstances) for the
// "."-separated instance file format, including the optional consistency
// oracle tag on the instance info line, and a Graphviz DOT rendering for
// human inspection.
//
// Concurrency: a Network is not safe for concurrent mutation; each
// closure or refinement call owns its Network exclusively. The embedded
// *calculus.Calculus is immutable and freely shared.
//
// Complexity: Lookup and Insert are O(1) map operations; Clone and Nodes
// are linear in the stored state; Edges is O(|nodes|²).
package network
