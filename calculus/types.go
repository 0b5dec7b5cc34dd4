// Package calculus defines the Label bitmask type, the sentinel errors of
// the package, and the width limit imposed by the uint64 representation.
package calculus

import "errors"

// Label is a set of base relations encoded as a bitmask.
//
// Bit i corresponds to the i-th base relation in declaration order of the
// owning Calculus. The zero value EmptyLabel denotes the empty set (no
// relation is possible, i.e. an inconsistency); the all-ones value up to
// the calculus width denotes the universe (no information).
//
// A Label is only meaningful relative to the Calculus that produced it:
// every bit at position ≥ Calculus.Size must be clear.
type Label uint64

// EmptyLabel is the label containing no base relations.
const EmptyLabel Label = 0

// MaxBaseRelations is the largest number of base relations a Calculus may
// declare, fixed by the uint64 Label representation. Allen's interval
// algebra (13 base relations) and the point calculus (3) fit comfortably.
const MaxBaseRelations = 64

// Sentinel errors for calculus construction and lookup.
var (
	// ErrMalformedCalculus indicates that the declared tables violate the
	// calculus format: duplicate or unknown base names, a converse table
	// that is not total or not an involution, or a composition table that
	// is not total on base×base.
	ErrMalformedCalculus = errors.New("calculus: malformed calculus")

	// ErrTooManyRelations indicates that more than MaxBaseRelations base
	// relations were declared.
	ErrTooManyRelations = errors.New("calculus: too many base relations")

	// ErrUnknownRelation indicates that Encode or EncodeSet was asked
	// about a base name the calculus does not declare.
	ErrUnknownRelation = errors.New("calculus: unknown base relation")
)
