// Package refine decides full consistency of a qualitative constraint
// network by refinement search: recursive backtracking over base-relation
// splits of composite labels, with algebraic closure pruning every node
// of the search tree.
//
// Algorithm:
//
//  1. Run algebraic closure on the network (tightening it in place).
//     If closure derives an empty label, the branch is inconsistent.
//  2. If every stored label is a base label, the network is consistent.
//  3. Otherwise pick the first stored edge whose label is not a base
//     label (scanning variables in first-seen order; an empty label has
//     no base relations and so ends the branch) and, for each of its base
//     relations in ascending bit order, clone the network, fix the edge
//     to that base relation, and recurse.
//
// Refine returns true iff some base refinement of the input network is
// algebraically closed; exhausting every branch yields false, never a
// panic or an error.
//
// Determinism: edge selection and branch order are fixed as above, so two
// runs over equal inputs explore the same tree.
//
// The closure engine is selectable via WithEngine; the default is the
// priority-queue engine. Recursion depth is bounded by the total number
// of label bits (each level fixes at least one bit), so worst-case depth
// is |nodes|²·k.
package refine
