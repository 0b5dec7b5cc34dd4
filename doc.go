// Package qcnet is a toolkit for qualitative constraint reasoning over
// binary relations: point calculi, Allen's interval algebra, or any
// calculus you can describe by converse and composition tables.
//
// 🚀 What is qcnet?
//
//	A small, deterministic library that brings together:
//
//	  • Relation algebra: labels as bitmasks with compose/converse/complement
//	  • Constraint networks: symmetric pair labelling with converse mirroring
//	  • Reasoning: three algebraic-closure engines + refinement search
//
// ✨ Why choose qcnet?
//
//   - Calculus-agnostic      — load any calculus description at runtime
//   - Deterministic          — fixed iteration orders, seedable generator
//   - Engine-interchangeable — naive, queue and priority-queue closure
//     agree on every verdict
//   - Pure Go library        — the reasoner itself never logs or panics
//
// Everything is organized under five subpackages and one command:
//
//	calculus/  — Label bitmasks, the Calculus algebra, calculus file parser
//	network/   — the symmetric constraint network + CSP instance parser
//	closure/   — algebraic closure (path consistency), three engines
//	refine/    — backtracking refinement search deciding full consistency
//	builder/   — random instance generation A(n, d, l) and serialization
//	cmd/qcnet  — CLI: closure, refine, generate, dot
//
// Quick ASCII example (point calculus, base relations < = >):
//
//	    a ──{<}── b
//	     \        │
//	     {>}     {<}
//	       \      │
//	        ──  c
//
//	is inconsistent: a<b<c forces a<c, contradicting a>c.
//
//	go get github.com/katalvlaran/qcnet
package qcnet
