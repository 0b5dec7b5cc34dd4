package refine

import (
	"errors"

	"github.com/katalvlaran/qcnet/calculus"
	"github.com/katalvlaran/qcnet/closure"
	"github.com/katalvlaran/qcnet/network"
)

// ErrNilNetwork is returned when a nil *network.Network is passed to Refine.
var ErrNilNetwork = errors.New("refine: network is nil")

// Option configures refinement search. Use with Refine(net, opts...).
type Option func(*options)

type options struct {
	engine closure.Engine
}

// WithEngine selects the closure engine used at every node of the search
// tree. The default is closure.PriorityQueue.
func WithEngine(e closure.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// Refine decides whether net has a consistent base refinement.
//
// The top-level network is tightened in place by the initial closure
// call; branches operate on clones and never leak mutations upward.
// Returns (false, nil) when every branch is exhausted; a non-nil error
// only for invalid input (nil network, unknown engine).
//
// Complexity: worst case exponential in the number of composite label
// bits; closure pruning keeps typical instances far below that.
func Refine(net *network.Network, opts ...Option) (bool, error) {
	if net == nil {
		return false, ErrNilNetwork
	}
	o := options{engine: closure.PriorityQueue}
	for _, opt := range opts {
		opt(&o)
	}

	return search(net, o.engine)
}

// search is one node of the refinement tree: close, check for a full base
// labelling, otherwise branch on the first composite edge.
func search(net *network.Network, engine closure.Engine) (bool, error) {
	ok, err := closure.Close(net, engine)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if net.OnlyBase() {
		return true, nil
	}

	from, to, label := firstComposite(net)
	for _, base := range calculus.Bases(label) {
		child := net.Clone()
		child.Insert(from, to, base)
		ok, err = search(child, engine)
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}

// firstComposite returns the first stored edge whose label is not a base
// label, scanning variables in first-seen order: a label with more than
// one base relation, or the empty label (which yields no branches). The
// caller guarantees one exists (OnlyBase was false).
func firstComposite(net *network.Network) (string, string, calculus.Label) {
	for _, e := range net.Edges() {
		if !calculus.IsBase(e.Label) {
			return e.From, e.To, e.Label
		}
	}

	// Unreachable: OnlyBase() was false, so a composite edge is stored.
	panic("refine: no composite edge in a non-base network")
}
