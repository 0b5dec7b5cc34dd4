package closure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qcnet/network"
)

// Engine selects one of the three closure algorithms. The set is closed;
// dispatch is a tagged switch, not runtime polymorphism.
type Engine int

const (
	// Naive is the PC-1 style fixed-point engine: full passes over every
	// ordered triple until no label changes.
	Naive Engine = iota

	// Queue is the PC-2 style engine driven by a FIFO of ordered pairs.
	Queue

	// PriorityQueue is the Queue engine with a min-heap keyed by label
	// popcount at enqueue time, so tighter edges are processed first.
	PriorityQueue
)

// String returns the CLI spelling of the engine.
func (e Engine) String() string {
	switch e {
	case Naive:
		return "naive"
	case Queue:
		return "queue"
	case PriorityQueue:
		return "pq"
	default:
		return fmt.Sprintf("engine(%d)", int(e))
	}
}

// Sentinel errors for closure dispatch.
var (
	// ErrNilNetwork is returned when a nil *network.Network is passed to Close.
	ErrNilNetwork = errors.New("closure: network is nil")

	// ErrUnknownEngine is returned for an Engine value outside the declared set.
	ErrUnknownEngine = errors.New("closure: unknown engine")
)

// ParseEngine maps a CLI spelling ("naive", "queue", "pq") to an Engine.
func ParseEngine(s string) (Engine, error) {
	switch s {
	case "naive":
		return Naive, nil
	case "queue":
		return Queue, nil
	case "pq":
		return PriorityQueue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEngine, s)
	}
}

// Close runs the selected engine over net, tightening it in place.
//
// Returns (true, nil) when the fixed point was reached with no empty
// label, (false, nil) when an inconsistency was derived, and a non-nil
// error only for invalid inputs (nil network, unknown engine); in the
// error case the network is untouched.
//
// Complexity: bounded by |nodes|²·k tightening events for every engine;
// per-event work is O(|nodes|·k²) at worst.
func Close(net *network.Network, e Engine) (bool, error) {
	if net == nil {
		return false, ErrNilNetwork
	}

	switch e {
	case Naive:
		return closeNaive(net), nil
	case Queue:
		return closeQueue(net), nil
	case PriorityQueue:
		return closePriority(net), nil
	default:
		return false, fmt.Errorf("%w: %d", ErrUnknownEngine, int(e))
	}
}

// pair is an ordered pair of variables in a working set.
type pair struct {
	i, j string
}
