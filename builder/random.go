package builder

import (
	"fmt"

	"github.com/katalvlaran/qcnet/calculus"
	"github.com/katalvlaran/qcnet/network"
)

// Random generates one random network A(n, d, l) over calculus c.
//
// For each ordered pair (i, j), i ≠ j, the edge is drawn with probability
// degree/(n-1). A drawn edge's label includes each of the k base
// relations independently with probability labelSize/k; an empty draw is
// replaced by one uniformly random base relation. Both orientations of a
// pair may be drawn; the later insert overwrites the earlier one with its
// converse mirror, exactly as in the instance file format.
//
// Requires an RNG (WithSeed or WithRand): ErrNeedRandSource otherwise.
//
// Complexity: O(n²·k).
func Random(c *calculus.Calculus, n int, degree, labelSize float64, opts ...Option) (*network.Network, error) {
	cfg := newConfig(opts...)
	if err := validate(c, n, degree, labelSize, cfg); err != nil {
		return nil, err
	}

	k := c.Size()
	net := network.New(c)
	edgeProb := degree / float64(n-1)
	baseProb := labelSize / float64(k)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || cfg.rng.Float64() >= edgeProb {
				continue
			}
			var l calculus.Label
			for b := 0; b < k; b++ {
				if cfg.rng.Float64() < baseProb {
					l |= calculus.Label(1) << uint(b)
				}
			}
			if l == calculus.EmptyLabel {
				l = calculus.Label(1) << uint(cfg.rng.Intn(k))
			}
			net.Insert(cfg.idFn(i), cfg.idFn(j), l)
		}
	}

	return net, nil
}

// RandomInstances generates count independent instances with Random,
// wrapping each in a network.Instance whose info line records the
// generation parameters ("n # d l", as the classic generator prints).
func RandomInstances(c *calculus.Calculus, count, n int, degree, labelSize float64, opts ...Option) ([]*network.Instance, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}

	out := make([]*network.Instance, 0, count)
	cfg := newConfig(opts...)
	for idx := 0; idx < count; idx++ {
		// Reuse one RNG stream across instances so a single seed fixes the
		// whole batch.
		net, err := Random(c, n, degree, labelSize, func(dst *config) { *dst = *cfg })
		if err != nil {
			return nil, err
		}
		out = append(out, &network.Instance{
			Net:  net,
			Info: fmt.Sprintf("%d # %g %g", n, degree, labelSize),
		})
	}

	return out, nil
}

// validate checks generator parameters in a fixed order: calculus, size,
// degree, label size, RNG presence.
func validate(c *calculus.Calculus, n int, degree, labelSize float64, cfg *config) error {
	if c == nil {
		return ErrNilCalculus
	}
	if n < 2 {
		return fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	if degree < 0 {
		return fmt.Errorf("%w: d=%g", ErrInvalidDegree, degree)
	}
	if labelSize < 0 {
		return fmt.Errorf("%w: l=%g", ErrInvalidLabelSize, labelSize)
	}
	if cfg.rng == nil {
		return ErrNeedRandSource
	}

	return nil
}
