package closure_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qcnet/builder"
	"github.com/katalvlaran/qcnet/calculus"
	"github.com/katalvlaran/qcnet/closure"
	"github.com/katalvlaran/qcnet/network"
)

// allEngines is every closure engine; scenario tests run under each.
var allEngines = []closure.Engine{closure.Naive, closure.Queue, closure.PriorityQueue}

// newPointCalculus builds the linear point calculus (<, =, >).
func newPointCalculus(t testing.TB) *calculus.Calculus {
	t.Helper()
	c, err := calculus.New(
		[]string{"<", "=", ">"},
		map[string]string{"<": ">", "=": "=", ">": "<"},
		map[string]map[string][]string{
			"<": {"<": {"<"}, "=": {"<"}, ">": {"<", "=", ">"}},
			"=": {"<": {"<"}, "=": {"="}, ">": {">"}},
			">": {"<": {"<", "=", ">"}, "=": {">"}, ">": {">"}},
		},
	)
	require.NoError(t, err)

	return c
}

// newIntervalCalculus builds a three-relation interval fragment:
// b (before), bi (after), eq (equals). Enough to exercise composition
// chains and converse asymmetry beyond the point calculus.
func newIntervalCalculus(t *testing.T) *calculus.Calculus {
	t.Helper()
	c, err := calculus.New(
		[]string{"b", "bi", "eq"},
		map[string]string{"b": "bi", "bi": "b", "eq": "eq"},
		map[string]map[string][]string{
			"b":  {"b": {"b"}, "bi": {"b", "bi", "eq"}, "eq": {"b"}},
			"bi": {"b": {"b", "bi", "eq"}, "bi": {"bi"}, "eq": {"bi"}},
			"eq": {"b": {"b"}, "bi": {"bi"}, "eq": {"eq"}},
		},
	)
	require.NoError(t, err)

	return c
}

func encode(t *testing.T, c *calculus.Calculus, names ...string) calculus.Label {
	t.Helper()
	l, err := c.EncodeSet(names)
	require.NoError(t, err)

	return l
}

// ClosureSuite runs the specification scenarios under every engine.
type ClosureSuite struct {
	suite.Suite
}

// TestInconsistentTriangle: a<b, b<c, a>c violates transitivity, so every
// engine must derive an empty label and answer false.
func (s *ClosureSuite) TestInconsistentTriangle() {
	c := newPointCalculus(s.T())
	for _, engine := range allEngines {
		net := network.New(c)
		net.Insert("a", "b", encode(s.T(), c, "<"))
		net.Insert("b", "c", encode(s.T(), c, "<"))
		net.Insert("a", "c", encode(s.T(), c, ">"))

		ok, err := closure.Close(net, engine)
		require.NoError(s.T(), err, engine)
		require.False(s.T(), ok, "engine %s must detect the inconsistency", engine)
	}
}

// TestTransitiveChain: a<b, b<c lets closure derive a<c.
func (s *ClosureSuite) TestTransitiveChain() {
	c := newPointCalculus(s.T())
	lt := encode(s.T(), c, "<")
	for _, engine := range allEngines {
		net := network.New(c)
		net.Insert("a", "b", lt)
		net.Insert("b", "c", lt)

		ok, err := closure.Close(net, engine)
		require.NoError(s.T(), err, engine)
		require.True(s.T(), ok, engine)
		require.Equal(s.T(), lt, net.Lookup("a", "c"), "engine %s", engine)
		require.Equal(s.T(), encode(s.T(), c, ">"), net.Lookup("c", "a"), "engine %s", engine)
	}
}

// TestWeakChain: a{<,=}b, b{<,=}c tightens (a,c) to {<,=} and no further.
func (s *ClosureSuite) TestWeakChain() {
	c := newPointCalculus(s.T())
	leq := encode(s.T(), c, "<", "=")
	for _, engine := range allEngines {
		net := network.New(c)
		net.Insert("a", "b", leq)
		net.Insert("b", "c", leq)

		ok, err := closure.Close(net, engine)
		require.NoError(s.T(), err, engine)
		require.True(s.T(), ok, engine)
		require.Equal(s.T(), leq, net.Lookup("a", "c"), "engine %s", engine)
	}
}

// TestNoInformation: a network whose stored labels are all the universe
// stays untouched and closes successfully.
func (s *ClosureSuite) TestNoInformation() {
	c := newPointCalculus(s.T())
	u := c.Universe()
	for _, engine := range allEngines {
		net := network.New(c)
		net.Insert("a", "b", u)
		net.Insert("b", "c", u)
		net.Insert("c", "d", u)

		ok, err := closure.Close(net, engine)
		require.NoError(s.T(), err, engine)
		require.True(s.T(), ok, engine)
		for _, i := range net.Nodes() {
			for _, j := range net.Nodes() {
				if i != j {
					require.Equal(s.T(), u, net.Lookup(i, j), "engine %s: (%s,%s)", engine, i, j)
				}
			}
		}
	}
}

// TestIntervalInconsistentChain: a before b before c, yet a after c.
func (s *ClosureSuite) TestIntervalInconsistentChain() {
	c := newIntervalCalculus(s.T())
	for _, engine := range allEngines {
		net := network.New(c)
		net.Insert("a", "b", encode(s.T(), c, "b"))
		net.Insert("b", "c", encode(s.T(), c, "b"))
		net.Insert("a", "c", encode(s.T(), c, "bi"))

		ok, err := closure.Close(net, engine)
		require.NoError(s.T(), err, engine)
		require.False(s.T(), ok, "engine %s", engine)
	}
}

// TestIntervalChain: a before b before c derives a before c.
func (s *ClosureSuite) TestIntervalChain() {
	c := newIntervalCalculus(s.T())
	before := encode(s.T(), c, "b")
	for _, engine := range allEngines {
		net := network.New(c)
		net.Insert("a", "b", before)
		net.Insert("b", "c", before)

		ok, err := closure.Close(net, engine)
		require.NoError(s.T(), err, engine)
		require.True(s.T(), ok, engine)
		require.Equal(s.T(), before, net.Lookup("a", "c"), "engine %s", engine)
	}
}

func TestClosureSuite(t *testing.T) {
	suite.Run(t, new(ClosureSuite))
}

// TestClose_Errors covers dispatch validation.
func TestClose_Errors(t *testing.T) {
	ok, err := closure.Close(nil, closure.Naive)
	require.ErrorIs(t, err, closure.ErrNilNetwork)
	require.False(t, ok)

	c := newPointCalculus(t)
	_, err = closure.Close(network.New(c), closure.Engine(42))
	require.ErrorIs(t, err, closure.ErrUnknownEngine)
}

func TestParseEngine(t *testing.T) {
	for _, engine := range allEngines {
		got, err := closure.ParseEngine(engine.String())
		require.NoError(t, err)
		require.Equal(t, engine, got)
	}
	_, err := closure.ParseEngine("dijkstra")
	require.ErrorIs(t, err, closure.ErrUnknownEngine)
}

// TestMonotonicity: closure only ever tightens: every resulting label is
// a subset of the original.
func TestMonotonicity(t *testing.T) {
	c := newPointCalculus(t)
	for seed := int64(1); seed <= 20; seed++ {
		net, err := builder.Random(c, 6, 3.0, 1.8, builder.WithSeed(seed))
		require.NoError(t, err)

		before := snapshot(net)
		_, err = closure.Close(net, closure.PriorityQueue)
		require.NoError(t, err)

		for pair, old := range before {
			now := net.Lookup(pair[0], pair[1])
			require.Equal(t, now, now&old, "seed %d: (%s,%s) gained bits", seed, pair[0], pair[1])
		}
	}
}

// TestSoundness: when closure succeeds, every triangle satisfies
// lookup(i,k) ⊆ compose(lookup(i,j), lookup(j,k)).
func TestSoundness(t *testing.T) {
	c := newPointCalculus(t)
	for seed := int64(1); seed <= 20; seed++ {
		net, err := builder.Random(c, 6, 3.0, 1.8, builder.WithSeed(seed))
		require.NoError(t, err)

		ok, err := closure.Close(net, closure.Queue)
		require.NoError(t, err)
		if !ok {
			continue
		}
		nodes := net.Nodes()
		for _, i := range nodes {
			for _, j := range nodes {
				for _, k := range nodes {
					if i == j || j == k || i == k {
						continue
					}
					ik := net.Lookup(i, k)
					comp := c.Compose(net.Lookup(i, j), net.Lookup(j, k))
					require.Equal(t, ik, ik&comp, "seed %d: triangle (%s,%s,%s) not closed", seed, i, j, k)
				}
			}
		}
	}
}

// TestEngineEquivalence: all three engines agree on the verdict, and on
// success they reach the same greatest fixpoint.
func TestEngineEquivalence(t *testing.T) {
	c := newPointCalculus(t)
	for seed := int64(1); seed <= 40; seed++ {
		base, err := builder.Random(c, 6, 3.0, 1.8, builder.WithSeed(seed))
		require.NoError(t, err)

		nets := make([]*network.Network, len(allEngines))
		verdicts := make([]bool, len(allEngines))
		for idx, engine := range allEngines {
			nets[idx] = base.Clone()
			verdicts[idx], err = closure.Close(nets[idx], engine)
			require.NoError(t, err)
		}
		for idx := 1; idx < len(allEngines); idx++ {
			require.Equal(t, verdicts[0], verdicts[idx],
				"seed %d: %s and %s disagree", seed, allEngines[0], allEngines[idx])
		}
		if !verdicts[0] {
			continue
		}
		// Same fixpoint on success: order of tightenings must not matter.
		nodes := base.Nodes()
		for idx := 1; idx < len(allEngines); idx++ {
			for _, i := range nodes {
				for _, j := range nodes {
					if i != j {
						require.Equal(t, nets[0].Lookup(i, j), nets[idx].Lookup(i, j),
							"seed %d: engines %s/%s differ on (%s,%s)", seed, allEngines[0], allEngines[idx], i, j)
					}
				}
			}
		}
	}
}

// snapshot records the label of every ordered node pair.
func snapshot(net *network.Network) map[[2]string]calculus.Label {
	out := make(map[[2]string]calculus.Label)
	nodes := net.Nodes()
	for _, i := range nodes {
		for _, j := range nodes {
			if i != j {
				out[[2]string{i, j}] = net.Lookup(i, j)
			}
		}
	}

	return out
}
