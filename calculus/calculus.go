package calculus

import (
	"fmt"
	"math/bits"
)

// Calculus is the algebra structure of a qualitative calculus: the ordered
// base relation names plus bit-indexed converse and composition tables.
//
// A Calculus is immutable after New returns and may be shared freely
// between goroutines; every method is pure.
type Calculus struct {
	names    []string       // base names in declaration order; bit i ↔ names[i]
	index    map[string]int // name → bit position
	conv     []Label        // conv[i] = converse of base relation i (single bit)
	comp     [][]Label      // comp[i][j] = composition of base i with base j
	universe Label
}

// New builds a Calculus from parsed tables.
//
// names lists the base relations in declaration order; converse maps each
// base name to its converse; composition maps each (left, right) pair of
// base names to the list of base names whose union is their composition.
// An empty composition list is legal and denotes the empty label.
//
// Validation (all failures wrap ErrMalformedCalculus unless noted):
//  1. names must be non-empty, distinct, and at most MaxBaseRelations long
//     (ErrTooManyRelations otherwise).
//  2. converse must be total on the declared bases, mention only declared
//     bases, and be an involution.
//  3. composition must be total on base×base and mention only declared bases.
//
// Complexity: O(k²) for k base relations.
func New(names []string, converse map[string]string, composition map[string]map[string][]string) (*Calculus, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no base relations declared", ErrMalformedCalculus)
	}
	if len(names) > MaxBaseRelations {
		return nil, fmt.Errorf("%w: %d declared, at most %d supported", ErrTooManyRelations, len(names), MaxBaseRelations)
	}

	c := &Calculus{
		names:    append([]string(nil), names...),
		index:    make(map[string]int, len(names)),
		conv:     make([]Label, len(names)),
		comp:     make([][]Label, len(names)),
		universe: Label(1)<<uint(len(names)) - 1,
	}
	for i, name := range c.names {
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate base relation %q", ErrMalformedCalculus, name)
		}
		c.index[name] = i
	}

	// Converse table: total, closed over declared names, an involution.
	for name := range converse {
		if _, ok := c.index[name]; !ok {
			return nil, fmt.Errorf("%w: converse entry for undeclared %q", ErrMalformedCalculus, name)
		}
	}
	for _, name := range c.names {
		other, ok := converse[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing converse for %q", ErrMalformedCalculus, name)
		}
		j, ok := c.index[other]
		if !ok {
			return nil, fmt.Errorf("%w: converse of %q is undeclared %q", ErrMalformedCalculus, name, other)
		}
		c.conv[c.index[name]] = Label(1) << uint(j)
	}
	for i := range c.names {
		j := uint(bits.TrailingZeros64(uint64(c.conv[i])))
		if c.conv[j] != Label(1)<<uint(i) {
			return nil, fmt.Errorf("%w: converse is not an involution at %q", ErrMalformedCalculus, c.names[i])
		}
	}

	// Composition table: total on base×base, closed over declared names.
	for left := range composition {
		if _, ok := c.index[left]; !ok {
			return nil, fmt.Errorf("%w: composition row for undeclared %q", ErrMalformedCalculus, left)
		}
	}
	for i, left := range c.names {
		c.comp[i] = make([]Label, len(names))
		row, ok := composition[left]
		if !ok {
			return nil, fmt.Errorf("%w: no compositions for %q", ErrMalformedCalculus, left)
		}
		for right := range row {
			if _, ok := c.index[right]; !ok {
				return nil, fmt.Errorf("%w: composition %q ∘ %q with undeclared right operand", ErrMalformedCalculus, left, right)
			}
		}
		for j, right := range c.names {
			results, ok := row[right]
			if !ok {
				return nil, fmt.Errorf("%w: missing composition %q ∘ %q", ErrMalformedCalculus, left, right)
			}
			var l Label
			for _, name := range results {
				k, ok := c.index[name]
				if !ok {
					return nil, fmt.Errorf("%w: composition %q ∘ %q mentions undeclared %q", ErrMalformedCalculus, left, right, name)
				}
				l |= Label(1) << uint(k)
			}
			c.comp[i][j] = l
		}
	}

	return c, nil
}

// Size returns the number of base relations k.
func (c *Calculus) Size() int {
	return len(c.names)
}

// Universe returns the label containing every base relation.
func (c *Calculus) Universe() Label {
	return c.universe
}

// Names returns the base relation names in declaration order.
// The returned slice is a copy; callers may mutate it freely.
func (c *Calculus) Names() []string {
	return append([]string(nil), c.names...)
}

// Encode maps a base relation name to its single-bit label.
// Returns ErrUnknownRelation for names the calculus does not declare.
func (c *Calculus) Encode(name string) (Label, error) {
	i, ok := c.index[name]
	if !ok {
		return EmptyLabel, fmt.Errorf("%w: %q", ErrUnknownRelation, name)
	}

	return Label(1) << uint(i), nil
}

// EncodeSet maps a list of base relation names to the union of their
// single-bit labels. An empty list encodes EmptyLabel.
func (c *Calculus) EncodeSet(names []string) (Label, error) {
	var l Label
	for _, name := range names {
		b, err := c.Encode(name)
		if err != nil {
			return EmptyLabel, err
		}
		l |= b
	}

	return l, nil
}

// Decode returns the names of the base relations present in l, in
// declaration order. Decode is the inverse of EncodeSet up to ordering.
func (c *Calculus) Decode(l Label) []string {
	out := make([]string, 0, Count(l))
	for rest := uint64(l); rest != 0; rest &= rest - 1 {
		out = append(out, c.names[bits.TrailingZeros64(rest)])
	}

	return out
}

// Compose returns the composition of two labels: the union of the base
// compositions over every pair of bases drawn from a and b.
//
// Short-circuits: if either operand is empty the result is empty; if
// either operand is the universe (and the other non-empty) the result is
// the universe.
//
// Complexity: O(Count(a)·Count(b)), at most O(k²).
func (c *Calculus) Compose(a, b Label) Label {
	if a == EmptyLabel || b == EmptyLabel {
		return EmptyLabel
	}
	if a == c.universe || b == c.universe {
		return c.universe
	}

	var out Label
	for ra := uint64(a); ra != 0; ra &= ra - 1 {
		row := c.comp[bits.TrailingZeros64(ra)]
		for rb := uint64(b); rb != 0; rb &= rb - 1 {
			out |= row[bits.TrailingZeros64(rb)]
		}
	}

	return out
}

// Converse returns the union of the base converses of every base relation
// in l. Converse(EmptyLabel) is EmptyLabel, and Converse is an involution.
//
// Complexity: O(Count(l)).
func (c *Calculus) Converse(l Label) Label {
	var out Label
	for rest := uint64(l); rest != 0; rest &= rest - 1 {
		out |= c.conv[bits.TrailingZeros64(rest)]
	}

	return out
}

// Complement returns the base relations of the universe not present in l.
func (c *Calculus) Complement(l Label) Label {
	return c.universe &^ l
}
