package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/qcnet/calculus"
)

// ErrMalformedCSP indicates that a CSP instance file violates the format:
// an edge line with fewer than two variables and a relation list, or a
// missing or malformed bracketed relation list. It is also returned for a
// nil calculus. The first non-blank line of every instance is taken as its
// info line whatever its content, so a missing info line is not detected.
var ErrMalformedCSP = errors.New("network: malformed csp instance")

// Oracle is the optional ground-truth consistency verdict carried by an
// instance's info line. It is consumed by test harnesses and the CLI to
// check engine verdicts; reasoning itself never reads it.
type Oracle int

const (
	// OracleUnknown means the info line carries no consistency tag.
	OracleUnknown Oracle = iota
	// OracleConsistent means the info line ends in ": consistent".
	OracleConsistent
	// OracleInconsistent means the info line ends in ": not consistent".
	OracleInconsistent
)

// String returns the file-format spelling of the oracle tag.
func (o Oracle) String() string {
	switch o {
	case OracleConsistent:
		return "consistent"
	case OracleInconsistent:
		return "not consistent"
	default:
		return "unknown"
	}
}

// Matches reports whether a computed verdict agrees with the oracle.
// An unknown oracle matches any verdict.
func (o Oracle) Matches(consistent bool) bool {
	switch o {
	case OracleConsistent:
		return consistent
	case OracleInconsistent:
		return !consistent
	default:
		return true
	}
}

// Instance is one parsed CSP instance: its network, the free-form info
// line, and the oracle tag extracted from that line (if any).
type Instance struct {
	Net    *Network
	Info   string
	Oracle Oracle
}

// ParseInstances reads one or more CSP instances over the given calculus.
//
// Instances are separated by lines whose sole content is ".". Each
// instance starts with a free-form info line, optionally ending in
// ": consistent" or ": not consistent", followed by edge lines:
//
//	v1 v2 ( r1 r2 … rn )
//
// The bracketed list is the union of the named base relations; an empty
// list denotes the empty label. The symmetric converse edge is inserted
// automatically. A final instance without a trailing "." is accepted.
//
// Errors: format violations wrap ErrMalformedCSP; undeclared relation
// names propagate calculus.ErrUnknownRelation. Both carry the offending
// line number.
func ParseInstances(c *calculus.Calculus, r io.Reader) ([]*Instance, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil calculus", ErrMalformedCSP)
	}

	var (
		out     []*Instance
		current *Instance
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == ".":
			if current != nil {
				out = append(out, current)
				current = nil
			}
		case line == "":
			// Blank lines between instances are tolerated.
		case current == nil:
			current = newInstance(c, line)
		default:
			if err := parseEdge(current.Net, line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("network: read: %w", err)
	}
	if current != nil {
		out = append(out, current)
	}

	return out, nil
}

// newInstance starts an instance from its info line, splitting off the
// optional oracle tag after the last ":".
func newInstance(c *calculus.Calculus, info string) *Instance {
	inst := &Instance{Net: New(c), Info: info}
	if idx := strings.LastIndex(info, ":"); idx >= 0 {
		switch strings.TrimSpace(info[idx+1:]) {
		case "consistent":
			inst.Oracle = OracleConsistent
		case "not consistent":
			inst.Oracle = OracleInconsistent
		}
	}

	return inst
}

// parseEdge parses one "v1 v2 ( r1 … rn )" line into net.
func parseEdge(net *Network, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return fmt.Errorf("%w: edge line needs two variables and a relation list", ErrMalformedCSP)
	}
	from, to := fields[0], fields[1]

	rest := append([]string(nil), fields[2:]...)
	first, last := rest[0], rest[len(rest)-1]
	if !strings.HasPrefix(first, "(") || !strings.HasSuffix(last, ")") {
		return fmt.Errorf("%w: relation list must be parenthesized", ErrMalformedCSP)
	}
	rest[0] = strings.TrimPrefix(first, "(")
	rest[len(rest)-1] = strings.TrimSuffix(rest[len(rest)-1], ")")

	names := rest[:0]
	for _, f := range rest {
		if f != "" {
			names = append(names, f)
		}
	}

	l, err := net.Calculus().EncodeSet(names)
	if err != nil {
		return err
	}
	net.Insert(from, to, l)

	return nil
}
