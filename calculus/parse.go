package calculus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a calculus description and builds a validated Calculus.
//
// The format is line-oriented, three sections separated by blank lines,
// each introduced by a header line whose content is ignored:
//
//	<header>
//	b1 b2 … bk                 whitespace-separated base relation names
//
//	<header>
//	a b                        one line per base: converse(a) = b
//	…
//
//	<header>
//	a b ( c1 c2 … cm )         composition(a, b) = union of c1…cm
//	…
//
// The parentheses around a composition result may be glued to the first
// and last result token or stand alone; an empty list "( )" denotes the
// empty label. Every format violation wraps ErrMalformedCalculus; errors
// in an individual converse or composition entry name the offending line
// number, while missing sections and table violations found by New do not.
//
// Complexity: O(input) plus the O(k²) table validation of New.
func Parse(r io.Reader) (*Calculus, error) {
	sc := &sectionScanner{scanner: bufio.NewScanner(r)}

	// Section 1: base relation names.
	if !sc.next() {
		return nil, fmt.Errorf("%w: missing relations header", ErrMalformedCalculus)
	}
	if !sc.next() {
		return nil, fmt.Errorf("%w: missing base relation list", ErrMalformedCalculus)
	}
	names := strings.Fields(sc.line)
	sc.skipBlank()

	// Section 2: converse pairs, one per line until the next blank line.
	if !sc.next() {
		return nil, fmt.Errorf("%w: missing converse header", ErrMalformedCalculus)
	}
	converse := make(map[string]string, len(names))
	for sc.next() {
		if sc.blank() {
			break
		}
		fields := strings.Fields(sc.line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: converse entry needs exactly two names", ErrMalformedCalculus, sc.lineNo)
		}
		converse[fields[0]] = fields[1]
	}

	// Section 3: composition triples until blank line or EOF.
	if !sc.next() {
		return nil, fmt.Errorf("%w: missing composition header", ErrMalformedCalculus)
	}
	composition := make(map[string]map[string][]string, len(names))
	for sc.next() {
		if sc.blank() {
			break
		}
		fields := strings.Fields(sc.line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: line %d: composition entry needs two names and a result list", ErrMalformedCalculus, sc.lineNo)
		}
		left, right := fields[0], fields[1]
		results, err := stripBrackets(fields[2:])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCalculus, sc.lineNo, err)
		}
		row, ok := composition[left]
		if !ok {
			row = make(map[string][]string, len(names))
			composition[left] = row
		}
		row[right] = results
	}

	if err := sc.scanner.Err(); err != nil {
		return nil, fmt.Errorf("calculus: read: %w", err)
	}

	return New(names, converse, composition)
}

// sectionScanner wraps bufio.Scanner with line counting and blank-line
// awareness for the section-oriented calculus format.
type sectionScanner struct {
	scanner *bufio.Scanner
	line    string
	lineNo  int
}

func (s *sectionScanner) next() bool {
	if !s.scanner.Scan() {
		return false
	}
	s.line = strings.TrimSpace(s.scanner.Text())
	s.lineNo++

	return true
}

func (s *sectionScanner) blank() bool {
	return s.line == ""
}

// skipBlank consumes the blank separator line after the current section.
func (s *sectionScanner) skipBlank() {
	s.next()
}

// stripBrackets removes the "(" and ")" delimiters from a result list.
// Both glued ("(c1", "cm)") and stand-alone ("(", ")") forms are accepted;
// an empty list is legal and comes back with no names.
func stripBrackets(fields []string) ([]string, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("result list is empty")
	}
	first, last := fields[0], fields[len(fields)-1]
	if !strings.HasPrefix(first, "(") || !strings.HasSuffix(last, ")") {
		return nil, fmt.Errorf("result list must be parenthesized")
	}
	fields = append([]string(nil), fields...)
	fields[0] = strings.TrimPrefix(first, "(")
	fields[len(fields)-1] = strings.TrimSuffix(fields[len(fields)-1], ")")

	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}

	return out, nil
}
