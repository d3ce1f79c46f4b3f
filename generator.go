package abrade

import (
	"math"
	"strconv"
	"strings"
)

// Generator is a lazy, non-restartable enumerator over the Cartesian
// product (or, for telescoping ranges, sum) of a template's ranges. It
// implements a little-endian odometer: literals interleave with
// ranges, and incrementing the rightmost range carries left.
type Generator struct {
	literals []string
	ranges   []Range
	complete bool
}

// NewGenerator parses template and builds a Generator. leadingZeros
// controls whether plain implicit ranges suppress leading-zero high
// positions; telescoping turns every implicit range into a
// TelescopingRange instead of a plain ImplicitRange, and its
// sub-ranges always keep their leading zeros.
func NewGenerator(template string, leadingZeros, telescoping bool) (*Generator, error) {
	literals, tokens, err := parsePattern(template)
	if err != nil {
		return nil, err
	}

	g := &Generator{literals: literals}
	for _, tok := range tokens {
		switch tok.kind {
		case tokenExplicit:
			start, err := strconv.ParseUint(tok.first, 10, 64)
			if err != nil {
				return nil, ParseError("unable to parse pattern " + tok.first)
			}
			end, err := strconv.ParseUint(tok.second, 10, 64)
			if err != nil {
				return nil, ParseError("unable to parse pattern " + tok.second)
			}
			rng, err := NewExplicitRange(start, end)
			if err != nil {
				return nil, err
			}
			g.ranges = append(g.ranges, rng)
		case tokenImplicit:
			if telescoping {
				rng, err := NewTelescopingRange(tok.first, leadingZeros)
				if err != nil {
					return nil, err
				}
				g.ranges = append(g.ranges, rng)
			} else {
				rng, err := NewImplicitRange(tok.first, leadingZeros)
				if err != nil {
					return nil, err
				}
				g.ranges = append(g.ranges, rng)
			}
		case tokenContinuation:
			if len(g.ranges) == 0 {
				return nil, ParseError("cannot start with a continuation pattern {}")
			}
			g.ranges = append(g.ranges, NewContinuationRange(g.ranges[len(g.ranges)-1]))
		}
	}
	return g, nil
}

// Next yields the next candidate URI, or ("", false) once the
// sequence is exhausted; every call thereafter also returns
// ("", false).
func (g *Generator) Next() (string, bool) {
	if g.complete {
		return "", false
	}
	var b strings.Builder
	for i, rng := range g.ranges {
		b.WriteString(g.literals[i])
		b.WriteString(rng.Current())
	}
	b.WriteString(g.literals[len(g.ranges)])
	result := b.String()
	g.incrementRanges()
	return result, true
}

func (g *Generator) incrementRanges() {
	if len(g.ranges) == 0 {
		g.complete = true
		return
	}
	pivot := len(g.ranges) - 1
	for g.ranges[pivot].IncrementReturnCarry() {
		g.ranges[pivot].Reset()
		if pivot == 0 {
			g.complete = true
			return
		}
		pivot--
	}
}

// Size returns the exact number of distinct outputs (the product of
// each range's size), or an OverflowError if that product does not
// fit in a uint64 — callers should fall back to LogSize in that case.
func (g *Generator) Size() (uint64, error) {
	size := uint64(1)
	for _, rng := range g.ranges {
		n, err := rng.Size()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			continue
		}
		next := size * n
		if next/n != size {
			return 0, newOverflowError("generator size too large for uint64, use LogSize")
		}
		size = next
	}
	return size, nil
}

// LogSize returns the natural log of the total output count. This
// preserves the original's get_log_range_size algebra: it sums
// exp(range.LogSize()) across ranges and takes one final log, which
// is log(Σ size_i) rather than the evidently-intended log(Π size_i)
// whenever more than one range is present. See DESIGN.md Open
// Question #2 — preserved rather than corrected.
func (g *Generator) LogSize() float64 {
	var sumOfExp float64
	for _, rng := range g.ranges {
		sumOfExp += math.Exp(rng.LogSize())
	}
	return math.Log(sumOfExp)
}

// Complete reports whether Next has been exhausted.
func (g *Generator) Complete() bool { return g.complete }
