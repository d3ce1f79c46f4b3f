package abrade

// TelescopingRange wraps an implicit pattern template of length L and
// enumerates all L suffix-length variants of it (lengths 1, 2, ..., L),
// walking the shorter prefixes first. Visible size is the sum, not the
// product, of the sub-ranges' sizes.
type TelescopingRange struct {
	subs  []*ImplicitRange
	index int
}

// NewTelescopingRange builds the L sub-ranges of a telescoping range
// from an implicit pattern template (e.g. "hh" yields a length-1 and a
// length-2 sub-range, each over lowercase hex). Every sub-range keeps
// its leading zeros, so the length-k sub-range always emits exactly k
// characters and never repeats an output of a shorter one; leadingZeros
// has no effect on a telescoping range.
func NewTelescopingRange(template string, leadingZeros bool) (*TelescopingRange, error) {
	n := len(template)
	subs := make([]*ImplicitRange, 0, n)
	for i := 0; i < n; i++ {
		length := i + 1
		start := n - length
		sub, err := NewImplicitRange(template[start:], true)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return &TelescopingRange{subs: subs}, nil
}

func (r *TelescopingRange) Current() string {
	return r.subs[r.index].Current()
}

// IncrementReturnCarry delegates to the current sub-range; when it
// carries, advance to the next (longer) sub-range. Carry to the outer
// odometer fires only once every sub-range has been exhausted.
func (r *TelescopingRange) IncrementReturnCarry() bool {
	if r.subs[r.index].IncrementReturnCarry() {
		r.index++
		if r.index == len(r.subs) {
			return true
		}
	}
	return false
}

func (r *TelescopingRange) Reset() {
	for _, sub := range r.subs {
		sub.Reset()
	}
	r.index = 0
}

func (r *TelescopingRange) Size() (uint64, error) {
	var total uint64
	for _, sub := range r.subs {
		n, err := sub.Size()
		if err != nil {
			return 0, err
		}
		next := total + n
		if next < total {
			return 0, newOverflowError("telescoping range size too large for uint64, use LogSize")
		}
		total = next
	}
	return total, nil
}

// LogSize sums the per-sub-range logs, i.e. log(Π size_i) — not
// log(Σ size_i), even though Size() above is itself a sum. This
// mismatch is inherited verbatim from the original TelescopingRange;
// it is distinct from (and preserved alongside) the Generator-level
// log-size quirk documented in DESIGN.md Open Question #2.
func (r *TelescopingRange) LogSize() float64 {
	var total float64
	for _, sub := range r.subs {
		total += sub.LogSize()
	}
	return total
}
