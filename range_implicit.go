package abrade

import "math"

// ImplicitRange is a `{xyz}` range: one character-class position per
// template character, each drawn from a domain selected by that
// character (see domainFor). It is a little-endian odometer in its
// own right — position len-1 is least significant.
type ImplicitRange struct {
	domains       []string
	digits        []int
	leadingZeros  bool
}

// NewImplicitRange builds an implicit range from a domain-selector
// string (e.g. "hh" for two lowercase hex positions).
func NewImplicitRange(pattern string, leadingZeros bool) (*ImplicitRange, error) {
	if len(pattern) == 0 {
		return nil, ParseError("implicit range cannot be empty")
	}
	domains := make([]string, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		domain, ok := domainFor(pattern[i])
		if !ok {
			return nil, ParseError("unknown implicit range element: " + string(pattern[i]))
		}
		domains = append(domains, domain)
	}
	return &ImplicitRange{
		domains:      domains,
		digits:       make([]int, len(domains)),
		leadingZeros: leadingZeros,
	}, nil
}

func (r *ImplicitRange) Reset() {
	for i := range r.digits {
		r.digits[i] = 0
	}
}

func (r *ImplicitRange) Size() (uint64, error) {
	size := uint64(1)
	for _, domain := range r.domains {
		n := uint64(len(domain))
		if n == 0 {
			continue
		}
		next := size * n
		if next/n != size {
			return 0, newOverflowError("range size too large for uint64, use LogSize")
		}
		size = next
	}
	return size, nil
}

func (r *ImplicitRange) LogSize() float64 {
	var total float64
	for _, domain := range r.domains {
		total += math.Log(float64(len(domain)))
	}
	return total
}

// IncrementReturnCarry increments the least significant position,
// carrying left through the domain positions.
func (r *ImplicitRange) IncrementReturnCarry() bool {
	pivot := len(r.digits) - 1
	for r.incrementPivotCarry(pivot) {
		if pivot == 0 {
			return true
		}
		pivot--
	}
	return false
}

func (r *ImplicitRange) incrementPivotCarry(pivot int) bool {
	r.digits[pivot]++
	if r.digits[pivot] < len(r.domains[pivot]) {
		return false
	}
	r.digits[pivot] = 0
	return true
}

// Current emits the concatenation of each position's current
// character, suppressing leading zero positions (when leadingZeros is
// false) down to — but never including — the least significant
// position.
func (r *ImplicitRange) Current() string {
	result := make([]byte, 0, len(r.digits))
	isLeadingZero := true
	last := len(r.digits) - 1
	for i, digit := range r.digits {
		isLeadingZero = isLeadingZero && !r.leadingZeros && digit == 0 && i != last
		if isLeadingZero {
			continue
		}
		result = append(result, r.domains[i][digit])
	}
	return string(result)
}
