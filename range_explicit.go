package abrade

import (
	"math"
	"strconv"
)

// ExplicitRange is an `{a:b}` range: an inclusive integer interval,
// incrementing from start through end.
type ExplicitRange struct {
	start, end uint64
	current    uint64
}

// NewExplicitRange builds an explicit range over [start, end].
// end must be >= start.
func NewExplicitRange(start, end uint64) (*ExplicitRange, error) {
	if end < start {
		return nil, ParseError("end of pattern cannot be less than start")
	}
	return &ExplicitRange{start: start, end: end, current: start}, nil
}

func (r *ExplicitRange) Current() string {
	return strconv.FormatUint(r.current, 10)
}

// IncrementReturnCarry mirrors the original's post-increment compare:
// it reports carry (and leaves current one past end) exactly when the
// value about to be superseded was already end.
func (r *ExplicitRange) IncrementReturnCarry() bool {
	wasEnd := r.current == r.end
	r.current++
	return wasEnd
}

func (r *ExplicitRange) Reset() { r.current = r.start }

func (r *ExplicitRange) Size() (uint64, error) {
	return r.end - r.start + 1, nil
}

func (r *ExplicitRange) LogSize() float64 {
	size, _ := r.Size()
	return math.Log(float64(size))
}
