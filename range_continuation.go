package abrade

// ContinuationRange is a zero-degree `{}` range: its current value
// always mirrors another range's current value. It never carries on
// its own initiative — it reports carry immediately on every
// increment, acting as a pass-through in the odometer.
type ContinuationRange struct {
	target Range
}

// NewContinuationRange builds a continuation referencing target (the
// immediately preceding range in the generator's sequence).
func NewContinuationRange(target Range) *ContinuationRange {
	return &ContinuationRange{target: target}
}

func (r *ContinuationRange) Current() string { return r.target.Current() }

func (r *ContinuationRange) IncrementReturnCarry() bool { return true }

func (r *ContinuationRange) Reset() {}

func (r *ContinuationRange) Size() (uint64, error) { return 1, nil }

func (r *ContinuationRange) LogSize() float64 { return 0 }
