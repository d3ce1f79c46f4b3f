package abrade

import (
	"math"
	"sync"
	"time"

	"github.com/projectdiscovery/gologger"
)

// Sample is one (concurrency, requests-per-second) pair added to the
// adaptive controller's window.
type Sample struct {
	Concurrency int
	RPS         float64
}

// Controller is the sole arbiter of how many concurrent tasks the
// scraper engine targets. Implementations must be safe for concurrent
// use — every in-flight task calls RegisterCompletion.
type Controller interface {
	// RegisterCompletion records one finished request, observed at
	// currentConcurrency in-flight tasks.
	RegisterCompletion(currentConcurrency int)
	// RecommendedConcurrency returns the controller's current target.
	RecommendedConcurrency() int
}

// FixedController holds a constant recommendation, periodically
// logging observed throughput every sampleInterval completions.
type FixedController struct {
	concurrency    int
	sampleInterval int

	mu        sync.Mutex
	completed int
	start     time.Time
}

// NewFixedController returns a controller recommending a constant
// concurrency, sampling throughput every sampleInterval completions.
func NewFixedController(concurrency, sampleInterval int) *FixedController {
	return &FixedController{
		concurrency:    concurrency,
		sampleInterval: sampleInterval,
		start:          time.Now(),
	}
}

func (c *FixedController) RegisterCompletion(currentConcurrency int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completed++
	if c.completed < c.sampleInterval {
		return
	}
	now := time.Now()
	elapsed := now.Sub(c.start).Seconds()
	rps := float64(c.completed) / elapsed
	gologger.Verbose().Msgf("Request velocity: %.2f rps. Recommended coros (fixed): %d; Current coros: %d", rps, c.concurrency, currentConcurrency)
	c.start = now
	c.completed = 0
}

func (c *FixedController) RecommendedConcurrency() int {
	return c.concurrency
}

// AdaptiveController recommends a concurrency by regressing observed
// throughput against observed concurrency over a bounded sliding
// window, nudging the recommendation up or down by one after each
// sample.
type AdaptiveController struct {
	sampleInterval  int
	min, max        int
	initial         int

	mu            sync.Mutex
	completed     int
	start         time.Time
	recommended   int
	concurrencies *ring
	rpsValues     *ring
}

// NewAdaptiveController returns an adaptive controller starting at
// `initial`, sampling every sampleInterval completions over a window
// of the last sampleSize samples, clamped to [min, max].
func NewAdaptiveController(initial, sampleSize, sampleInterval, min, max int) *AdaptiveController {
	return &AdaptiveController{
		sampleInterval: sampleInterval,
		min:            min,
		max:            max,
		initial:        initial,
		start:          time.Now(),
		recommended:    initial,
		concurrencies:  newRing(sampleSize),
		rpsValues:      newRing(sampleSize),
	}
}

func (c *AdaptiveController) RegisterCompletion(currentConcurrency int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completed++
	if c.completed < c.sampleInterval {
		return
	}
	now := time.Now()
	elapsed := now.Sub(c.start).Seconds()
	rps := float64(c.completed) / elapsed
	c.rpsValues.push(rps)
	c.concurrencies.push(float64(currentConcurrency))
	gologger.Verbose().Msgf("Request velocity: %.2f rps. Concurrent requests: %d", rps, currentConcurrency)
	c.start = now
	c.completed = 0
	defer func() {
		if c.recommended > c.max {
			c.recommended = c.max
		}
		if c.recommended < c.min {
			c.recommended = c.min
		}
	}()

	concurrencies := c.concurrencies.values()
	rpsSamples := c.rpsValues.values()
	if len(rpsSamples) < 2 {
		c.recommended++
		return
	}

	meanConcurrency := mean(concurrencies)
	meanRPS := mean(rpsSamples)

	var ssConcurrency, ssCovariance float64
	for i := range concurrencies {
		dConcurrency := concurrencies[i] - meanConcurrency
		ssConcurrency += dConcurrency * dConcurrency
		ssCovariance += dConcurrency * (rpsSamples[i] - meanRPS)
	}

	if ssConcurrency < 1e-4 || math.Abs(ssCovariance) < 1e-4 {
		c.recommended++
		return
	}

	// beta is Sxx/Sxy, the reciprocal of the usual OLS slope Sxy/Sxx.
	// Its sign still matches Sxy's sign so the up/down direction stays
	// correct; the magnitude is inverted. Preserved verbatim from the
	// original regression — not corrected.
	beta := ssConcurrency / ssCovariance
	switch {
	case beta > 0 && c.recommended < c.max:
		c.recommended++
	case beta < 0 && c.recommended > c.min:
		c.recommended--
	}
}

func (c *AdaptiveController) RecommendedConcurrency() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recommended
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
