package abrade

// DefaultPattern is used when the caller supplies no pattern ("/").
const DefaultPattern = "/"

// DefaultUserAgent matches the original tool's hard-coded UA.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 6.1; Win64; x64; rv:47.0) Gecko/20100101 Firefox/47.0"

// Tuning defaults for the concurrency controller.
const (
	DefaultInitialConcurrency = 1000
	DefaultMinConcurrency     = 1
	DefaultMaxConcurrency     = 25000
	DefaultSampleSize         = 50
	DefaultSampleInterval     = 1000
)
