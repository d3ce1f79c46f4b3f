package abrade

import (
	errorutil "github.com/projectdiscovery/utils/errors"
)

// ParseError wraps a failure while tokenizing or building a pattern's
// ranges — unmatched braces, an unknown domain selector, a reversed or
// non-numeric explicit range, or a leading continuation.
func ParseError(msg string) error {
	return errorutil.NewWithTag("abrade/pattern", "%s", msg)
}

// ConfigError wraps a pre-run configuration failure (bad CLI flag,
// missing host, out-of-range numeric option).
func ConfigError(msg string) error {
	return errorutil.NewWithTag("abrade/config", "%s", msg)
}

// OverflowError is returned by Size() when the exact output count does
// not fit a uint64; callers should fall back to LogSize().
type OverflowError struct {
	msg string
}

func (e *OverflowError) Error() string { return e.msg }

func newOverflowError(msg string) error {
	return &OverflowError{msg: msg}
}

// IsOverflow reports whether err is an OverflowError.
func IsOverflow(err error) bool {
	_, ok := err.(*OverflowError)
	return ok
}
