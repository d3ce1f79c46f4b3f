// Package connection implements the four ways a scraper task can reach
// a target host: plaintext TCP, TLS, SOCKS5-proxied TCP, and
// SOCKS5-proxied TLS.
package connection

import (
	"context"
	"errors"
	"io"
	"net"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Strategy establishes one connection to host, ready for an HTTP/1.1
// request to be written to it. Implementations must be safe to call
// concurrently from independent tasks.
type Strategy interface {
	Connect(ctx context.Context, host string) (*Stream, error)
}

// Stream wraps an established net.Conn with the teardown mode that
// governs how Close reports errors. When sensitive is true, a non-EOF
// error from the underlying shutdown is surfaced to the caller; when
// false (the common case for a task that already got its response),
// teardown errors are swallowed.
type Stream struct {
	net.Conn
	sensitive bool
}

// Close shuts the stream down. In sensitive mode, anything other than
// io.EOF is reported; otherwise every close error is ignored since the
// task already has what it came for.
func (s *Stream) Close() error {
	err := s.Conn.Close()
	if !s.sensitive {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return nil
	}
	return errorutil.NewWithErr(err).WithTag("abrade/connection")
}
