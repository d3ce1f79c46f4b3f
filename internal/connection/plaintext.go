package connection

import (
	"context"
	"net"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Plaintext dials a bare TCP connection to host:80.
type Plaintext struct {
	// Sensitive controls whether Stream.Close surfaces teardown errors.
	Sensitive bool
	dialer    net.Dialer
}

// NewPlaintext returns a Strategy dialing unencrypted HTTP.
func NewPlaintext(sensitive bool) *Plaintext {
	return &Plaintext{Sensitive: sensitive}
}

func (p *Plaintext) Connect(ctx context.Context, host string) (*Stream, error) {
	conn, err := p.dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, "80"))
	if err != nil {
		return nil, errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("tcp connect to %s", host)
	}
	return &Stream{Conn: conn, sensitive: p.Sensitive}, nil
}
