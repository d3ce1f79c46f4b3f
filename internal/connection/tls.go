package connection

import (
	"context"
	"crypto/tls"
	"net"

	errorutil "github.com/projectdiscovery/utils/errors"
	"golang.org/x/net/idna"
)

// TLS dials host:443 and performs a client TLS handshake, verifying the
// presented certificate unless InsecureSkipVerify is set.
type TLS struct {
	InsecureSkipVerify bool
	Sensitive          bool
	dialer             net.Dialer
}

// NewTLS returns a Strategy dialing HTTPS. verify disables the usual
// certificate validation when false.
func NewTLS(verify, sensitive bool) *TLS {
	return &TLS{InsecureSkipVerify: !verify, Sensitive: sensitive}
}

func (t *TLS) Connect(ctx context.Context, host string) (*Stream, error) {
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return nil, errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("idna encode %s", host)
	}

	conn, err := t.dialer.DialContext(ctx, "tcp", net.JoinHostPort(ascii, "443"))
	if err != nil {
		return nil, errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("ssl connect to %s", host)
	}

	tlsConn := tls.Client(conn, &tls.Config{
		ServerName:         ascii,
		InsecureSkipVerify: t.InsecureSkipVerify,
	})
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("ssl handshake with %s", host)
	}

	return &Stream{Conn: tlsConn, sensitive: t.Sensitive}, nil
}
