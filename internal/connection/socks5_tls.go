package connection

import (
	"context"
	"crypto/tls"
	"net"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Socks5TLS proxies a TLS connection through a SOCKS5 server with no
// authentication, connecting the proxy to host:443 and then running
// the TLS handshake over the tunnel.
type Socks5TLS struct {
	Proxy              string
	InsecureSkipVerify bool
	Sensitive          bool
	dialer             net.Dialer
}

// NewSocks5TLS returns a Strategy that tunnels HTTPS through proxy,
// given as "host:port".
func NewSocks5TLS(proxy string, verify, sensitive bool) *Socks5TLS {
	return &Socks5TLS{Proxy: proxy, InsecureSkipVerify: !verify, Sensitive: sensitive}
}

func (s *Socks5TLS) Connect(ctx context.Context, host string) (*Stream, error) {
	proxyHost, proxyPort, err := splitProxy(s.Proxy)
	if err != nil {
		return nil, err
	}
	conn, err := s.dialer.DialContext(ctx, "tcp", net.JoinHostPort(proxyHost, proxyPort))
	if err != nil {
		return nil, errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("proxy connect to %s", s.Proxy)
	}
	if err := socks5Handshake(conn, host, 443); err != nil {
		_ = conn.Close()
		return nil, err
	}

	tlsConn := tls.Client(conn, &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: s.InsecureSkipVerify,
	})
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("proxied ssl handshake with %s", host)
	}

	return &Stream{Conn: tlsConn, sensitive: s.Sensitive}, nil
}
