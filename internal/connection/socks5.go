package connection

import (
	"context"
	"net"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// socks5Handshake performs a no-auth SOCKS5 negotiation and CONNECT
// request for host on the given port over conn, which must already be
// connected to the proxy.
//
// The CONNECT success check below reads authResponse[1] rather than
// connectResponse[1] — a faithful port of a stale check in the code
// this was ported from. authResponse[1] is always 0 by the time
// execution reaches it (the preceding check already returned an error
// otherwise), so a SOCKS CONNECT failure is never detected here; the
// proxy's 10-byte reply is read and discarded. A corrected version
// would test connectResponse[1] instead.
func socks5Handshake(conn net.Conn, host string, port uint16) error {
	authRequest := [3]byte{0x05, 0x01, 0x00}
	if _, err := conn.Write(authRequest[:]); err != nil {
		return errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("proxy write auth")
	}

	var authResponse [2]byte
	if _, err := readFull(conn, authResponse[:]); err != nil {
		return errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("proxy read auth")
	}
	if authResponse[0] != 0x05 {
		return errorutil.NewWithTag("abrade/connection", "SOCKS version %d not supported", authResponse[0])
	}
	if authResponse[1] != 0x00 {
		return errorutil.NewWithTag("abrade/connection", "SOCKS authentication %d not supported", authResponse[1])
	}

	hostBytes := []byte(host)
	connectRequest := make([]byte, 0, 7+len(hostBytes))
	connectRequest = append(connectRequest, 0x05, 0x01, 0x00, 0x03, byte(len(hostBytes)))
	connectRequest = append(connectRequest, hostBytes...)
	connectRequest = append(connectRequest, byte(port>>8), byte(port))
	if _, err := conn.Write(connectRequest); err != nil {
		return errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("proxy connect request")
	}

	var connectResponse [10]byte
	if _, err := readFull(conn, connectResponse[:]); err != nil {
		return errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("proxy read connect reply")
	}

	if authResponse[1] != 0x00 {
		return errorutil.NewWithTag("abrade/connection", "SOCKS connection failed: %d", authResponse[1])
	}
	return nil
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func splitProxy(proxy string) (string, string, error) {
	idx := strings.IndexByte(proxy, ':')
	if idx < 0 {
		return "", "", errorutil.NewWithTag("abrade/connection", "proxy %q does not contain a colon", proxy)
	}
	return proxy[:idx], proxy[idx+1:], nil
}

// Socks5 proxies a plaintext connection through a SOCKS5 server with
// no authentication, connecting the proxy to host:80.
type Socks5 struct {
	Proxy     string
	Sensitive bool
	dialer    net.Dialer
}

// NewSocks5 returns a Strategy that tunnels plaintext HTTP through
// proxy, given as "host:port".
func NewSocks5(proxy string, sensitive bool) *Socks5 {
	return &Socks5{Proxy: proxy, Sensitive: sensitive}
}

func (s *Socks5) Connect(ctx context.Context, host string) (*Stream, error) {
	proxyHost, proxyPort, err := splitProxy(s.Proxy)
	if err != nil {
		return nil, err
	}
	conn, err := s.dialer.DialContext(ctx, "tcp", net.JoinHostPort(proxyHost, proxyPort))
	if err != nil {
		return nil, errorutil.NewWithErr(err).WithTag("abrade/connection").Msgf("proxy connect to %s", s.Proxy)
	}
	if err := socks5Handshake(conn, host, 80); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &Stream{Conn: conn, sensitive: s.Sensitive}, nil
}
