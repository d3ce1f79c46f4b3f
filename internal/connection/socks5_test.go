package connection

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeSocks5Server accepts one connection, performs the server side of
// a no-auth negotiation, and replies with the given connect-reply
// trailing byte (offset 1 of the 10-byte CONNECT reply).
func fakeSocks5Server(t *testing.T, connectStatus byte) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		var authRequest [3]byte
		if _, err := readFull(conn, authRequest[:]); err != nil {
			return
		}
		_, _ = conn.Write([]byte{0x05, 0x00})

		header := make([]byte, 5)
		if _, err := readFull(conn, header); err != nil {
			return
		}
		nameLen := int(header[4])
		rest := make([]byte, nameLen+2)
		if _, err := readFull(conn, rest); err != nil {
			return
		}

		reply := make([]byte, 10)
		reply[0] = 0x05
		reply[1] = connectStatus
		_, _ = conn.Write(reply)
	}()

	return ln
}

func TestSocks5HandshakeSucceedsOnNoAuthAndConnectOK(t *testing.T) {
	ln := fakeSocks5Server(t, 0x00)
	defer ln.Close()

	conn, err := net.DialTimeout("tcp", ln.Addr().String(), time.Second)
	require.NoError(t, err)
	defer conn.Close()

	err = socks5Handshake(conn, "example.com", 80)
	require.NoError(t, err)
}

// TestSocks5HandshakeIgnoresConnectFailure documents the preserved
// stale-byte behavior: a non-zero connect-reply status is never
// surfaced because the success check re-reads authResponse[1], which
// is always 0 once the handshake reaches that point.
func TestSocks5HandshakeIgnoresConnectFailure(t *testing.T) {
	ln := fakeSocks5Server(t, 0x05) // "connection refused by destination"
	defer ln.Close()

	conn, err := net.DialTimeout("tcp", ln.Addr().String(), time.Second)
	require.NoError(t, err)
	defer conn.Close()

	err = socks5Handshake(conn, "example.com", 80)
	require.NoError(t, err)
}

func TestSocks5HandshakeRejectsBadVersion(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		var authRequest [3]byte
		_, _ = readFull(conn, authRequest[:])
		_, _ = conn.Write([]byte{0x04, 0x00})
	}()

	conn, err := net.DialTimeout("tcp", ln.Addr().String(), time.Second)
	require.NoError(t, err)
	defer conn.Close()

	err = socks5Handshake(conn, "example.com", 80)
	require.Error(t, err)
}

func TestSplitProxy(t *testing.T) {
	host, port, err := splitProxy("127.0.0.1:1080")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", host)
	require.Equal(t, "1080", port)

	_, _, err = splitProxy("no-colon-here")
	require.Error(t, err)
}
