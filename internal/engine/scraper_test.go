package engine

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bytespray/abrade"
	"github.com/bytespray/abrade/internal/connection"
)

// pipeStrategy hands out one half of an in-memory net.Pipe per
// connection, draining the other half until the client side is closed
// so fakeQuery never blocks on real I/O.
type pipeStrategy struct{}

func (pipeStrategy) Connect(ctx context.Context, host string) (*connection.Stream, error) {
	client, server := net.Pipe()
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := server.Read(buf); err != nil {
				return
			}
		}
	}()
	return &connection.Stream{Conn: client}, nil
}

type fakeQuery struct {
	mu   sync.Mutex
	seen []string
}

func (q *fakeQuery) Execute(conn io.ReadWriter, candidate abrade.Candidate) error {
	q.mu.Lock()
	q.seen = append(q.seen, candidate.URI)
	q.mu.Unlock()
	return nil
}

func TestScraperVisitsEveryCandidate(t *testing.T) {
	gen, err := abrade.NewGenerator("/item/{0:9}", false, false)
	require.NoError(t, err)

	controller := abrade.NewFixedController(4, 1000000)
	query := &fakeQuery{}
	errPath := filepath.Join(t.TempDir(), "errors.log")

	s, err := New("target.example", pipeStrategy{}, query, controller, errPath, false)
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.Run(ctx, gen)

	query.mu.Lock()
	defer query.mu.Unlock()
	require.Len(t, query.seen, 10)

	_, statErr := os.Stat(errPath)
	require.NoError(t, statErr)
}

func TestScraperLogsFailures(t *testing.T) {
	gen, err := abrade.NewGenerator("/item/{0:1}", false, false)
	require.NoError(t, err)

	controller := abrade.NewFixedController(1, 1000000)
	query := &failingQuery{}
	errPath := filepath.Join(t.TempDir(), "errors.log")

	s, err := New("target.example", pipeStrategy{}, query, controller, errPath, false)
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Run(ctx, gen)

	data, readErr := os.ReadFile(errPath)
	require.NoError(t, readErr)
	require.Contains(t, string(data), "boom")
}

type failingQuery struct{}

func (failingQuery) Execute(conn io.ReadWriter, candidate abrade.Candidate) error {
	return errBoom
}

var errBoom = &boomError{}

type boomError struct{}

func (*boomError) Error() string { return "boom" }
