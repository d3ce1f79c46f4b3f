package action

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytespray/abrade"
)

func TestHeadActionAppendsFoundURIs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "found.txt")

	a, err := NewHeadAction(path, false)
	require.NoError(t, err)

	a.Process(abrade.Outcome{StatusCode: 200, URI: "/one"})
	a.Process(abrade.Outcome{StatusCode: 404, URI: "/two"})
	a.Process(abrade.Outcome{StatusCode: 204, URI: "/three"})
	require.NoError(t, a.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "/one\n/three\n", string(data))
}

func TestHeadActionReopenAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "found.txt")

	a, err := NewHeadAction(path, false)
	require.NoError(t, err)
	a.Process(abrade.Outcome{StatusCode: 200, URI: "/one"})
	require.NoError(t, a.Close())

	b, err := NewHeadAction(path, false)
	require.NoError(t, err)
	b.Process(abrade.Outcome{StatusCode: 200, URI: "/two"})
	require.NoError(t, b.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "/one\n/two\n", string(data))
}
