package abrade

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectAll(t *testing.T, g *Generator) []string {
	t.Helper()
	var out []string
	for {
		uri, ok := g.Next()
		if !ok {
			break
		}
		out = append(out, uri)
	}
	// Next must stay empty forever once exhausted.
	uri, ok := g.Next()
	require.False(t, ok)
	require.Empty(t, uri)
	return out
}

func TestGeneratorExplicitSingleRange(t *testing.T) {
	g, err := NewGenerator("/my/desired/{0:1}/route", false, false)
	require.NoError(t, err)

	size, err := g.Size()
	require.NoError(t, err)
	require.EqualValues(t, 2, size)

	require.Equal(t, []string{
		"/my/desired/0/route",
		"/my/desired/1/route",
	}, collectAll(t, g))
}

func TestGeneratorExplicitTwoRanges(t *testing.T) {
	g, err := NewGenerator("/my/{0:1}/desired/{14:16}/route", false, false)
	require.NoError(t, err)

	size, err := g.Size()
	require.NoError(t, err)
	require.EqualValues(t, 6, size)

	require.Equal(t, []string{
		"/my/0/desired/14/route",
		"/my/0/desired/15/route",
		"/my/0/desired/16/route",
		"/my/1/desired/14/route",
		"/my/1/desired/15/route",
		"/my/1/desired/16/route",
	}, collectAll(t, g))
}

func TestGeneratorExplicitTripleOdometer(t *testing.T) {
	g, err := NewGenerator("{0:1}{0:1}{0:1}", false, false)
	require.NoError(t, err)

	size, err := g.Size()
	require.NoError(t, err)
	require.EqualValues(t, 8, size)

	require.Equal(t, []string{
		"000", "001", "010", "011", "100", "101", "110", "111",
	}, collectAll(t, g))
}

func TestGeneratorImplicitLeadingZeroSuppression(t *testing.T) {
	g, err := NewGenerator("/p/{oo}/q", false, false)
	require.NoError(t, err)

	size, err := g.Size()
	require.NoError(t, err)
	require.EqualValues(t, 64, size)

	outputs := collectAll(t, g)
	require.Len(t, outputs, 64)
	require.Equal(t, "/p/0/q", outputs[0])
	require.Equal(t, "/p/1/q", outputs[1])
	require.Equal(t, "/p/2/q", outputs[2])
	require.Equal(t, "/p/7/q", outputs[7])
	require.Equal(t, "/p/10/q", outputs[8])
	require.Equal(t, "/p/77/q", outputs[63])
}

func TestGeneratorImplicitBDomainOrdering(t *testing.T) {
	g, err := NewGenerator("{b}", false, false)
	require.NoError(t, err)

	size, err := g.Size()
	require.NoError(t, err)
	require.EqualValues(t, 62, size)

	outputs := collectAll(t, g)
	require.Len(t, outputs, 62)
	require.Equal(t, "0123456789", outputs[0]+outputs[1]+outputs[2]+outputs[3]+outputs[4]+outputs[5]+outputs[6]+outputs[7]+outputs[8]+outputs[9])
	require.Equal(t, "A", outputs[10])
	require.Equal(t, "Z", outputs[35])
	require.Equal(t, "a", outputs[36])
	require.Equal(t, "z", outputs[61])
}

func TestGeneratorTelescopingSingleHex(t *testing.T) {
	g, err := NewGenerator("/p/{h}/q", false, true)
	require.NoError(t, err)

	outputs := collectAll(t, g)
	require.Equal(t, []string{
		"/p/0/q", "/p/1/q", "/p/2/q", "/p/3/q", "/p/4/q", "/p/5/q",
		"/p/6/q", "/p/7/q", "/p/8/q", "/p/9/q", "/p/a/q", "/p/b/q",
		"/p/c/q", "/p/d/q", "/p/e/q", "/p/f/q",
	}, outputs)
}

func TestGeneratorTelescopingTwoHex(t *testing.T) {
	g, err := NewGenerator("{hh}", false, true)
	require.NoError(t, err)

	size, err := g.Size()
	require.NoError(t, err)
	require.EqualValues(t, 272, size)

	outputs := collectAll(t, g)
	require.Len(t, outputs, 272)
	require.Equal(t, "0", outputs[0])
	require.Equal(t, "f", outputs[15])
	require.Equal(t, "00", outputs[16])
	require.Equal(t, "ff", outputs[271])
}

func TestGeneratorExplicitSingleValueRange(t *testing.T) {
	g, err := NewGenerator("{3:3}", false, false)
	require.NoError(t, err)
	outputs := collectAll(t, g)
	require.Equal(t, []string{"3"}, outputs)
}

func TestGeneratorContinuation(t *testing.T) {
	g, err := NewGenerator("{0:2}-{}", false, false)
	require.NoError(t, err)
	require.Equal(t, []string{"0-0", "1-1", "2-2"}, collectAll(t, g))
}

func TestGeneratorContinuationMustNotLead(t *testing.T) {
	_, err := NewGenerator("{}", false, false)
	require.Error(t, err)
}

func TestGeneratorUnmatchedBrace(t *testing.T) {
	_, err := NewGenerator("/a}", false, false)
	require.Error(t, err)

	_, err = NewGenerator("/a{b", false, false)
	require.Error(t, err)
}

func TestGeneratorReversedExplicitRange(t *testing.T) {
	_, err := NewGenerator("{5:1}", false, false)
	require.Error(t, err)
}

func TestGeneratorUnknownSelector(t *testing.T) {
	_, err := NewGenerator("{z}", false, false)
	require.Error(t, err)
}

func TestGeneratorSizeOverflowFallsBackToLogSize(t *testing.T) {
	// 20 positions of a 62-char domain vastly exceeds uint64.
	g, err := NewGenerator("{bbbbbbbbbbbbbbbbbbbb}", false, false)
	require.NoError(t, err)

	_, err = g.Size()
	require.Error(t, err)
	require.True(t, IsOverflow(err))
	require.Greater(t, g.LogSize(), 0.0)
}
