package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func addHostname(t testing.TB, c *Container, ref TrieRef, hostname string) bool {
	t.Helper()
	c.SetNeedle([]byte(hostname))
	return c.Add(ref)
}

func matchHostname(t testing.TB, c *Container, ref TrieRef, query string) int32 {
	t.Helper()
	c.SetNeedle([]byte(query))
	return c.Matches(ref)
}

func TestNewContainerLifecycleDefaults(t *testing.T) {
	c := NewContainer(0, 0)
	require.Equal(t, uint32(defaultInitialSize), uint32(len(c.buf)))
	require.Equal(t, uint32(cellRegionStart), c.trie0())
	require.Equal(t, uint32(cellRegionStart), c.trie1())
	require.Equal(t, uint32(defaultChar0), c.char0())
	require.Equal(t, uint32(defaultChar0), c.char1())
}

func TestSetNeedleTruncatesToMaxLen(t *testing.T) {
	c := NewContainer(0, 0)
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'a'
	}
	c.SetNeedle(long)
	require.Equal(t, uint32(maxNeedleLen), c.needleLen())
}

func TestEmptyNeedleIsNoOp(t *testing.T) {
	c := NewContainer(0, 0)
	ref := c.CreateTrie()

	c.SetNeedle(nil)
	require.False(t, c.Add(ref))
	require.Equal(t, int32(-1), c.Matches(ref))
}

func TestResetClearsTriesWithoutReleasingBuffer(t *testing.T) {
	c := NewContainer(0, 0)
	ref := c.CreateTrie()
	require.True(t, addHostname(t, c, ref, "example.com"))

	bufLenBefore := len(c.buf)
	c.Reset()
	require.Equal(t, bufLenBefore, len(c.buf))
	require.Equal(t, uint32(cellRegionStart), c.trie1())
	require.Equal(t, c.initialChar0, c.char0())
	require.Equal(t, c.initialChar0, c.char1())
}

func TestInvariant1RegionOrdering(t *testing.T) {
	c := NewContainer(0, 0)
	ref := c.CreateTrie()
	for _, h := range []string{"example.com", "sub.example.com", "a.b.c", "b.c"} {
		addHostname(t, c, ref, h)
	}
	require.LessOrEqual(t, uint32(cellRegionStart), c.trie1())
	require.LessOrEqual(t, c.trie1(), c.char0())
	require.LessOrEqual(t, c.char0(), c.char1())
	require.LessOrEqual(t, c.char1(), uint32(len(c.buf)))
}
