package trie

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddIdempotent(t *testing.T) {
	c := NewContainer(0, 0)
	ref := c.CreateTrie()

	require.True(t, addHostname(t, c, ref, "ads.example.com"))
	cellsAfterFirst := c.trie1()

	require.False(t, addHostname(t, c, ref, "ads.example.com"))
	require.Equal(t, cellsAfterFirst, c.trie1(), "re-adding must not grow the cell region")
}

func TestAddAndMatchBasicScenario(t *testing.T) {
	c := NewContainer(0, 0)
	ref := c.CreateTrie()
	require.True(t, addHostname(t, c, ref, "example.com"))

	require.Equal(t, int32(0), matchHostname(t, c, ref, "example.com"))
	require.Equal(t, int32(4), matchHostname(t, c, ref, "foo.example.com"))
	require.Equal(t, int32(-1), matchHostname(t, c, ref, "notexample.com"))
	require.Equal(t, int32(-1), matchHostname(t, c, ref, "example.co"))
}

func TestAddAndMatchSharedSuffix(t *testing.T) {
	c := NewContainer(0, 0)
	ref := c.CreateTrie()
	require.True(t, addHostname(t, c, ref, "example.com"))
	require.True(t, addHostname(t, c, ref, "sub.example.com"))

	require.Equal(t, int32(0), matchHostname(t, c, ref, "sub.example.com"))
	require.Equal(t, int32(2), matchHostname(t, c, ref, "x.sub.example.com"))
	require.Equal(t, int32(6), matchHostname(t, c, ref, "other.example.com"))
}

func TestAddTwiceThenIterateYieldsOnce(t *testing.T) {
	c := NewContainer(0, 0)
	ref := c.CreateTrie()
	require.True(t, addHostname(t, c, ref, "ads.example.com"))
	require.False(t, addHostname(t, c, ref, "ads.example.com"))

	var got []string
	for h := range c.Iterate(ref) {
		got = append(got, h)
	}
	require.Equal(t, []string{"ads.example.com"}, got)
}

func TestSplitScenario(t *testing.T) {
	c := NewContainer(0, 0)
	ref := c.CreateTrie()
	require.True(t, addHostname(t, c, ref, "a.b.c"))
	require.True(t, addHostname(t, c, ref, "b.c"))

	require.Equal(t, int32(2), matchHostname(t, c, ref, "z.b.c"))
	require.Equal(t, int32(0), matchHostname(t, c, ref, "a.b.c"))
	require.Equal(t, int32(2), matchHostname(t, c, ref, "x.a.b.c"))
}

func TestOrderIndependence(t *testing.T) {
	hostnames := []string{
		"example.com", "sub.example.com", "a.b.c", "b.c", "c",
		"ads.example.com", "tracker.example.com", "example.net",
		"deep.sub.example.com", "other.net",
	}
	queries := []string{
		"example.com", "www.example.com", "sub.example.com",
		"x.sub.example.com", "a.b.c", "z.b.c", "c", "y.c",
		"ads.example.com", "example.net", "other.net", "nomatch.org",
		"deep.sub.example.com", "zzz.deep.sub.example.com",
	}

	results := make(map[string]int32)
	for run := 0; run < 5; run++ {
		perm := append([]string(nil), hostnames...)
		rand.New(rand.NewSource(int64(run))).Shuffle(len(perm), func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})

		c := NewContainer(0, 0)
		ref := c.CreateTrie()
		for _, h := range perm {
			addHostname(t, c, ref, h)
		}

		for _, q := range queries {
			got := matchHostname(t, c, ref, q)
			if run == 0 {
				results[q] = got
			} else {
				require.Equal(t, results[q], got, "query %q diverged across insertion order", q)
			}
		}
	}
}

func TestLargeRandomSet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large randomized test in -short mode")
	}
	const n = 100000
	rng := rand.New(rand.NewSource(42))

	hostnames := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(hostnames) < n {
		h := randomHostname(rng)
		if seen[h] {
			continue
		}
		seen[h] = true
		hostnames = append(hostnames, h)
	}

	c := NewContainer(0, 0)
	ref := c.CreateTrie()
	for _, h := range hostnames {
		require.True(t, addHostname(t, c, ref, h))
	}

	for _, h := range hostnames {
		require.GreaterOrEqual(t, matchHostname(t, c, ref, h), int32(0), "missing hostname %q", h)
	}

	misses := 0
	for i := 0; i < n; i++ {
		q := randomHostname(rng)
		if seen[q] {
			continue
		}
		if matchHostname(t, c, ref, q) >= 0 {
			misses++
		}
	}
	require.Zero(t, misses, "random non-members unexpectedly matched")
}

func randomHostname(rng *rand.Rand) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	labels := 2 + rng.Intn(3)
	var b []byte
	for l := 0; l < labels; l++ {
		if l > 0 {
			b = append(b, '.')
		}
		n := 3 + rng.Intn(8)
		for i := 0; i < n; i++ {
			b = append(b, letters[rng.Intn(len(letters))])
		}
	}
	return string(b)
}
