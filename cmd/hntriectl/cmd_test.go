package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildQueryListStatsRoundTrip(t *testing.T) {
	quiet, jsonOut = false, false
	dbPath := filepath.Join(t.TempDir(), "hosts.db")
	hostlist := writeHostlist(t, []string{
		"# comment",
		"",
		"example.com",
		"ads.example.com",
		"tracker.net",
	})

	require.NoError(t, runBuild(dbPath, "default", hostlist))

	out, err := captureOutput(t, func() error {
		return runQuery(dbPath, "default", "foo.ads.example.com")
	})
	require.NoError(t, err)
	assertContains(t, out, []string{"matched"})

	out, err = captureOutput(t, func() error {
		return runQuery(dbPath, "default", "nomatch.org")
	})
	require.NoError(t, err)
	assertContains(t, out, []string{"no match"})

	out, err = captureOutput(t, func() error {
		return runList(dbPath, "default")
	})
	require.NoError(t, err)
	assertContains(t, out, []string{"example.com", "ads.example.com", "tracker.net"})

	out, err = captureOutput(t, func() error {
		return runStats(dbPath, "default")
	})
	require.NoError(t, err)
	assertContains(t, out, []string{"buffer length", "cell region"})
}

func TestBuildJSONOutput(t *testing.T) {
	quiet = false
	jsonOut = true
	defer func() { jsonOut = false }()

	dbPath := filepath.Join(t.TempDir(), "hosts.db")
	hostlist := writeHostlist(t, []string{"a.com", "b.com"})

	out, err := captureOutput(t, func() error {
		return runBuild(dbPath, "default", hostlist)
	})
	require.NoError(t, err)
	assertJSON(t, out)
}

func TestQueryMissingTrieReturnsError(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	hostlist := writeHostlist(t, []string{"a.com"})
	require.NoError(t, runBuild(dbPath, "default", hostlist))

	err := runQuery(dbPath, "missing", "a.com")
	require.Error(t, err)
}
