package main

import (
	"fmt"

	"github.com/jameshilliard/hntrie/store"
	"github.com/jameshilliard/hntrie/trie"
	"github.com/jameshilliard/hntrie/trie/accel"
)

func openStore(dbPath string) (*store.BoltStore, error) {
	return store.OpenBolt(dbPath)
}

// loadContainer reads the named trie's serialised buffer out of s and
// reopens a trie.Container directly around it (spec.md §6/§8: no
// re-fixup, no re-insertion needed).
func loadContainer(s *store.BoltStore, name string) (*trie.Container, trie.TrieRef, error) {
	buf, err := s.Get([]byte(name))
	if err != nil {
		return nil, trie.TrieRef{}, fmt.Errorf("load trie %q: %w", name, err)
	}
	c, err := trie.Open(buf, trie.WithAccelerator(accel.Select()))
	if err != nil {
		return nil, trie.TrieRef{}, fmt.Errorf("open trie %q: %w", name, err)
	}
	return c, c.Root(), nil
}
