// Package store is the persistence boundary for a trie.Container's
// serialised buffer: a small interface plus a bbolt-backed
// implementation with opportunistic zstd compression and a sharded
// in-memory read cache in front of it.
//
// Nothing in package trie depends on package store; a container's
// Bytes() is just a []byte, and any caller is free to persist it
// however it likes. This package exists to give that "however" a
// concrete, idiomatic shape.
package store
