// Package trie implements a compact, mutable, arena-backed radix trie
// specialized for hostname matching.
//
// A Container owns one contiguous, growable byte buffer partitioned into
// a needle scratch area, a fixed header, a trie-cell arena and a
// character-segment pool. Hostnames are inserted right-to-left and
// matched with label-boundary semantics: a query matches a stored
// hostname S if the query equals S or ends with "."+S. The buffer is
// little-endian and self-relative (cells reference each other by word
// offset, never by pointer), so the compacted buffer is its own
// serialised form: it can be written to a store and later reopened with
// Open without any fix-up pass.
//
// The package is not safe for concurrent mutation; callers that share a
// Container across goroutines must serialise access externally.
package trie
