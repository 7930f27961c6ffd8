// Package accel selects between the portable scalar matcher and a
// native accelerated backend for the hostname trie, per spec.md §4.4
// and §5. Selection happens once, at container-open time, and is a
// one-shot state transition: before it, the scalar matcher in package
// trie is authoritative; after it, if a native backend is available,
// it replaces the scalar path atomically. Feature detection failure
// (no cgo, or a big-endian host) is never fatal — it simply means the
// scalar matcher stays in charge.
package accel
