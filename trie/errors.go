package trie

import "errors"

var (
	// ErrBufferExhausted indicates the host allocator refused to grow
	// the backing buffer. The container is left unchanged.
	ErrBufferExhausted = errors.New("trie: buffer exhausted")

	// ErrCorruptBuffer indicates Open was given a buffer whose header
	// does not satisfy the region invariants of spec.md §3.
	ErrCorruptBuffer = errors.New("trie: corrupt buffer")

	// ErrBufferTooSmall indicates a buffer passed to Open is smaller
	// than the fixed header region.
	ErrBufferTooSmall = errors.New("trie: buffer smaller than header")
)
