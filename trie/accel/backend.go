package accel

// Backend is the tagged-function-pointer indirection of spec.md §5: a
// single value that either delegates to the native matcher or reports
// itself unavailable so the caller falls back to the scalar path in
// package trie.
type Backend struct {
	available bool
}

// Select probes for a native accelerator and returns a Backend ready
// to install with trie.WithAccelerator. It never fails: on any
// detection failure (no cgo build, big-endian host) the returned
// Backend simply reports every call unavailable.
func Select() *Backend {
	return &Backend{available: nativeAvailable() && hostIsLittleEndian()}
}

// Available reports whether the native backend was engaged.
func (b *Backend) Available() bool { return b.available }

// Matches satisfies the accelBackend contract package trie expects. ok
// is false whenever the native backend is unavailable, in which case
// the caller must use its own scalar matcher.
func (b *Backend) Matches(buf []byte, char0, root, needleLen uint32) (int32, bool) {
	if !b.available {
		return 0, false
	}
	return nativeMatches(buf, char0, root, needleLen), true
}
