//go:build !cgo

package accel

// nativeAvailable is false in pure-Go builds; Backend.Matches never
// calls nativeMatches in that case, so the scalar matcher in package
// trie remains authoritative (spec.md §7: accelerator failure is
// non-fatal).
func nativeAvailable() bool { return false }

func nativeMatches(buf []byte, char0, root, needleLen uint32) int32 {
	return -1
}
