package accel

import "unsafe"

// hostIsLittleEndian reports whether the running process is
// little-endian. The trie buffer format (spec.md §3) is defined in
// terms of native little-endian words, so the native backend must
// never be engaged on a big-endian host (spec.md §7).
func hostIsLittleEndian() bool {
	var probe uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&probe))
	return b[0] == 1
}
