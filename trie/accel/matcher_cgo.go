//go:build cgo

package accel

/*
#include <stdint.h>

// hntrie_matches mirrors trie.matchesScalar byte-for-byte: the same
// right-to-left, label-boundary traversal over the identical linear
// buffer (spec.md §4.4). It is intentionally self-contained (no
// external library) rather than linked against an invented one.
static int32_t hntrie_matches(const unsigned char *buf, uint32_t char0, uint32_t root, uint32_t needle_len) {
	int32_t k = (int32_t)needle_len;
	uint32_t cell = root;
	int32_t best = -1;

	for (;;) {
		if (k == 0) {
			return best;
		}
		unsigned char target = buf[k - 1];

		uint32_t matched = 0;
		uint32_t cur = cell;
		while (cur != 0) {
			uint32_t off = cur * 4;
			uint32_t down, seg;
			__builtin_memcpy(&down, buf + off, 4);
			__builtin_memcpy(&seg, buf + off + 8, 4);
			uint32_t length = seg >> 24;
			uint32_t segoff = seg & 0x00FFFFFFu;
			if (length > 0 && buf[char0 + segoff] == target) {
				matched = cur;
				break;
			}
			cur = down;
		}
		if (matched == 0) {
			return best;
		}

		uint32_t moff = matched * 4;
		uint32_t right, seg;
		__builtin_memcpy(&right, buf + moff + 4, 4);
		__builtin_memcpy(&seg, buf + moff + 8, 4);
		uint32_t length = seg >> 24;
		uint32_t segoff = seg & 0x00FFFFFFu;
		if (k < (int32_t)length) {
			return best;
		}
		int ok = 1;
		for (int32_t i = 1; i < (int32_t)length; i++) {
			if (buf[char0 + segoff + (uint32_t)i] != buf[k - 1 - i]) {
				ok = 0;
				break;
			}
		}
		if (!ok) {
			return best;
		}
		k -= (int32_t)length;

		uint32_t next = right;
		for (;;) {
			if (next == 0) {
				if (k == 0 || buf[k - 1] == '.') {
					return k;
				}
				return best;
			}
			uint32_t noff = next * 4;
			uint32_t nright, nseg;
			__builtin_memcpy(&nright, buf + noff + 4, 4);
			__builtin_memcpy(&nseg, buf + noff + 8, 4);
			uint32_t nlen = nseg >> 24;
			if (nlen != 0) {
				break;
			}
			if (k == 0) {
				return 0;
			}
			if (buf[k - 1] == '.') {
				best = k;
			}
			next = nright;
		}
		cell = next;
	}
}
*/
import "C"
import "unsafe"

func nativeAvailable() bool { return true }

func nativeMatches(buf []byte, char0, root, needleLen uint32) int32 {
	if len(buf) == 0 {
		return -1
	}
	ptr := (*C.uchar)(unsafe.Pointer(&buf[0]))
	return int32(C.hntrie_matches(ptr, C.uint32_t(char0), C.uint32_t(root), C.uint32_t(needleLen)))
}
