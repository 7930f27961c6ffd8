package trie

// Matches consumes the current needle against the trie rooted at ref
// and returns the number of unconsumed hostname characters on success
// (spec.md §4.4): the offset into the needle where the longest matching
// stored hostname begins, or -1 on a miss. An empty needle always misses.
//
// When an accelerator backend is installed (see WithAccelerator), it is
// tried first; both backends must agree byte-for-byte on the same
// buffer (spec.md §4.4 "Accelerated matcher"), so falling back to the
// scalar path on accelerator unavailability is always safe.
func (c *Container) Matches(ref TrieRef) int32 {
	n := c.needleLen()
	if n == 0 {
		return -1
	}
	if c.accel != nil {
		if r, ok := c.accel.Matches(c.buf, c.char0(), ref.root, n); ok {
			return r
		}
	}
	return c.matchesScalar(ref, n)
}

func (c *Container) matchesScalar(ref TrieRef, n uint32) int32 {
	k := int32(n)
	cell := ref.root
	// best is the offset of the longest label-aligned stored hostname
	// passed so far, or -1 if none.
	best := int32(-1)

	for {
		if k == 0 {
			return best
		}
		target := c.needleByte(k - 1)

		// Step 2: find the first cell in the down-chain whose segment's
		// first byte equals target.
		var matched uint32
		cur := cell
		for cur != 0 {
			down, _, seg := c.getCell(cur)
			length, off := unpackSeg(seg)
			if length > 0 && c.segByte(off, 0) == target {
				matched = cur
				break
			}
			cur = down
		}
		if matched == 0 {
			return best
		}

		// Step 3: verify the remainder of the matched segment.
		_, right, seg := c.getCell(matched)
		length, off := unpackSeg(seg)
		if k < int32(length) {
			return best
		}
		ok := true
		for i := int32(1); i < int32(length); i++ {
			if c.segByte(off, int(i)) != c.needleByte(k-1-i) {
				ok = false
				break
			}
		}
		if !ok {
			return best
		}
		k -= int32(length)

		// Steps 4-5: resolve the pointer chain through any boundary
		// cells, honouring label-boundary semantics at each one. A
		// label-aligned boundary is recorded in best and traversal goes
		// on, so a longer stored hostname takes precedence.
		next := right
		for {
			if next == 0 {
				if k == 0 || c.needleByte(k-1) == '.' {
					return k
				}
				return best
			}
			_, nright, nseg := c.getCell(next)
			nlen, _ := unpackSeg(nseg)
			if nlen != 0 {
				break // a real segment cell; resume the outer loop there
			}
			// next is a boundary cell: the prefix up to here is a
			// stored hostname.
			if k == 0 {
				return 0
			}
			if c.needleByte(k-1) == '.' {
				best = k
			}
			next = nright
		}
		cell = next
	}
}
