package trie

// Add consumes the current needle and inserts it into the trie rooted
// at ref, implementing the insertion cases of spec.md §4.3. It returns
// true if the hostname was newly added, false if it was already
// present (or the needle is empty).
func (c *Container) Add(ref TrieRef) bool {
	n := c.needleLen()
	if n == 0 {
		return false
	}
	k := n

	down0, right0, seg0 := c.getCell(ref.root)
	if down0 == 0 && right0 == 0 && seg0 == 0 {
		// Special case (spec.md §4.3): an empty trie's root is written
		// directly as the first segment cell.
		c.setCellSeg(ref.root, c.allocSegment(k))
		c.sizes[ref.root]++
		return true
	}

	cell := ref.root
	for {
		down, right, seg := c.getCell(cell)
		length, off := unpackSeg(seg)

		if length == 0 {
			// Boundary cell (step 1): follow right and continue. Every
			// boundary cell this package allocates is wired with a non-zero
			// right at the moment of creation (case B and case C below), so
			// right==0 on a boundary cell never occurs for a buffer this
			// package built.
			cell = right
			continue
		}

		m := c.commonPrefixLen(off, length, k)

		switch {
		case m == 0: // Case A: first byte differs.
			if down != 0 {
				cell = down
				continue
			}
			next := c.allocCell(0, 0, c.allocSegment(k))
			c.setCellDown(cell, next)
			c.sizes[ref.root]++
			return true

		case m == length: // Case B: full segment match.
			k -= m
			if k == 0 {
				if right == 0 {
					return false // already stored
				}
				_, _, rseg := c.getCell(right)
				rlen, _ := unpackSeg(rseg)
				if rlen == 0 {
					return false // already stored (boundary right after)
				}
				boundary := c.allocCell(0, right, 0)
				c.setCellRight(cell, boundary)
				c.sizes[ref.root]++
				return true
			}
			if right != 0 {
				cell = right
				continue
			}
			boundary := c.allocCell(0, 0, 0)
			tail := c.allocCell(0, 0, c.allocSegment(k))
			c.setCellRight(boundary, tail)
			c.setCellRight(cell, boundary)
			c.sizes[ref.root]++
			return true

		default: // Case C: 0 < m < length, split required.
			tail := c.allocCell(0, right, packSeg(length-m, off+m))
			c.setCellSeg(cell, packSeg(m, off))
			c.setCellRight(cell, tail)
			k -= m
			if k == 0 {
				boundary := c.allocCell(0, tail, 0)
				c.setCellRight(cell, boundary)
			} else {
				fork := c.allocCell(0, 0, c.allocSegment(k))
				c.setCellDown(tail, fork)
			}
			c.sizes[ref.root]++
			return true
		}
	}
}

// commonPrefixLen returns the longest m in [0, min(length, k)] such
// that the segment's i-th byte equals needle[k-1-i] for i < m
// (spec.md §4.3 step 3).
func (c *Container) commonPrefixLen(off, length, k uint32) uint32 {
	max := length
	if k < max {
		max = k
	}
	var m uint32
	for m < max && c.segByte(off, int(m)) == c.needleByte(int32(k)-1-int32(m)) {
		m++
	}
	return m
}
