package trie

import "iter"

// forkPoint is a (cell, output length) pair recorded whenever a cell
// with down != 0 is visited, per spec.md §4.5.
type forkPoint struct {
	cell uint32
	outN int
}

// Iterate returns a lazy sequence of every hostname stored under ref,
// each yielded exactly once, via an in-order DFS (spec.md §4.5).
func (c *Container) Iterate(ref TrieRef) iter.Seq[string] {
	return func(yield func(string) bool) {
		down0, right0, seg0 := c.getCell(ref.root)
		if down0 == 0 && right0 == 0 && seg0 == 0 {
			return // empty trie, nothing stored
		}

		var out [256]byte
		outN := 0
		var stack []forkPoint
		cell := ref.root

		emit := func() bool {
			rev := make([]byte, outN)
			for i := 0; i < outN; i++ {
				rev[i] = out[outN-1-i]
			}
			return yield(string(rev))
		}

		for {
			down, right, seg := c.getCell(cell)
			length, off := unpackSeg(seg)

			if length == 0 {
				// Boundary cell: the accumulated output is a complete
				// stored hostname. Every boundary cell insert.go allocates
				// is wired with a non-zero right at creation time, so
				// right==0 never occurs here for a buffer this package
				// built.
				if !emit() {
					return
				}
				cell = right
				continue
			}

			if down != 0 {
				stack = append(stack, forkPoint{cell: down, outN: outN})
			}
			for i := 0; i < int(length); i++ {
				out[outN] = c.segByte(off, i)
				outN++
			}

			if right == 0 {
				if !emit() {
					return
				}
				if !c.popFork(&stack, &cell, &outN) {
					return
				}
				continue
			}
			cell = right
		}
	}
}

// popFork pops the most recent fork point, truncating the output
// length to the recorded value, and resumes on the down branch. It
// reports whether a fork point remained.
func (c *Container) popFork(stack *[]forkPoint, cell *uint32, outN *int) bool {
	if len(*stack) == 0 {
		return false
	}
	top := (*stack)[len(*stack)-1]
	*stack = (*stack)[:len(*stack)-1]
	*cell = top.cell
	*outN = top.outN
	return true
}
