package trie

import (
	"fmt"
	"io"
	"log/slog"
)

// discardLogger returns a logger matching the default of
// internal/logx: discard everything until a caller opts in.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TrieRef identifies one logical trie root inside a Container. Multiple
// independent roots may coexist in the same container; they share the
// segment pool but not cells (spec.md §3).
type TrieRef struct {
	root uint32 // word index of the root cell
}

// Container owns a single growable byte buffer and the trie roots
// allocated inside it.
type Container struct {
	buf []byte

	log *slog.Logger

	// initialChar0 is remembered so Reset can restore the pristine
	// lifecycle state (spec.md §3: "reset clears all tries without
	// releasing the buffer").
	initialChar0 uint32

	// sizes tracks, per root word index, how many hostnames have been
	// added. It is bookkeeping only (not part of the serialised
	// buffer); nothing in the package reads it back.
	sizes map[uint32]int

	// dedup maps a forward-ordered segment string to its pool-relative
	// offset during construction. It is a size optimisation only
	// (spec.md §4.2) and is discarded by Optimize.
	dedup map[string]uint32

	// accel selects whether matches are served by the accelerated
	// backend or the scalar fallback; nil means scalar-only.
	accel accelBackend
}

// accelBackend is the minimal contract trie/accel implementations
// satisfy, kept local to avoid an import cycle; trie/accel.Select wires
// a concrete value in via WithAccelerator.
type accelBackend interface {
	Matches(buf []byte, char0 uint32, root uint32, needleLen uint32) (int32, bool)
}

// Option configures a new Container.
type Option func(*Container)

// WithLogger injects a structured logger used for grow/optimize
// diagnostics. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Container) { c.log = l }
}

// WithAccelerator installs a native matcher backend selected by the
// caller (typically trie/accel.Select()). A nil backend (or never
// calling this option) means every Matches call uses the scalar
// implementation in match.go.
func WithAccelerator(b accelBackend) Option {
	return func(c *Container) { c.accel = b }
}

// NewContainer creates an empty container. initialSize and char0 default
// to the spec.md §3 lifecycle values (131072 and 65536) when zero.
func NewContainer(initialSize, char0 uint32, opts ...Option) *Container {
	if initialSize == 0 {
		initialSize = defaultInitialSize
	}
	if char0 == 0 {
		char0 = defaultChar0
	}
	if char0 < cellRegionStart+cellRoomReserve {
		char0 = cellRegionStart + cellRoomReserve
	}
	if initialSize < char0+tailReserve {
		initialSize = roundUp(char0+tailReserve, growAlignment)
	}

	c := &Container{
		buf:          make([]byte, initialSize),
		initialChar0: char0,
		sizes:        make(map[uint32]int),
		dedup:        make(map[string]uint32),
		log:          discardLogger(),
	}
	c.putU32(trie0Offset, cellRegionStart)
	c.setTrie1(cellRegionStart)
	c.setChar0(char0)
	c.setChar1(char0)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open restores a container from a previously serialised buffer
// (spec.md §6: "cell offsets are self-relative to the buffer so no
// fix-ups are required"). The buffer is used directly (not copied); the
// caller must not mutate it concurrently with the returned Container.
func Open(buf []byte, opts ...Option) (*Container, error) {
	if len(buf) < cellRegionStart {
		return nil, ErrBufferTooSmall
	}
	c := &Container{
		buf:   buf,
		sizes: make(map[uint32]int),
		dedup: make(map[string]uint32),
		log:   discardLogger(),
	}
	if c.trie0() != cellRegionStart {
		return nil, ErrCorruptBuffer
	}
	t1, c0, c1 := c.trie1(), c.char0(), c.char1()
	b := uint32(len(buf))
	if !(cellRegionStart <= t1 && t1 <= c0 && c0 <= c1 && c1 <= b) {
		return nil, ErrCorruptBuffer
	}
	c.initialChar0 = c0

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Bytes returns the container's backing buffer, the serialised form
// described in spec.md §6. The slice aliases the container's storage;
// callers that want an independent copy must clone it.
func (c *Container) Bytes() []byte { return c.buf }

// CreateTrie allocates a new, empty root cell and returns a reference to
// it. Multiple roots may coexist in one container.
func (c *Container) CreateTrie() TrieRef {
	root := c.allocCell(0, 0, 0)
	c.sizes[root] = 0
	return TrieRef{root: root}
}

// Root returns a TrieRef for the first root cell allocated in this
// container. Callers that keep exactly one trie per buffer (the common
// case for a serialised, reopened container, where the in-memory
// bookkeeping that maps roots to callers has been discarded) can use
// this instead of threading the original TrieRef through storage.
func (c *Container) Root() TrieRef {
	return TrieRef{root: byteToWord(cellRegionStart)}
}

// SetNeedle copies bytes into the needle scratch area ahead of Add or
// Matches, truncating to maxNeedleLen (spec.md §7: silently truncated,
// never an error).
func (c *Container) SetNeedle(hostname []byte) {
	n := len(hostname)
	if n > maxNeedleLen {
		n = maxNeedleLen
	}
	copy(c.buf[needleOffset:needleOffset+n], hostname[:n])
	c.buf[needleLenOffset] = byte(n)
}

// Reset clears all tries without releasing the buffer (spec.md §6).
func (c *Container) Reset() {
	c.setTrie1(cellRegionStart)
	c.setChar0(c.initialChar0)
	c.setChar1(c.initialChar0)
	c.sizes = make(map[uint32]int)
	c.dedup = make(map[string]uint32)
}

// Stats summarises the header fields of the buffer, used by the
// hntriectl stats command.
type Stats struct {
	BufferLength     uint32
	CellRegionStart  uint32
	CellRegionEnd    uint32
	SegmentPoolEnd   uint32
	CellBytesUsed    uint32
	SegmentBytesUsed uint32
	FreeBetween      uint32 // CHAR0 - TRIE1
	FreeTail         uint32 // B - CHAR1
}

func (c *Container) Stats() Stats {
	t0, t1, c0, c1 := c.trie0(), c.trie1(), c.char0(), c.char1()
	b := uint32(len(c.buf))
	return Stats{
		BufferLength:     b,
		CellRegionStart:  t0,
		CellRegionEnd:    t1,
		SegmentPoolEnd:   c1,
		CellBytesUsed:    t1 - t0,
		SegmentBytesUsed: c1 - c0,
		FreeBetween:      c0 - t1,
		FreeTail:         b - c1,
	}
}

func (c *Container) String() string {
	s := c.Stats()
	return fmt.Sprintf("trie.Container{len=%d cells=%d segs=%d}", s.BufferLength, s.CellBytesUsed, s.SegmentBytesUsed)
}
