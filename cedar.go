package cedar

// Cedar is a double-array trie mapping byte-string keys to int32 values. The
// zero value is not ready to use; construct one with New.
//
// A Cedar instance owns its arrays exclusively: there is no global
// allocator and no shared state between instances.
type Cedar struct {
	array  []node
	ninfos []ninfo
	blocks []block

	headFull, headClosed, headOpen int32

	// ordered controls how new siblings are linked into a parent's child
	// chain: ascending-by-label (the default, needed for Predict and
	// Begin/Next to enumerate in label order) or prepend.
	ordered bool

	// maxTrial is how many failed findBase probes a block accumulates
	// before its trial counter is reset. Failed probes do not move a block
	// between rings; ring membership follows the block's free-cell count.
	maxTrial int32

	capacity int32
	numKeys  int
}

// New returns an empty trie. Children are enumerated in ascending label
// order, matching the default of the reference cedar implementation.
func New() *Cedar {
	return newCedar(true)
}

// NewUnordered returns an empty trie that links new siblings at the head of
// a parent's child chain instead of in ascending order. This trades
// deterministic enumeration order (CommonPrefixSearch still works;
// Predict's output order is no longer label-ascending) for faster bulk
// insertion of pre-sorted keys. See DESIGN.md §9.1 for the one behavioral
// wrinkle this mode has around the terminator label.
func NewUnordered() *Cedar {
	return newCedar(false)
}

func newCedar(ordered bool) *Cedar {
	c := &Cedar{
		array:    make([]node, blockCells),
		ninfos:   make([]ninfo, blockCells),
		blocks:   make([]block, 1),
		ordered:  ordered,
		maxTrial: 1,
		capacity: blockCells,
	}

	// Cell 0 is the permanently-occupied root (invariant I6): check = 0
	// (it is its own owner, it has no parent) and base starts at noBase
	// since it has no children yet.
	c.array[0] = node{base: noBase, check: 0}

	// The rest of block 0 forms one circular free chain, 1 -> 2 -> ... ->
	// 255 -> 1. Cell 0 is excluded: it is never on the free list.
	for i := int32(1); i < blockCells; i++ {
		c.array[i] = node{base: -(i - 1), check: -(i + 1)}
	}
	c.array[1].base = -(blockCells - 1)
	c.array[blockCells-1].check = -1

	c.blocks[0] = block{prev: 0, next: 0, num: blockCells - 1, reject: blockCells + 1, ehead: 1}
	c.headOpen = 0
	c.headClosed = -1
	c.headFull = -1

	return c
}

// NumKeys returns the number of keys currently stored.
func (c *Cedar) NumKeys() int { return c.numKeys }

// Size returns the number of allocated cells in the array (a multiple of
// 256).
func (c *Cedar) Size() int { return int(c.capacity) }

// Capacity is an alias for Size, kept for parity with the external
// interface table: this trie grows one 256-cell block at a time and has
// no separate notion of reserved-but-unused capacity.
func (c *Cedar) Capacity() int { return int(c.capacity) }

// addBlock appends one fresh 256-cell block, fully free, and returns its
// index. It is the only place the array grows.
func (c *Cedar) addBlock() (int32, error) {
	if int64(c.capacity)+blockCells > int64(1)<<31 {
		return 0, ErrCapacityExceeded
	}
	base := c.capacity
	bi := int32(len(c.blocks))

	c.array = append(c.array, make([]node, blockCells)...)
	c.ninfos = append(c.ninfos, make([]ninfo, blockCells)...)

	for i := int32(0); i < blockCells; i++ {
		cell := base + i
		c.array[cell] = node{base: -(cell - 1), check: -(cell + 1)}
	}
	c.array[base].base = -(base + blockCells - 1)
	c.array[base+blockCells-1].check = -base

	c.blocks = append(c.blocks, block{num: blockCells, reject: blockCells + 1, ehead: base})
	c.capacity += blockCells

	c.pushBlock(bi, ringOpen)
	return bi, nil
}
