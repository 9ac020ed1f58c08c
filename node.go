package cedar

// noBase marks a state that has no children yet: its base has never been
// assigned by findBase. See DESIGN.md "leaf value encoding" for why this
// sentinel, rather than ninfo.child == 0, is what addChild and child key
// off of.
const noBase int32 = -1 << 31

// terminator is the reserved label that marks the end of a key. A stored
// key's value lives on the cell reached by following the terminator
// transition from the key's final state.
const terminator byte = 0x00

// maxValue is the largest value this trie can store. math.MaxInt32 is
// excluded because -(math.MaxInt32+1) equals noBase, which would make a
// freshly-stored value indistinguishable from "no children yet".
const maxValue int32 = 1<<31 - 2 // math.MaxInt32 - 1

// node is one cell of the double array. When occupied (check >= 0), base is
// either the XOR basis used to compute this state's children, noBase if
// this state has no children yet, or -(value+1) if this cell is itself a
// leaf holding a stored value. When free (check < 0), base and check are
// reused as a sign-flipped doubly-linked free-chain: -base is the previous
// free cell in the block, -check is the next one.
type node struct {
	base  int32
	check int32
}

func (n node) isFree() bool { return n.check < 0 }

func (n node) isLeaf() bool { return n.check >= 0 && n.base < 0 && n.base != noBase }

func (n node) value() int32 { return -(n.base + 1) }

func leafBase(value int32) int32 { return -(value + 1) }

func (n node) prevFree() int32 { return -n.base }

func (n node) nextFree() int32 { return -n.check }

// next computes the reduced (XOR) transition target from a state whose base
// is b, on byte label.
func next(b int32, label byte) int32 {
	return b ^ int32(label)
}

// blockOf returns the 256-cell block index that owns cell i, and i's offset
// within the block. XOR against a byte label never changes these high bits,
// which is the property findBase relies on to stay within one block.
func blockOf(i int32) (block int32, offset int32) {
	return i >> 8, i & 0xff
}

// sameBlock reports whether XOR-ing base with every label in labels stays
// within a single 256-cell block, i.e. base is block-aligned the way
// findBase always returns it. Used only by invariant checks/tests.
func sameBlock(base int32, labels []byte) bool {
	blk, _ := blockOf(base)
	for _, l := range labels {
		b, _ := blockOf(next(base, l))
		if b != blk {
			return false
		}
	}
	return true
}
