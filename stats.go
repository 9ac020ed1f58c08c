package cedar

import (
	"fmt"
	"io"
)

// Stats summarizes the array/block state, the double-array analogue of the
// per-node-type tallies a radix tree's diagnostics would report: there are
// no node types here, but there are block ring classes, which play the same
// structural role.
type Stats struct {
	Cells       int // total allocated cells, array length
	Blocks      int // number of 256-cell blocks
	FullBlocks  int
	ClosedBlocks int
	OpenBlocks  int
	FreeCells   int
	Keys        int
}

// Stats computes a snapshot of the current array/block occupancy.
func (c *Cedar) Stats() Stats {
	s := Stats{
		Cells:  len(c.array),
		Blocks: len(c.blocks),
		Keys:   c.numKeys,
	}
	for _, b := range c.blocks {
		s.FreeCells += int(b.num)
		switch classOf(b.num) {
		case ringFull:
			s.FullBlocks++
		case ringClosed:
			s.ClosedBlocks++
		case ringOpen:
			s.OpenBlocks++
		}
	}
	return s
}

// PrettyPrint writes a human-readable dump of the array/block state to w,
// one line of summary statistics followed by the occupied cells in id
// order. It is meant for test failures and interactive debugging, not for a
// stable serialization format (the spec's Non-goals exclude persistence).
func (c *Cedar) PrettyPrint(w io.Writer) error {
	s := c.Stats()
	if _, err := fmt.Fprintf(w, "cedar: %d cells, %d blocks (full=%d closed=%d open=%d), %d free, %d keys\n",
		s.Cells, s.Blocks, s.FullBlocks, s.ClosedBlocks, s.OpenBlocks, s.FreeCells, s.Keys); err != nil {
		return err
	}
	for i, n := range c.array {
		if n.isFree() {
			continue
		}
		if n.isLeaf() {
			if _, err := fmt.Fprintf(w, "  [%d] leaf value=%d parent=%d\n", i, n.value(), n.check); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  [%d] base=%d check=%d child=%d\n", i, n.base, n.check, c.ninfos[i].child); err != nil {
			return err
		}
	}
	return nil
}
