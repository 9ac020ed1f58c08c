package cedar

// head returns a pointer to the ring head field for class, so pushBlock and
// popBlock can share one implementation across all three rings.
func (c *Cedar) head(class ringClass) *int32 {
	switch class {
	case ringFull:
		return &c.headFull
	case ringClosed:
		return &c.headClosed
	default:
		return &c.headOpen
	}
}

// pushBlock links block bi at the head of ring class.
func (c *Cedar) pushBlock(bi int32, class ringClass) {
	h := c.head(class)
	if *h < 0 {
		c.blocks[bi].prev = bi
		c.blocks[bi].next = bi
		*h = bi
		return
	}
	head := *h
	tail := c.blocks[head].prev
	c.blocks[bi].prev = tail
	c.blocks[bi].next = head
	c.blocks[tail].next = bi
	c.blocks[head].prev = bi
	*h = bi
}

// popBlock unlinks block bi from ring class, which must be the ring it is
// currently threaded into.
func (c *Cedar) popBlock(bi int32, class ringClass) {
	h := c.head(class)
	if c.blocks[bi].next == bi {
		*h = -1
		return
	}
	p, n := c.blocks[bi].prev, c.blocks[bi].next
	c.blocks[p].next = n
	c.blocks[n].prev = p
	if *h == bi {
		*h = n
	}
}

// transferBlock moves bi from one ring to another, a no-op if the classes
// are the same (invariant I4: every allocated block is in exactly one
// ring).
func (c *Cedar) transferBlock(bi int32, from, to ringClass) {
	if from == to {
		return
	}
	c.popBlock(bi, from)
	c.pushBlock(bi, to)
}

// popENode claims free cell e as a new occupied child of parent,
// unlinking it from its block's free chain and leaving it ready for
// the caller to set base on (either noBase, an XOR basis, or a leaf
// encoding).
func (c *Cedar) popENode(e int32, parent int32) {
	bi, _ := blockOf(e)
	blk := &c.blocks[bi]
	oldClass := classOf(blk.num)

	n := c.array[e]
	prev, nxt := n.prevFree(), n.nextFree()
	singleton := prev == e && nxt == e
	if blk.ehead == e {
		if singleton {
			blk.ehead = 0
		} else {
			blk.ehead = nxt
		}
	}
	if !singleton {
		c.array[prev].check = -nxt
		c.array[nxt].base = -prev
	}

	blk.num--
	if newClass := classOf(blk.num); newClass != oldClass {
		c.transferBlock(bi, oldClass, newClass)
	}

	c.array[e] = node{base: noBase, check: parent}
	c.ninfos[e] = ninfo{}
}

// pushENode returns cell e to its block's free chain, keeping the chain
// sorted by ascending cell index (deterministic findBase probing order).
func (c *Cedar) pushENode(e int32) {
	bi, _ := blockOf(e)
	blk := &c.blocks[bi]
	oldClass := classOf(blk.num)

	if blk.num == 0 {
		blk.ehead = e
		c.array[e] = node{base: -e, check: -e}
	} else {
		head := blk.ehead
		if e < head {
			tail := c.array[head].prevFree()
			c.array[e] = node{base: -tail, check: -head}
			c.array[tail].check = -e
			c.array[head].base = -e
			blk.ehead = e
		} else {
			cur := head
			for {
				nxt := c.array[cur].nextFree()
				if nxt == head || nxt > e {
					c.array[e] = node{base: -cur, check: -nxt}
					c.array[cur].check = -e
					c.array[nxt].base = -e
					break
				}
				cur = nxt
			}
		}
	}

	blk.num++
	if newClass := classOf(blk.num); newClass != oldClass {
		c.transferBlock(bi, oldClass, newClass)
	}
	c.ninfos[e] = ninfo{}
}
