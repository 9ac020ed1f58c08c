package cedar

// removeSibling unlinks label from parent's child chain (base is
// array[parent].base, read before the cell itself is freed). It reports
// whether parent now has zero children: because label 0, whenever present,
// is always the chain head (DESIGN.md §9.1), the new head being 0 after
// removing the old head is never ambiguous with "the remaining child
// happens to be labeled 0".
func (c *Cedar) removeSibling(parent, base int32, label byte) (nowEmpty bool) {
	pn := &c.ninfos[parent]
	if pn.child == label {
		cell := next(base, label)
		newHead := c.ninfos[cell].sibling
		pn.child = newHead
		return newHead == 0
	}
	cur := pn.child
	curCell := next(base, cur)
	for {
		nxt := c.ninfos[curCell].sibling
		if nxt == label {
			afterCell := next(base, nxt)
			c.ninfos[curCell].sibling = c.ninfos[afterCell].sibling
			return false
		}
		cur = nxt
		curCell = next(base, cur)
	}
}

// child follows a single labeled transition from s without creating
// anything, returning ok == false if no such transition exists.
func (c *Cedar) child(s int32, label byte) (int32, bool) {
	base := c.array[s].base
	if base < 0 {
		return 0, false
	}
	t := next(base, label)
	if t == 0 || c.array[t].check != s {
		return 0, false
	}
	return t, true
}

// Erase removes key if present. It reports the value that was removed and
// whether the key existed; erasing an absent key is a no-op that reports
// existed == false, not an error.
//
// Erased cells rejoin the free list for reuse by future Update calls; they
// are never relocated (§4.6), so Erase never calls findBase or resolve.
func (c *Cedar) Erase(key []byte) (removed int32, existed bool, err error) {
	s := int32(0)
	for _, b := range key {
		t, ok := c.child(s, b)
		if !ok {
			return 0, false, nil
		}
		s = t
	}
	leafCell, ok := c.child(s, terminator)
	if !ok {
		return 0, false, nil
	}
	removed = c.array[leafCell].value()

	cur := leafCell
	for {
		parent := c.array[cur].check
		base := c.array[parent].base
		label := byte(cur ^ base)

		nowEmpty := c.removeSibling(parent, base, label)
		c.pushENode(cur)
		if nowEmpty {
			c.array[parent].base = noBase
		}
		if !nowEmpty || parent == 0 {
			break
		}
		cur = parent
	}

	c.numKeys--
	return removed, true, nil
}
