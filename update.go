package cedar

// addFirstChild records label as the one and only child of a state that had
// none before (array[parent].base == noBase, about to be set by the
// caller). No chain walk is needed: there is nothing to insert relative to.
func (c *Cedar) addFirstChild(parent int32, label byte) {
	c.ninfos[parent].child = label
}

// addSibling links a new child under label into a parent that already has
// at least one child. In ordered mode the chain stays sorted ascending by
// label, which is what lets Predict and the Begin/Next cursor walk it in
// label order for free. In unordered (prepend) mode, label 0 — if already
// present — is kept pinned at the head rather than demoted by a later
// prepend, which is what keeps "sibling == 0" unambiguous with "end of
// chain" (DESIGN.md §9.1).
func (c *Cedar) addSibling(parent, base int32, label byte) {
	head := c.ninfos[parent].child

	if !c.ordered {
		if head == 0 {
			termCell := next(base, 0)
			rest := c.ninfos[termCell].sibling
			newCell := next(base, label)
			c.ninfos[newCell].sibling = rest
			c.ninfos[termCell].sibling = label
			return
		}
		newCell := next(base, label)
		c.ninfos[newCell].sibling = head
		c.ninfos[parent].child = label
		return
	}

	if label < head {
		newCell := next(base, label)
		c.ninfos[newCell].sibling = head
		c.ninfos[parent].child = label
		return
	}
	cur := head
	curCell := next(base, cur)
	for {
		nxt := c.ninfos[curCell].sibling
		if nxt == 0 || label < nxt {
			newCell := next(base, label)
			c.ninfos[newCell].sibling = nxt
			c.ninfos[curCell].sibling = label
			return
		}
		cur = nxt
		curCell = next(base, cur)
	}
}

// addChild creates label as a fresh child of parent at cell target,
// threading it into the sibling chain, and returns the newly occupied cell.
// target must already be known free and the slot findBase reserved for it.
func (c *Cedar) addChild(parent, target int32, label byte) int32 {
	hadChildren := c.array[parent].base != noBase
	c.popENode(target, parent)
	if hadChildren {
		c.addSibling(parent, c.array[parent].base, label)
	} else {
		c.addFirstChild(parent, label)
	}
	return target
}

// follow advances one byte of a key from state s, creating whatever cells
// are needed along the way, and returns the resulting state.
func (c *Cedar) follow(s int32, label byte) (int32, error) {
	for {
		base := c.array[s].base
		if base == noBase {
			nb, err := c.findBase([]byte{label})
			if err != nil {
				return 0, err
			}
			t := next(nb, label)
			c.addChild(s, t, label)
			c.array[s].base = nb
			return t, nil
		}

		t := next(base, label)
		if c.array[t].isFree() {
			return c.addChild(s, t, label), nil
		}
		if c.array[t].check == s && t != 0 {
			return t, nil
		}
		if err := c.resolve(s, t, label); err != nil {
			return 0, err
		}
		// retry: base[s] (and possibly the target cell) may have
		// changed underneath us.
	}
}

// Update inserts key with value, or overwrites it if already present. It
// returns the previous value and whether the key already existed.
func (c *Cedar) Update(key []byte, value int32) (previous int32, existed bool, err error) {
	if value < 0 || value > maxValue {
		return 0, false, ErrInvalidValue
	}

	s := int32(0)
	for _, b := range key {
		s, err = c.follow(s, b)
		if err != nil {
			return 0, false, err
		}
	}
	s, err = c.follow(s, terminator)
	if err != nil {
		return 0, false, err
	}

	leaf := &c.array[s]
	if leaf.isLeaf() {
		previous = leaf.value()
		existed = true
	} else {
		c.numKeys++
	}
	leaf.base = leafBase(value)
	return previous, existed, nil
}
