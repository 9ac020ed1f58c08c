package cedar

// collectLabels returns p's current children labels in ascending order (or,
// under NewUnordered, most recently linked first after a pinned label 0), by
// walking the sibling chain headed
// at ninfo[p].child. It returns nil if p has no children yet.
func (c *Cedar) collectLabels(p int32) []byte {
	if c.array[p].base == noBase {
		return nil
	}
	base := c.array[p].base
	labels := make([]byte, 0, 4)
	lbl := c.ninfos[p].child
	for {
		labels = append(labels, lbl)
		cell := next(base, lbl)
		nxt := c.ninfos[cell].sibling
		if nxt == 0 {
			return labels
		}
		lbl = nxt
	}
}

// resolve is called when inserting label at state s finds that
// t = next(base[s], label) is occupied by some other parent. It relocates
// whichever of s or that other parent has fewer children to a fresh base,
// freeing up room for the pending insertion, and returns control to the
// caller (follow), which retries the transition. The other parent is never
// chosen when s is one of its children (moving it would move s itself) or
// when t is the root cell (which no relocation frees); s is moved instead.
func (c *Cedar) resolve(s, t int32, label byte) error {
	other := c.array[t].check

	sLabels := c.collectLabels(s)
	nS := len(sLabels) + 1 // +1 for the pending child not yet linked in
	otherLabels := c.collectLabels(other)
	nOther := len(otherLabels)

	var victim int32
	var findLabels []byte
	if nOther <= nS && t != 0 && c.array[s].check != other {
		victim = other
		findLabels = otherLabels
	} else {
		victim = s
		findLabels = append(append([]byte{}, sLabels...), label)
	}

	oldBase := c.array[victim].base
	newBase, err := c.findBase(findLabels)
	if err != nil {
		return err
	}

	for _, l := range c.collectLabels(victim) {
		old := next(oldBase, l)
		nw := next(newBase, l)
		c.relocateChild(victim, old, nw)
	}
	c.array[victim].base = newBase
	return nil
}

// relocateChild moves the single child cell old (at label position, reached
// via base(victim)) to the already-reserved free cell nw, retargeting any
// grandchildren's check pointers before freeing old — the ordering the
// correctness of resolve hinges on.
func (c *Cedar) relocateChild(victim, old, nw int32) {
	oldBase := c.array[old].base
	oldInfo := c.ninfos[old]

	if oldBase != noBase && oldBase >= 0 {
		lbl := oldInfo.child
		for {
			g := next(oldBase, lbl)
			c.array[g].check = nw
			sib := c.ninfos[g].sibling
			if sib == 0 {
				break
			}
			lbl = sib
		}
	}

	c.popENode(nw, victim)
	c.array[nw].base = oldBase
	c.ninfos[nw] = oldInfo

	c.pushENode(old)
}
