package cedar

// PredictMatch is one hit from Predict.
type PredictMatch struct {
	Value  int32
	Length int // bytes past the searched prefix
	LeafID int32
}

// Predict enumerates every stored key that begins with prefix, as a
// depth-first walk of the subtree rooted at prefix's state, guided by the
// sibling chains so no full 256-label scan is needed at any node. Results
// come back in ascending label order (the order Predict's traversal visits
// them in, under the default ordered trie). limit caps the number of
// results; a limit <= 0 means unbounded. An absent prefix yields an empty,
// non-error result.
func (c *Cedar) Predict(prefix []byte, limit int) ([]PredictMatch, error) {
	s := int32(0)
	for _, b := range prefix {
		t, ok := c.child(s, b)
		if !ok {
			return nil, nil
		}
		s = t
	}
	var out []PredictMatch
	c.walkSubtree(s, 0, &out, limit)
	return out, nil
}

func (c *Cedar) walkSubtree(s int32, depth int, out *[]PredictMatch, limit int) {
	if leaf, ok := c.child(s, terminator); ok {
		*out = append(*out, PredictMatch{Value: c.array[leaf].value(), Length: depth, LeafID: leaf})
	}
	base := c.array[s].base
	if base == noBase {
		return
	}
	lbl := c.ninfos[s].child
	for {
		if limit > 0 && len(*out) >= limit {
			return
		}
		cell := next(base, lbl)
		if lbl != terminator {
			c.walkSubtree(cell, depth+1, out, limit)
		}
		nxt := c.ninfos[cell].sibling
		if nxt == 0 {
			return
		}
		lbl = nxt
	}
}

// Suffix reconstructs the last suffixLength bytes of the key that ends at
// leafID, a cell id previously returned by Predict or a cursor step; pass
// the Length a PredictMatch reported to get the bytes past the searched
// prefix. If suffixLength exceeds the key's length, the whole key is
// returned. It returns ErrInvalidKey if leafID is out of range or is not an occupied
// leaf cell, since such an id cannot have come from a real Predict/cursor
// result and walking it back to the root would read garbage.
func (c *Cedar) Suffix(leafID int32, suffixLength int) ([]byte, error) {
	if leafID < 0 || int(leafID) >= len(c.array) || !c.array[leafID].isLeaf() {
		return nil, ErrInvalidKey
	}

	// Start from the leaf's parent: the terminator label is not part of the key.
	out := make([]byte, suffixLength)
	i := suffixLength
	for cur := c.array[leafID].check; i > 0 && cur != 0; {
		parent := c.array[cur].check
		i--
		out[i] = byte(cur ^ c.array[parent].base)
		cur = parent
	}
	return out[i:], nil
}
