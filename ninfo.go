package cedar

// ninfo is the per-cell sibling/child bookkeeping that lets a parent's
// children be enumerated without scanning all 256 possible labels.
//
// child is the label at the head of the parent's chain, or 0 if it has
// none. sibling, stored on the *child* cell (not the parent), is the next
// sibling label sharing the same parent, or 0 to mark the end of the chain.
// In the default ordered mode the chain ascends, so child is the smallest
// label and sibling the next greater one; under NewUnordered new labels are
// prepended (after a pinned label 0) instead. Because 0 is both "no children" and a legal label (the
// terminator), the code that maintains these chains pins label 0 to the
// head of the chain whenever it is present — see DESIGN.md §9.1 — so that a
// sibling value of 0 is never ambiguous with an empty chain.
type ninfo struct {
	sibling byte
	child   byte
}
