// Package cedar implements an efficiently-updatable double-array trie, a Go
// port of the data structure described by Naoki Yata ("cedar") and built on
// the base/check scheme of Jun-ichi Aoe. It maps arbitrary byte strings to
// signed 32-bit values and supports insertion, deletion, exact-match lookup,
// common-prefix search and predictive (prefix-expansion) search while
// keeping the array representation compact across updates.
//
// The trie is not safe for concurrent use. Callers that need concurrent
// reads and writes must serialize access themselves; concurrent read-only
// access while no writer is active is safe.
package cedar
