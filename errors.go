package cedar

import "errors"

var (
	// ErrCapacityExceeded is returned when the array cannot grow any
	// further. No key is added or changed, but cells that the failing
	// Update already allocated for earlier bytes of its key stay allocated.
	ErrCapacityExceeded = errors.New("cedar: capacity exceeded")

	// ErrInvalidValue is returned by Update when value cannot be
	// represented using this trie's leaf encoding (see DESIGN.md).
	ErrInvalidValue = errors.New("cedar: invalid value")

	// ErrInvalidKey is returned by Suffix when leafID is out of range or
	// does not name an occupied leaf cell, so it cannot be walked back to
	// the root. ExactMatchSearch, CommonPrefixSearch and Erase report
	// absence via a bool instead, matching the Go map idiom; Suffix needs a
	// real error because an out-of-range id is a caller bug, not a normal
	// "not found" outcome.
	ErrInvalidKey = errors.New("cedar: invalid key")
)
