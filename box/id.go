package box

import (
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/inkstage/inkstage/layoutexpr"
)

// ID is a box's dense identity, issued from one process-wide incrementing
// counter rather than a pointer address (the original uses Python's
// `id(self)`; Go gives every box a stable value the moment it's built).
type ID uint32

var nextID atomic.Uint32

// newID issues ids from 3 upward: 0, 1 and 2 are the reserved node ids
// of raw's synthetic debug-steps wrapper, frame and label boxes.
func newID() ID {
	return ID(nextID.Add(1) + 2)
}

// NodeID converts a box identity to the layout-expression node identity
// its accessor methods (X/Y/W/H/...) bind expressions to.
func (id ID) NodeID() layoutexpr.NodeID {
	return layoutexpr.NodeID(id)
}

// nameIntern deduplicates box names into dense ids via xxhash, so that
// name-keyed lookups (e.g. finding a child by name for debugging or
// postprocess hooks) hash a fixed-width key instead of rehashing the
// original string on every comparison.
type nameIntern struct {
	byHash map[uint64]string
}

func newNameIntern() *nameIntern {
	return &nameIntern{byHash: make(map[uint64]string)}
}

// intern records name and returns its xxhash-derived dense key.
func (n *nameIntern) intern(name string) uint64 {
	h := xxhash.Sum64String(name)
	if existing, ok := n.byHash[h]; ok && existing != name {
		// Hash collision between distinct names: the first name keeps the
		// entry and both names get the same key, so the interned key is a
		// cache-friendliness optimization, not an identity source.
		return h
	}
	n.byHash[h] = name
	return h
}
