package dawg

import (
	"fmt"
	"math/bits"
)

// hashTableSize is the fixed interner capacity, a prime chosen roughly 20%
// larger than the largest anticipated unique-state count.
const hashTableSize = 240007

// fingerprint hashes an edge list with an order-sensitive rotate-XOR
// recurrence, reduced to a table slot.
func fingerprint(edges []Node) uint32 {
	var h uint32
	for _, n := range edges {
		h = uint32(n) ^ bits.RotateLeft32(h, 1)
	}
	return h % hashTableSize
}

// intern finds or appends the edge list in the arena and returns its
// 1-based offset. Collisions are resolved by double hashing: the probe
// increment starts at 9 and advances by 8 after each miss.
//
// Slot 0 of the arena belongs to the root group and is never interned, so
// a zero slot value is unambiguously empty. Equality over the leading
// len(edges) entries suffices: the end-of-node flag is part of the node
// value, so no two interned groups can differ only in trailing edges.
func (b *Builder) intern(edges []Node) (uint32, error) {
	first := fingerprint(edges)
	pos := first
	step := uint32(9)
	for {
		at := b.slots[pos]
		if at == 0 {
			at = uint32(len(b.arena))
			if int(at)+len(edges) > MaxEdges {
				return 0, fmt.Errorf("%w: graph exceeds %d edges", ErrTooManyEdges, MaxEdges)
			}
			b.arena = append(b.arena, edges...)
			b.slots[pos] = at
			return at + 1, nil
		}
		if b.sameGroup(at, edges) {
			return at + 1, nil
		}
		pos = (pos + step) % hashTableSize
		step = (step + 8) % hashTableSize
		if pos == first {
			return 0, ErrHashTableFull
		}
	}
}

func (b *Builder) sameGroup(at uint32, edges []Node) bool {
	if int(at)+len(edges) > len(b.arena) {
		return false
	}
	for i, n := range edges {
		if b.arena[int(at)+i] != n {
			return false
		}
	}
	return true
}
