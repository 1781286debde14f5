package swisstable

// group is a single window of groupWidth consecutive control bytes, loaded
// from ctrl[pos : pos+width]. It never copies: bytes aliases the backing
// ctrl slice, so writes through setCtrl are visible to any group still
// holding a reference.
type group struct {
	bytes []byte
}

// loadGroup reads the group at byte offset pos. Callers must ensure
// pos+width <= len(ctrl), which the mirror always guarantees for pos in
// [0, numBuckets).
func loadGroup(ctrlBytes []byte, pos, width int) group {
	return group{bytes: ctrlBytes[pos : pos+width]}
}

// match returns a mask with a bit set for each lane whose control byte
// equals a Full byte carrying tag. No special (Empty/Deleted) byte can ever
// equal a Full byte, since the high bit differs.
//
// This is a portable, straightforward byte-wise scan, applied uniformly at
// every Mode. See DESIGN.md for why this module does not ship hand-written
// vector assembly for the wider modes.
func (g group) match(tag byte) Bitmask {
	want := fullCtrl(tag)
	var m Bitmask
	for i, b := range g.bytes {
		if ctrl(b) == want {
			m |= 1 << uint(i)
		}
	}
	return m
}

// matchEmpty returns a mask of lanes equal to the Empty sentinel.
func (g group) matchEmpty() Bitmask {
	var m Bitmask
	for i, b := range g.bytes {
		if ctrl(b).isEmpty() {
			m |= 1 << uint(i)
		}
	}
	return m
}

// matchEmptyOrDeleted returns a mask of lanes with the high bit set: both
// special states satisfy byte&0x80 != 0.
func (g group) matchEmptyOrDeleted() Bitmask {
	var m Bitmask
	for i, b := range g.bytes {
		if ctrl(b).isEmptyOrDeleted() {
			m |= 1 << uint(i)
		}
	}
	return m
}

// rehashPrepare overwrites the group in place with rehashPrepare applied to
// every lane: Full becomes Deleted, Empty/Deleted become Empty. Used by
// (*table[T]).rehashInPlace to reset the generation while remembering which
// slots hold live data.
func (g group) rehashPrepare() {
	for i, b := range g.bytes {
		g.bytes[i] = byte(ctrl(b).rehashPrepare())
	}
}
