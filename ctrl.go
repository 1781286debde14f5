package swisstable

// ctrl is the per-slot metadata byte: one of three logical states encoded
// in the high bit plus payload.
//
//	Empty     1111_1111   never occupied in this generation
//	Deleted   1000_0000   tombstone
//	Full(t)   0ttt_tttt   occupied; t is the low 7 bits of the hash
type ctrl byte

const (
	ctrlEmpty   ctrl = 0b1111_1111
	ctrlDeleted ctrl = 0b1000_0000
)

// tagMask isolates the 7-bit tag payload of a Full byte.
const tagMask = 0b0111_1111

// fullCtrl builds a Full control byte carrying the low 7 bits of tag.
func fullCtrl(tag byte) ctrl {
	return ctrl(tag & tagMask)
}

// isFull reports whether c is occupied. The high bit is clear iff c is Full;
// Empty and Deleted both have it set.
func (c ctrl) isFull() bool {
	return c&0x80 == 0
}

func (c ctrl) isEmpty() bool {
	return c == ctrlEmpty
}

func (c ctrl) isDeleted() bool {
	return c == ctrlDeleted
}

// isEmptyOrDeleted reports whether c is a special (non-Full) byte.
func (c ctrl) isEmptyOrDeleted() bool {
	return c&0x80 != 0
}

// tag returns the 7-bit tag of a Full byte; meaningless otherwise.
func (c ctrl) tag() byte {
	return byte(c) & tagMask
}

// rehashPrepare returns the byte c becomes during an in-place rehash: Full
// becomes Deleted (so the entry is reprocessed), Empty and Deleted both
// become Empty (resetting the generation).
func (c ctrl) rehashPrepare() ctrl {
	if c.isFull() {
		return ctrlDeleted
	}
	return ctrlEmpty
}
