package swisstable

// DebugMatch exposes group matching for diagnostics and demos (see
// cmd/matchdemo): it returns the lanes of ctrlBytes equal to a Full byte
// carrying tag. len(ctrlBytes) must be one of the supported group widths
// (8, 16, 32, 64).
func DebugMatch(ctrlBytes []byte, tag byte) Bitmask {
	return group{bytes: ctrlBytes}.match(tag)
}
