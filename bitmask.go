package swisstable

import "math/bits"

// Bitmask is a bitset of SIMD lanes, one bit per control byte in a group.
// It is always carried in a uint64 regardless of the active [Mode]'s lane
// count, since the widest supported group (64 lanes) fits exactly; lanes
// beyond the active group's width are simply never set.
//
// The zero Bitmask has no lanes set.
type Bitmask uint64

// IsValid reports whether any lane is set.
func (m Bitmask) IsValid() bool {
	return m != 0
}

// TrailingZeros returns the index of the lowest set lane. It is undefined
// (returns 64) when m is zero.
func (m Bitmask) TrailingZeros() int {
	return bits.TrailingZeros64(uint64(m))
}

// LeadingZeros returns the number of unset lanes above the highest set lane.
// It is undefined (returns 64) when m is zero.
func (m Bitmask) LeadingZeros() int {
	return bits.LeadingZeros64(uint64(m))
}

// Next returns the lowest set lane's index and clears it, reporting false
// when the mask was already empty. Iteration via repeated Next calls is
// unordered with respect to SIMD lane semantics but always yields the
// lowest remaining bit first.
func (m *Bitmask) Next() (int, bool) {
	if *m == 0 {
		return 0, false
	}
	i := bits.TrailingZeros64(uint64(*m))
	*m &= *m - 1
	return i, true
}

// Count returns the number of set lanes.
func (m Bitmask) Count() int {
	return bits.OnesCount64(uint64(m))
}
