package swisstable

// Mode is a compile-time-selected-in-spirit SIMD width: the number of 8-bit
// control-byte lanes examined together as one [group]. Go has no portable
// way to pin a generic instantiation to a hardware vector width, so Mode is
// instead a runtime value chosen once per set or map (see DetectMode and
// WithMode) in place of a compile-time constant.
type Mode int

const (
	// ModeUnsupported is the scalar fallback: 8 lanes, no hardware
	// acceleration assumed.
	ModeUnsupported Mode = 8
	// ModeSSE matches an SSE4.2 128-bit register: 16 lanes.
	ModeSSE Mode = 16
	// ModeAVX2 matches an AVX2 256-bit register: 32 lanes.
	ModeAVX2 Mode = 32
	// ModeAVX512 matches an AVX-512 512-bit register: 64 lanes.
	ModeAVX512 Mode = 64
)

// maxGroupWidth bounds every group-sized buffer this package allocates,
// including the shared empty-control static array.
const maxGroupWidth = int(ModeAVX512)

// Width returns the lane count (and mask-integer width) for m.
func (m Mode) Width() int {
	switch m {
	case ModeSSE, ModeAVX2, ModeAVX512:
		return int(m)
	default:
		return int(ModeUnsupported)
	}
}

// String renders m for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeSSE:
		return "sse"
	case ModeAVX2:
		return "avx2"
	case ModeAVX512:
		return "avx512"
	default:
		return "unsupported"
	}
}

// broadcast returns a group-sized slice, every byte equal to b, for use by
// tests and by the Group contract's "broadcast(byte)" operation.
func (m Mode) broadcast(b byte) []byte {
	w := m.Width()
	buf := make([]byte, w)
	for i := range buf {
		buf[i] = b
	}
	return buf
}
