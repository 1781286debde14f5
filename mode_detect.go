package swisstable

import "golang.org/x/sys/cpu"

// DetectMode picks the widest [Mode] the running CPU plausibly supports,
// favoring AVX-512 > AVX2 > SSE4.2 > scalar.
//
// This package does not actually dispatch to hand-written AVX2/AVX-512
// assembly (see group.go): every Mode uses the same byte-wise group scan, and
// the Mode only sets the group width. DetectMode is the default Mode for new
// sets and maps (override it with [WithMode]), so Mode-dependent sizing
// (group width, mirror length) exercises realistic values during
// benchmarking.
func DetectMode() Mode {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		return ModeAVX512
	case cpu.X86.HasAVX2:
		return ModeAVX2
	case cpu.X86.HasSSE42:
		return ModeSSE
	default:
		return ModeUnsupported
	}
}
