package swisstable

import "errors"

// ErrAllocation represents an allocation failure during a resize (or an
// Add/FindOrInsert that forces one). This module's allocator is Go's make,
// which panics rather than returning an error, so no code path in this
// package actually produces ErrAllocation today; it is kept as part of the
// public contract so a future pluggable allocator can report failure
// through errors.Is without a breaking change. See DESIGN.md.
var ErrAllocation = errors.New("swisstable: allocation failed")
