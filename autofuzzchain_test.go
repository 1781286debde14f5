package swisstable

// Adapted by hand from the style "fzgen -chain ." generates, trimmed to the
// operations vmap exposes (no Range/bulk ops: this module's Map has no
// iterator).

import (
	"testing"

	"github.com/thepudds/fzgen/fuzzer"
)

func Fuzz_NewVmap_Chain(f *testing.F) {
	f.Fuzz(func(t *testing.T, data []byte) {
		var capacity uint8
		fz := fuzzer.NewFuzzer(data)
		fz.Fill(&capacity)

		target := newVmap(int(capacity))

		steps := []fuzzer.Step{
			{
				Name: "Fuzz_Vmap_Add",
				Func: func(k, v int) {
					target.add(k, v)
				},
			},
			{
				Name: "Fuzz_Vmap_Get",
				Func: func(k int) {
					target.get(k)
				},
			},
			{
				Name: "Fuzz_Vmap_FindOrInsert",
				Func: func(k int) {
					target.findOrInsert(k)
				},
			},
			{
				Name: "Fuzz_Vmap_Remove",
				Func: func(k int) {
					target.remove(k)
				},
			},
			{
				Name: "Fuzz_Vmap_RemoveAndShrink",
				Func: func(k int) {
					target.removeAndShrink(k)
				},
			},
			{
				Name: "Fuzz_Vmap_Len",
				Func: func() {
					target.len()
				},
			},
		}

		// Execute a chain of steps, with count/sequence/args driven by fz.Chain.
		// Every step already validates against the mirror internally and
		// panics on divergence, so there is no separate final diff.
		fz.Chain(steps)
	})
}
