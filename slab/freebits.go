package slab

import "math/bits"

// freebits is a flat bitmap free list over nblocks fixed-size chunks: bit
// i set means chunk i is free. This is a single-level simplification of
// the teacher's cacheline-tree freebits (malloc/freebits.go), which
// layers one bitmap per cache line of the level below it to keep alloc
// near O(1) at very large block counts; a slab pool here tops out at a
// few thousand chunks; one flat []uint64 scanned with math/bits keeps the
// same O(1)-amortized alloc/free behaviour without the tree's recursion.
type freebits struct {
	nblocks int64
	words   []uint64
}

func newFreebits(nblocks int64) *freebits {
	if nblocks <= 0 {
		panic("nblocks must be positive")
	}
	nwords := (nblocks + 63) / 64
	fb := &freebits{nblocks: nblocks, words: make([]uint64, nwords)}
	for i := range fb.words {
		fb.words[i] = ^uint64(0)
	}
	// clear any bits beyond nblocks in the final word
	if rem := nblocks % 64; rem != 0 {
		fb.words[len(fb.words)-1] = (uint64(1) << uint(rem)) - 1
	}
	return fb
}

// alloc returns the index of a free chunk and marks it used, or (-1,
// false) if the pool is exhausted.
func (fb *freebits) alloc() (int64, bool) {
	for wi, w := range fb.words {
		if w == 0 {
			continue
		}
		bit := bits.TrailingZeros64(w)
		fb.words[wi] = w &^ (uint64(1) << uint(bit))
		return int64(wi)*64 + int64(bit), true
	}
	return -1, false
}

// free marks chunk nth as available again.
func (fb *freebits) free(nth int64) {
	wi, bit := nth/64, uint(nth%64)
	fb.words[wi] |= uint64(1) << bit
}

// freeblocks returns the number of currently free chunks.
func (fb *freebits) freeblocks() int64 {
	var n int64
	for _, w := range fb.words {
		n += int64(bits.OnesCount64(w))
	}
	return n
}

// full reports whether every chunk in the pool is free (i.e. none are
// currently allocated) — the condition under which a pool can be handed
// back to the underlying heap.
func (fb *freebits) full() bool {
	return fb.freeblocks() == fb.nblocks
}
