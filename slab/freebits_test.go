package slab

import "testing"

func TestFreebitsAllocFree(t *testing.T) {
	fb := newFreebits(70) // spans two 64-bit words
	if fb.freeblocks() != 70 {
		t.Fatalf("freeblocks() = %v, want 70", fb.freeblocks())
	}
	if !fb.full() {
		t.Fatalf("a freshly created pool should be full (all chunks free)")
	}

	seen := map[int64]bool{}
	for i := 0; i < 70; i++ {
		n, ok := fb.alloc()
		if !ok {
			t.Fatalf("alloc %v failed early", i)
		}
		if seen[n] {
			t.Fatalf("alloc returned duplicate index %v", n)
		}
		seen[n] = true
	}
	if _, ok := fb.alloc(); ok {
		t.Fatalf("alloc should fail once the pool is exhausted")
	}
	if fb.full() {
		t.Fatalf("full() should be false once every chunk is allocated")
	}

	fb.free(5)
	if fb.freeblocks() != 1 {
		t.Fatalf("freeblocks() after one free = %v, want 1", fb.freeblocks())
	}
	n, ok := fb.alloc()
	if !ok || n != 5 {
		t.Fatalf("alloc after free = (%v,%v), want (5,true)", n, ok)
	}
}

func TestFreebitsExactWordBoundary(t *testing.T) {
	fb := newFreebits(64)
	if fb.freeblocks() != 64 {
		t.Fatalf("freeblocks() = %v, want 64", fb.freeblocks())
	}
	for i := 0; i < 64; i++ {
		if _, ok := fb.alloc(); !ok {
			t.Fatalf("alloc %v failed", i)
		}
	}
	if _, ok := fb.alloc(); ok {
		t.Fatalf("alloc should fail at exactly 64 chunks allocated")
	}
}
