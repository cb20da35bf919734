package lwmem

import "math/rand"
import "testing"
import "unsafe"

import "github.com/dpirly/lwmem/api"

// walkFreeList collects (address, size) pairs for every free block
// reachable from startBlock.next, stopping at (and excluding) endBlock.
func (h *Heap) walkFreeList() []struct{ addr, size uintptr } {
	var out []struct{ addr, size uintptr }
	addr := h.startBlock.next
	for addr != h.endBlock && addr != 0 {
		hdr := headerAt(addr)
		out = append(out, struct{ addr, size uintptr }{addr, hdr.size})
		addr = hdr.next
	}
	return out
}

func (h *Heap) checkInvariants(t *testing.T) {
	t.Helper()

	chain := h.walkFreeList() // includes non-terminal per-region sentinels (size 0)

	// The whole chain, sentinels included, must be strictly address-sorted.
	for i := 1; i < len(chain); i++ {
		if chain[i-1].addr >= chain[i].addr {
			t.Fatalf("free list not strictly sorted at index %v: %#x >= %#x", i, chain[i-1].addr, chain[i].addr)
		}
	}

	// Real free blocks (size > 0, sentinels excluded) must never be
	// physically adjacent to each other, and must satisfy the size floor.
	var real []struct{ addr, size uintptr }
	for _, b := range chain {
		if b.size > 0 {
			real = append(real, b)
		}
	}
	var sum int64
	for i, b := range real {
		if b.size < h.hdrSize+h.align {
			t.Fatalf("free block at %#x has size %v < H+A", b.addr, b.size)
		}
		if b.size%h.align != 0 {
			t.Fatalf("free block at %#x has unaligned size %v", b.addr, b.size)
		}
		if i > 0 && real[i-1].addr+real[i-1].size == b.addr {
			t.Fatalf("adjacent free blocks not coalesced: %#x size %v touches %#x", real[i-1].addr, real[i-1].size, b.addr)
		}
		sum += int64(b.size)
	}

	if sum != h.availableBytes {
		t.Fatalf("availableBytes = %v, sum of free blocks = %v", h.availableBytes, sum)
	}
}

func TestInvariantsHoldAfterRandomWorkload(t *testing.T) {
	h := newTestHeap(t, 64*1024)
	h.checkInvariants(t)

	rng := rand.New(rand.NewSource(42))
	live := make([]unsafe.Pointer, 0, 256)

	for i := 0; i < 2000; i++ {
		switch {
		case len(live) == 0 || rng.Intn(2) == 0:
			n := 1 + rng.Intn(500)
			if ptr := h.Allocate(n); ptr != nil {
				live = append(live, ptr)
			}
		default:
			idx := rng.Intn(len(live))
			h.Release(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}
		h.checkInvariants(t)
	}

	for _, ptr := range live {
		h.Release(ptr)
	}
	h.checkInvariants(t)

	if h.Available() != int64(64*1024)-int64(h.hdrSize) {
		t.Fatalf("heap did not fully drain back after releasing everything: available=%v", h.Available())
	}
}

func TestInvariantsAcrossMultipleRegions(t *testing.T) {
	h := NewHeap(nil)
	backing := make([]byte, 3*4096)
	regions := []api.Region{
		{Base: backing[0:4096]},
		{Base: backing[4096:8192]},
		{Base: backing[8192:12288]},
	}
	if n := h.Init(regions); n != 3 {
		t.Fatalf("expected 3 admitted regions, got %v", n)
	}
	h.checkInvariants(t)

	rng := rand.New(rand.NewSource(7))
	live := make([]unsafe.Pointer, 0, 128)
	for i := 0; i < 1000; i++ {
		if len(live) == 0 || rng.Intn(2) == 0 {
			n := 1 + rng.Intn(300)
			if ptr := h.Allocate(n); ptr != nil {
				live = append(live, ptr)
			}
		} else {
			idx := rng.Intn(len(live))
			h.Release(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}
		h.checkInvariants(t)
	}
}
