package lwmem

import "unsafe"

import "github.com/dpirly/lwmem/lib"

// Release returns ptr to the free list. Nil is a no-op. A pointer that
// doesn't look like a live allocation from this heap (allocated bit clear,
// or next already non-zero) is silently ignored — release intentionally
// does not validate the full block structure, only this one shape check.
func (h *Heap) Release(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	addr := blockOf(ptr, h.hdrSize)
	hdr := headerAt(addr)
	if hdr.size&h.allocBit == 0 || hdr.next != 0 {
		errorf("lwmem: release(%p) ignored, not a live allocation", ptr)
		return
	}
	hdr.size &^= h.allocBit
	h.availableBytes += int64(hdr.size)
	h.insertFree(addr)
	debugf("lwmem: release(%p) base=%#x size=%v", ptr, addr, hdr.size)
}

// ZeroAllocate allocates nitems*size bytes and zeroes the payload before
// returning it. The multiply is not overflow-checked, matching the
// allocator this port is based on; callers passing attacker-controlled
// nitems/size should check for overflow themselves before calling this.
func (h *Heap) ZeroAllocate(nitems, size int) unsafe.Pointer {
	ptr := h.Allocate(nitems * size)
	if ptr != nil {
		clear(unsafe.Slice((*byte)(ptr), nitems*size))
	}
	return ptr
}

// Resize grows or shrinks a previously allocated chunk. It never shrinks
// or grows in place, even when an adjacent free block would make that
// possible: every non-trivial resize is allocate-copy-release.
//
//	ptr == nil, size == 0: returns nil, no state change.
//	ptr == nil, size  > 0: equivalent to Allocate(size).
//	ptr  != nil, size == 0: equivalent to Release(ptr); returns nil.
//	ptr  != nil, size  > 0: allocates size, copies min(old, size) bytes
//	                         from ptr, releases ptr. On allocation failure
//	                         ptr is left untouched and nil is returned.
func (h *Heap) Resize(ptr unsafe.Pointer, size int) unsafe.Pointer {
	switch {
	case ptr == nil && size == 0:
		return nil
	case ptr == nil:
		return h.Allocate(size)
	case size == 0:
		h.Release(ptr)
		return nil
	}

	hdr := headerAt(blockOf(ptr, h.hdrSize))
	oldPayload := int((hdr.size &^ h.allocBit) - h.hdrSize)

	newPtr := h.Allocate(size)
	if newPtr == nil {
		return nil
	}

	n := oldPayload
	if size < n {
		n = size
	}
	lib.Memcpy(newPtr, ptr, n)
	h.Release(ptr)
	return newPtr
}
