package api

import "unsafe"

// Allocator is the interface implemented by lwmem.Heap and by the
// domain-stack allocators (slab.Cache) layered on top of it.
type Allocator interface {
	// Allocate a chunk of `n` bytes. Returned pointer is always aligned
	// to the configured alignment constant.
	Allocate(n int) unsafe.Pointer

	// ZeroAllocate allocates a chunk sized nitems*size and zeroes it.
	ZeroAllocate(nitems, size int) unsafe.Pointer

	// Resize grows or shrinks a previously allocated chunk, copying its
	// payload. Follows the four-case behaviour documented on lwmem.Heap.Resize.
	Resize(ptr unsafe.Pointer, size int) unsafe.Pointer

	// Release a chunk back to the allocator. Nil is a no-op.
	Release(ptr unsafe.Pointer)

	// Available returns the number of bytes currently free.
	Available() int64
}

// Region describes one caller-supplied contiguous byte range that a Heap
// is allowed to manage in its entirety after normalization.
type Region struct {
	// Base is the caller-owned memory. It must stay alive and at a fixed
	// address for the lifetime of the Heap it is handed to.
	Base []byte
}
