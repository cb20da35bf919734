package slab

import "fmt"
import "unsafe"

import "github.com/dpirly/lwmem"
import "github.com/dpirly/lwmem/api"
import "github.com/dpirly/lwmem/lib"

var _ api.Allocator = (*Cache)(nil)

// pool is one bulk allocation from the underlying heap, carved into
// chunksPerPool fixed-size chunks tracked by a freebits bitmap. Once every
// chunk in a pool is free again, the pool's memory is handed back to the
// heap and the pool is marked released rather than dropped from its
// class's pool list, so a later Resize/Release against a stale pointer
// into it can be recognized instead of silently corrupting the heap.
type pool struct {
	base     unsafe.Pointer
	bits     *freebits
	class    int64
	released bool
}

func (p *pool) chunkAt(nth int64) unsafe.Pointer {
	return unsafe.Pointer(uintptr(p.base) + uintptr(nth*p.class))
}

// class is one size-class bucket: a target chunk size and the pools
// currently backing it.
type class struct {
	size  int64
	pools []*pool
}

// Cache is a segregated size-class allocator layered on top of a
// *lwmem.Heap. Callers that repeatedly request one of a handful of sizes
// get O(1) alloc/free from a bitmap-backed pool instead of the heap's
// first-fit walk; requests larger than maxBlock fall straight through to
// the heap, and requests below minBlock are served from the smallest class. Cache implements api.Allocator so it can be used
// anywhere a lwmem.Heap is, layered on top of one.
type Cache struct {
	heap          *lwmem.Heap
	sizes         []int64
	classes       []*class
	chunksPerPool int64
	maxBlock      int64
}

// NewCache builds a Cache over heap with size classes spanning
// [minBlock, maxBlock] (both multiples of heap.HeaderSize()), each pool
// carved from the heap in one shot as chunksPerPool*classSize bytes.
func NewCache(heap *lwmem.Heap, minBlock, maxBlock, chunksPerPool int64) *Cache {
	sizes := Blocksizes(minBlock, maxBlock, heap.HeaderSize())
	classes := make([]*class, len(sizes))
	for i, sz := range sizes {
		classes[i] = &class{size: sz}
	}
	return &Cache{
		heap: heap, sizes: sizes, classes: classes,
		chunksPerPool: chunksPerPool, maxBlock: maxBlock,
	}
}

// Allocate returns a chunk sized to the smallest configured class able to
// hold n bytes, growing a new pool from the underlying heap if every
// existing pool for that class is full. Requests larger than the
// configured maxBlock fall through to a direct heap allocation. Returns
// nil on heap exhaustion, exactly like lwmem.Heap.Allocate.
func (c *Cache) Allocate(n int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	if int64(n) > c.maxBlock {
		return c.heap.Allocate(n)
	}
	classSize := SuitableSize(c.sizes, int64(n))
	cl := c.classFor(classSize)

	for _, p := range cl.pools {
		if p.released {
			continue
		}
		if nth, ok := p.bits.alloc(); ok {
			return p.chunkAt(nth)
		}
	}

	p := c.growPool(cl)
	if p == nil {
		return nil
	}
	nth, ok := p.bits.alloc()
	if !ok {
		return nil // unreachable: a freshly grown pool always has room
	}
	return p.chunkAt(nth)
}

// ZeroAllocate allocates nitems*size bytes via Allocate and zeroes the
// requested payload before returning it, mirroring lwmem.Heap.ZeroAllocate.
func (c *Cache) ZeroAllocate(nitems, size int) unsafe.Pointer {
	ptr := c.Allocate(nitems * size)
	if ptr != nil {
		clear(unsafe.Slice((*byte)(ptr), nitems*size))
	}
	return ptr
}

// Resize grows or shrinks a previously allocated chunk. A pointer that
// belongs to a class pool and still fits its class is returned unchanged;
// otherwise Resize allocates a new chunk, copies the old chunk's class
// capacity (the most this port can know about a rounded chunk's payload),
// and releases the old one. Pointers Allocate served directly from the
// heap (oversize requests) delegate straight to lwmem.Heap.Resize.
func (c *Cache) Resize(ptr unsafe.Pointer, size int) unsafe.Pointer {
	switch {
	case ptr == nil && size == 0:
		return nil
	case ptr == nil:
		return c.Allocate(size)
	case size == 0:
		c.Release(ptr)
		return nil
	}

	cl, p := c.locate(ptr)
	if cl == nil {
		return c.heap.Resize(ptr, size)
	}
	if p.released {
		panic(fmt.Errorf("%w: resize of a chunk whose pool was already returned to the heap", api.ErrorAlreadyReleased))
	}
	if int64(size) <= cl.size {
		return ptr
	}

	newPtr := c.Allocate(size)
	if newPtr == nil {
		return nil
	}
	lib.Memcpy(newPtr, ptr, int(cl.size))
	c.Release(ptr)
	return newPtr
}

// Release returns ptr to the pool it was carved from. A pointer that
// isn't tracked by any pool is passed straight to the underlying heap's
// Release, covering chunks Allocate served directly for oversize
// requests. Releasing a chunk whose pool has already been handed back to
// the heap panics with ErrorAlreadyReleased instead of corrupting the
// heap's free list.
func (c *Cache) Release(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	cl, p := c.locate(ptr)
	if cl == nil {
		c.heap.Release(ptr)
		return
	}
	if p.released {
		panic(fmt.Errorf("%w: release of a chunk whose pool was already returned to the heap", api.ErrorAlreadyReleased))
	}
	start := uintptr(p.base)
	nth := (uintptr(ptr) - start) / uintptr(cl.size)
	p.bits.free(int64(nth))
	if p.bits.full() {
		c.heap.Release(p.base)
		p.released = true
	}
}

// Available returns the number of bytes currently free in the underlying
// heap. The cache does not separately track pool-level fragmentation.
func (c *Cache) Available() int64 {
	return c.heap.Available()
}

// locate finds the class and pool ptr was carved from, or (nil, nil) if
// ptr isn't tracked by any pool (an oversize chunk Allocate served
// directly from the heap). A released pool is still matched, so callers
// can tell "not ours" apart from "ours, but already handed back".
func (c *Cache) locate(ptr unsafe.Pointer) (*class, *pool) {
	addr := uintptr(ptr)
	for _, cl := range c.classes {
		span := uintptr(cl.size) * uintptr(c.chunksPerPool)
		for _, p := range cl.pools {
			start := uintptr(p.base)
			if addr >= start && addr < start+span {
				return cl, p
			}
		}
	}
	return nil, nil
}

func (c *Cache) classFor(size int64) *class {
	for _, cl := range c.classes {
		if cl.size == size {
			return cl
		}
	}
	panic("unreachable: size not among configured classes")
}

func (c *Cache) growPool(cl *class) *pool {
	base := c.heap.Allocate(int(cl.size * c.chunksPerPool))
	if base == nil {
		return nil
	}
	p := &pool{base: base, bits: newFreebits(c.chunksPerPool), class: cl.size}
	cl.pools = append(cl.pools, p)
	return p
}
