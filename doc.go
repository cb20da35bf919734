// Package lwmem implements a general-purpose dynamic memory allocator for
// bare-metal and embedded targets where no host heap exists. Callers hand
// one or more disjoint byte regions to a Heap; the Heap then serves
// variable-size allocation, resize and release requests against those
// regions using in-band, boundary-tag-free block headers and an
// address-ordered free list. It never asks the host for more memory: a
// Heap's total working set is fixed at Init time.
//
// Types and functions exported by this package are not thread safe.
// Callers that need concurrent access must serialize it themselves (a
// mutex around a Heap works fine); lwmem intentionally carries no locking
// of its own, the same tradeoff the C original it is ported from makes.
//
// slab:
//
// A segregated size-class cache layered on top of a Heap, for callers that
// repeatedly allocate a handful of fixed sizes and want O(1) alloc/free
// instead of the Heap's O(free-list length) first-fit walk.
//
// api:
//
// Interfaces and sentinel values shared between lwmem and slab.
//
// lib:
//
// Small allocator-adjacent helpers (Memcpy, running statistics) with no
// dependency beyond the standard library.
package lwmem
