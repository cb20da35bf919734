// Package slab implements a segregated size-class cache layered on top of
// a lwmem.Heap: fixed-size chunk pools carved out of the heap in bulk via
// Heap.Allocate, handed out one chunk at a time from a bitmap free list.
// This gives O(1) alloc/free for the handful of sizes a caller repeats
// often, instead of the heap's general-purpose O(free-list-length)
// first-fit walk.
package slab

import "fmt"
import "sort"

// Blocksizes generates the list of size classes between minBlock and
// maxBlock (inclusive), spaced granularity bytes apart. granularity is
// meant to be a Heap's own HeaderSize(): spacing classes any finer buys
// nothing, since the heap underneath never carves off a fragment smaller
// than one header plus one alignment unit anyway. Both bounds must be
// multiples of granularity.
func Blocksizes(minBlock, maxBlock, granularity int64) []int64 {
	switch {
	case maxBlock < minBlock:
		panic(fmt.Errorf("minblock(%v) > maxblock(%v)", minBlock, maxBlock))
	case granularity <= 0:
		panic(fmt.Errorf("granularity %v must be positive", granularity))
	case minBlock%granularity != 0:
		panic(fmt.Errorf("minblock %v is not a multiple of granularity %v", minBlock, granularity))
	case maxBlock%granularity != 0:
		panic(fmt.Errorf("maxblock %v is not a multiple of granularity %v", maxBlock, granularity))
	}

	sizes := make([]int64, 0, (maxBlock-minBlock)/granularity+1)
	for size := minBlock; size < maxBlock; size += granularity {
		sizes = append(sizes, size)
	}
	return append(sizes, maxBlock)
}

// SuitableSize picks the smallest size class able to hold size.
// blocksizes must be sorted ascending, as returned by Blocksizes.
func SuitableSize(blocksizes []int64, size int64) int64 {
	i := sort.Search(len(blocksizes), func(i int) bool { return blocksizes[i] >= size })
	if i == len(blocksizes) {
		panic(fmt.Errorf("size %v greater than the largest configured class %v", size, blocksizes[len(blocksizes)-1]))
	}
	return blocksizes[i]
}
