// Package lib provides small, self-contained helpers shared by lwmem and
// the tooling built on top of it. They are not tied to any one allocator
// policy and depend on nothing beyond the standard library.
//
// Memcpy backs the copy-based resize facade (lwmem.Heap.Resize). It is the
// only helper the core allocator itself imports. SizeStats is used
// exclusively by cmd/lwmembench to report allocation-size and
// available-bytes-watermark statistics gathered from outside the heap —
// the heap itself tracks nothing beyond the available-bytes counter.
package lib
