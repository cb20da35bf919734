package lwmem

import "fmt"

import s "github.com/prataprc/gosettings"

import "github.com/dpirly/lwmem/api"

var _ api.Allocator = (*Heap)(nil)

// Heap is one independent, boundary-tag-free allocator instance. A process
// can hold as many Heaps as it likes, each backed by its own disjoint set
// of Regions; nothing is shared between them. Heap is not safe for
// concurrent use — callers serialize their own access.
type Heap struct {
	settings s.Settings
	align    uintptr
	hdrSize  uintptr
	allocBit uintptr

	regions      []api.Region
	regionsCount int

	startBlock header
	endBlock   uintptr // address of the terminal sentinel; 0 until Init succeeds

	availableBytes int64
}

// NewHeap constructs an uninitialized Heap from the given settings, mixed
// on top of Defaultsettings. Panics if the resulting "align" value is not
// a power of two within [api.MinAlignment, api.MaxAlignment] — a
// misconfiguration caught at wiring time, not a runtime allocator fault.
func NewHeap(setts s.Settings) *Heap {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)

	align := setts.Int64("align")
	if !validAlignment(align) {
		panic(fmt.Errorf(
			"%w: align %v must be a power of two in [%v,%v]",
			api.ErrorBadSettings, align, api.MinAlignment, api.MaxAlignment,
		))
	}

	h := &Heap{settings: setts, align: uintptr(align)}
	h.hdrSize = alignUp(uintptr(headerRawSize), h.align)
	h.allocBit = uintptr(1) << (wordBits - 1)

	if comps := setts.String("log.components"); comps != "" {
		LogComponents(splitCSV(comps)...)
	}

	debugf("lwmem: new heap align=%v hdrsize=%v", h.align, h.hdrSize)
	return h
}

// HeaderSize returns the size in bytes of the in-band header prepended to
// every block, after alignment. The slab package spaces its size classes
// in multiples of this: a class boundary finer than one header's worth of
// bytes buys nothing, since a first-fit split never carves off less than
// a header plus one alignment unit of payload (see alloc.go's splitSlack).
func (h *Heap) HeaderSize() int64 {
	return int64(h.hdrSize)
}

// Alignment returns the alignment constant this Heap was configured with.
func (h *Heap) Alignment() int64 {
	return int64(h.align)
}

func splitCSV(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
