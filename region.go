package lwmem

import "unsafe"

import "github.com/dpirly/lwmem/api"

// regionAddr returns the address of a region's backing array, or 0 for a
// nil/empty region. unsafe.SliceData never panics on an empty slice,
// unlike indexing element 0 directly.
func regionAddr(r api.Region) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(r.Base)))
}

// Init admits the given regions into the heap, in one shot. It fails
// (returns 0, changing nothing) if the heap was already initialized, or
// if the regions are not in strictly ascending, non-overlapping address
// order as declared by the caller — the overlap check uses the declared
// (base, len) bounds, not the bounds after alignment normalization, so a
// region trimmed to nothing by alignment can still cause a later region
// to be rejected.
//
// Regions too small to hold a header plus one alignment unit after
// normalization are admitted as "no region" — silently dropped,
// not a fatal error for the batch.
func (h *Heap) Init(regions []api.Region) int {
	if h.endBlock != 0 {
		return 0
	}

	var prevAddr, prevSize uintptr
	for i, r := range regions {
		addr := regionAddr(r)
		size := uintptr(len(r.Base))
		if i > 0 && prevAddr+prevSize > addr {
			warnf("lwmem: region %v overlaps or precedes region %v", i, i-1)
			return 0
		}
		prevAddr, prevSize = addr, size
	}

	minSize := h.hdrSize + h.align
	for _, r := range regions {
		base, size := r.Base, uintptr(len(r.Base))
		if size < minSize {
			continue
		}
		addr := regionAddr(api.Region{Base: base})
		if rem := addr % h.align; rem != 0 {
			shift := h.align - rem
			if shift >= size {
				continue
			}
			base = base[shift:]
			size -= shift
			addr += shift
		}
		size = alignDown(size, h.align)
		if size < minSize {
			continue
		}

		endAddr := addr + size - h.hdrSize
		endHdr := headerAt(endAddr)
		endHdr.next = 0
		endHdr.size = 0

		leadHdr := headerAt(addr)
		leadHdr.next = endAddr
		leadHdr.size = size - h.hdrSize

		if h.endBlock == 0 {
			h.startBlock.next = addr
			h.startBlock.size = 0
		} else {
			headerAt(h.endBlock).next = addr
		}
		h.endBlock = endAddr

		h.regions = append(h.regions, api.Region{Base: base})
		h.availableBytes += int64(size - h.hdrSize)
		h.regionsCount++

		debugf("lwmem: admitted region base=%#x size=%v payload=%v", addr, size, size-h.hdrSize)
	}

	infof("lwmem: init admitted %v/%v regions, %v bytes available", h.regionsCount, len(regions), h.availableBytes)
	return h.regionsCount
}

// AssignMem is an alias of Init.
func (h *Heap) AssignMem(regions []api.Region) int {
	return h.Init(regions)
}

// Regions returns the number of regions actually admitted by Init.
func (h *Heap) Regions() int {
	return h.regionsCount
}
