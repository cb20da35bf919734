package lwmem

import "unsafe"

// splitSlack is the leftover span (in header units) a chosen block must
// exceed beyond the request before the tail is worth carving off into its
// own free block. At or below this the remainder stays with the
// allocation as internal fragmentation.
const splitSlack = 2

// Allocate hands out n contiguous payload bytes, first-fit, splitting the
// chosen free block when the remainder is worth keeping. Returns nil if
// the heap isn't initialized, n <= 0, n already has the allocated bit
// set, or the aligned request overflows into the allocated bit.
func (h *Heap) Allocate(n int) unsafe.Pointer {
	if h.endBlock == 0 || n <= 0 {
		return nil
	}
	req := uintptr(n)
	if req&h.allocBit != 0 {
		return nil
	}
	aligned := alignUp(req, h.align)
	if aligned < req {
		return nil // overflowed while aligning
	}
	need := aligned + h.hdrSize
	if need < aligned || need&h.allocBit != 0 {
		return nil
	}

	prevHdr := &h.startBlock
	currAddr := prevHdr.next
	currHdr := headerAt(currAddr)
	for currHdr.size < need {
		if currAddr == h.endBlock {
			debugf("lwmem: allocate(%v) failed, no fitting block", n)
			return nil
		}
		prevHdr = currHdr
		currAddr = currHdr.next
		currHdr = headerAt(currAddr)
	}

	prevHdr.next = currHdr.next

	if currHdr.size-need > splitSlack*h.hdrSize {
		tailAddr := currAddr + need
		tailHdr := headerAt(tailAddr)
		tailHdr.size = currHdr.size - need
		currHdr.size = need
		h.insertFree(tailAddr)
	}

	currHdr.next = 0
	h.availableBytes -= int64(currHdr.size) // need, or the whole block if unsplit
	currHdr.size |= h.allocBit

	debugf("lwmem: allocate(%v) -> base=%#x need=%v", n, currAddr, need)
	return payloadOf(currAddr, h.hdrSize)
}
