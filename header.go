package lwmem

import "unsafe"

// header is the in-band metadata every managed block carries at its base.
// It is never referenced through a typed Go pointer across block
// boundaries — blocks live in caller-supplied regions with unrelated
// backing arrays, so next is a raw address (uintptr), not a *header.
// A zero address is never a valid block, so next == 0 marks a block that
// is not linked into the free list (allocated blocks, the terminal
// sentinel).
type header struct {
	next uintptr
	size uintptr
}

// wordBits is the bit width of the platform's address/size word. The
// allocated bit steals the top bit of that word.
const wordBits = 8 * unsafe.Sizeof(uintptr(0))

// headerRawSize is the machine size of header before alignment rounding.
const headerRawSize = unsafe.Sizeof(header{})

// alignUp rounds x up to the next multiple of a, a must be a power of two.
func alignUp(x, a uintptr) uintptr {
	return (x + a - 1) &^ (a - 1)
}

// alignDown rounds x down to the previous multiple of a.
func alignDown(x, a uintptr) uintptr {
	return x &^ (a - 1)
}

// headerAt reinterprets the bytes at addr as a block header. Callers must
// guarantee addr falls within a live region (or is the address of the
// Heap's own startBlock field).
func headerAt(addr uintptr) *header {
	return (*header)(unsafe.Pointer(addr)) //nolint:govet
}

// payloadOf returns the pointer handed out to callers for the block whose
// header lives at addr.
func payloadOf(addr uintptr, h uintptr) unsafe.Pointer {
	return unsafe.Pointer(addr + h)
}

// blockOf recovers a block's header address from a payload pointer.
func blockOf(ptr unsafe.Pointer, h uintptr) uintptr {
	return uintptr(ptr) - h
}
