package lib

import "unsafe"

// Memcpy copies `ln` bytes from src to dst. Useful when the memory block
// was obtained outside the Go runtime (a caller-supplied region, in
// particular) and cannot be addressed as a Go slice directly.
func Memcpy(dst, src unsafe.Pointer, ln int) int {
	if ln <= 0 {
		return 0
	}
	dstsl := unsafe.Slice((*byte)(dst), ln)
	srcsl := unsafe.Slice((*byte)(src), ln)
	return copy(dstsl, srcsl)
}
