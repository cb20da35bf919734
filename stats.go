package lwmem

import humanize "github.com/dustin/go-humanize"

// Available returns the number of bytes currently free across every
// admitted region, header overhead of free blocks included.
func (h *Heap) Available() int64 {
	return h.availableBytes
}

// LogStats logs a human-readable summary of the heap's running counters.
// This is a formatted view of state Available()/Regions() already expose,
// not additional telemetry.
func (h *Heap) LogStats() {
	infof(
		"lwmem: %v available across %v regions (align %v, header %v bytes)",
		humanize.Bytes(uint64(h.availableBytes)), h.regionsCount, h.align, h.hdrSize,
	)
}
