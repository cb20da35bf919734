package lwmem

import "sync"
import "unsafe"

import "github.com/dpirly/lwmem/api"

var defaultHeap *Heap
var defaultOnce sync.Once

// Default returns the process-wide convenience heap, constructing it with
// Defaultsettings on first use. It exists purely so callers that only
// ever need one heap can use the package-level functions below instead of
// carrying a *Heap around; nothing here is more privileged than a Heap a
// caller builds and owns itself.
func Default() *Heap {
	defaultOnce.Do(func() { defaultHeap = NewHeap(Defaultsettings()) })
	return defaultHeap
}

// Init admits regions into the default heap. See (*Heap).Init.
func Init(regions []api.Region) int { return Default().Init(regions) }

// AssignMem is an alias of Init on the default heap.
func AssignMem(regions []api.Region) int { return Default().AssignMem(regions) }

// Allocate allocates from the default heap. See (*Heap).Allocate.
func Allocate(n int) unsafe.Pointer { return Default().Allocate(n) }

// ZeroAllocate allocates and zeroes from the default heap.
func ZeroAllocate(nitems, size int) unsafe.Pointer {
	return Default().ZeroAllocate(nitems, size)
}

// Resize resizes an allocation owned by the default heap.
func Resize(ptr unsafe.Pointer, size int) unsafe.Pointer {
	return Default().Resize(ptr, size)
}

// Release releases an allocation owned by the default heap.
func Release(ptr unsafe.Pointer) { Default().Release(ptr) }

// Available reports free bytes in the default heap.
func Available() int64 { return Default().Available() }
