package lwmem

import "bytes"
import "testing"
import "unsafe"

func TestResizeNilZero(t *testing.T) {
	h := newTestHeap(t, 1024)
	if ptr := h.Resize(nil, 0); ptr != nil {
		t.Fatalf("Resize(nil, 0) should return nil")
	}
}

func TestResizeNilPositiveIsAllocate(t *testing.T) {
	h := newTestHeap(t, 1024)
	before := h.Available()
	ptr := h.Resize(nil, 100)
	if ptr == nil {
		t.Fatalf("Resize(nil, 100) should allocate")
	}
	need := alignUp(100, h.align) + h.hdrSize
	if before-h.Available() != int64(need) {
		t.Fatalf("Resize(nil, 100) didn't charge like Allocate(100)")
	}
}

func TestResizeToZeroIsRelease(t *testing.T) {
	h := newTestHeap(t, 1024)
	before := h.Available()
	ptr := h.Allocate(100)
	if ptr == nil {
		t.Fatalf("allocate failed")
	}
	if got := h.Resize(ptr, 0); got != nil {
		t.Fatalf("Resize(ptr, 0) should return nil")
	}
	if h.Available() != before {
		t.Fatalf("Resize(ptr, 0) didn't release like Release()")
	}
}

func TestResizeGrowPreservesPrefix(t *testing.T) {
	h := newTestHeap(t, 4096)
	ptr := h.Allocate(50)
	if ptr == nil {
		t.Fatalf("allocate failed")
	}
	src := unsafe.Slice((*byte)(ptr), 50)
	for i := range src {
		src[i] = byte(i)
	}
	grown := h.Resize(ptr, 200)
	if grown == nil {
		t.Fatalf("resize grow failed")
	}
	got := unsafe.Slice((*byte)(grown), 50)
	want := make([]byte, 50)
	for i := range want {
		want[i] = byte(i)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("grow did not preserve original bytes")
	}
}

func TestResizeShrinkPreservesPrefix(t *testing.T) {
	h := newTestHeap(t, 4096)
	ptr := h.Allocate(200)
	if ptr == nil {
		t.Fatalf("allocate failed")
	}
	src := unsafe.Slice((*byte)(ptr), 200)
	for i := range src {
		src[i] = byte(i)
	}
	shrunk := h.Resize(ptr, 50)
	if shrunk == nil {
		t.Fatalf("resize shrink failed")
	}
	got := unsafe.Slice((*byte)(shrunk), 50)
	for i := range got {
		if got[i] != byte(i) {
			t.Fatalf("byte %v = %v, want %v", i, got[i], byte(i))
		}
	}
}

func TestResizeFailureLeavesOriginalIntact(t *testing.T) {
	h := newTestHeap(t, 512)
	ptr := h.Allocate(50)
	if ptr == nil {
		t.Fatalf("allocate failed")
	}
	src := unsafe.Slice((*byte)(ptr), 50)
	for i := range src {
		src[i] = 0xEE
	}
	if got := h.Resize(ptr, 100000); got != nil {
		t.Fatalf("oversized resize should fail")
	}
	for i, b := range src {
		if b != 0xEE {
			t.Fatalf("byte %v corrupted after failed resize", i)
		}
	}
}

func TestZeroAllocate(t *testing.T) {
	h := newTestHeap(t, 4096)
	ptr := h.ZeroAllocate(10, 8)
	if ptr == nil {
		t.Fatalf("zero-allocate failed")
	}
	got := unsafe.Slice((*byte)(ptr), 80)
	for i, b := range got {
		if b != 0 {
			t.Fatalf("byte %v = %v, want 0", i, b)
		}
	}
}

func TestReleaseNilIsNoop(t *testing.T) {
	h := newTestHeap(t, 1024)
	h.Release(nil) // must not panic
}

func TestReleaseIgnoresDoubleFree(t *testing.T) {
	h := newTestHeap(t, 1024)
	ptr := h.Allocate(50)
	if ptr == nil {
		t.Fatalf("allocate failed")
	}
	h.Release(ptr)
	before := h.Available()
	h.Release(ptr) // double free must be a silent no-op, not corrupt the list
	if h.Available() != before {
		t.Fatalf("double free changed available bytes: %v -> %v", before, h.Available())
	}
}
