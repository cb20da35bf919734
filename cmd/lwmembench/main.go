// Command lwmembench drives a randomized allocate/release/resize workload
// against a lwmem.Heap and reports a fragmentation and allocation-size
// summary. It is a diagnostic tool outside the core allocator: it samples
// Heap.Available() from the outside and never adds telemetry to Heap
// itself.
package main

import "flag"
import "fmt"
import "math/rand"
import "unsafe"

import humanize "github.com/dustin/go-humanize"

import "github.com/dpirly/lwmem"
import "github.com/dpirly/lwmem/api"
import "github.com/dpirly/lwmem/lib"

var options struct {
	regions    int
	regionSize int
	ops        int
	seed       int64
}

func argParse() {
	flag.IntVar(&options.regions, "regions", 4, "number of regions to carve out")
	flag.IntVar(&options.regionSize, "region-size", 1024*1024, "size in bytes of each region")
	flag.IntVar(&options.ops, "ops", 100000, "number of allocate/release/resize operations to run")
	flag.Int64Var(&options.seed, "seed", 1, "PRNG seed for the workload")
	flag.Parse()
}

func main() {
	argParse()
	runWorkload()
}

func runWorkload() {
	h := lwmem.NewHeap(nil)

	backing := make([]byte, options.regions*options.regionSize)
	regions := make([]api.Region, options.regions)
	for i := 0; i < options.regions; i++ {
		start, end := i*options.regionSize, (i+1)*options.regionSize
		regions[i] = api.Region{Base: backing[start:end]}
	}
	admitted := h.Init(regions)
	total := int64(options.regions * options.regionSize)

	rng := rand.New(rand.NewSource(options.seed))
	sizes := lib.NewSizeStats(0, 0, 0)
	watermark := lib.NewSizeStats(0, total, total/100+1)

	live := make([]unsafe.Pointer, 0, 1024)
	for i := 0; i < options.ops; i++ {
		watermark.Add(h.Available())

		switch {
		case len(live) == 0 || rng.Intn(3) != 0:
			n := 1 + rng.Intn(4096)
			sizes.Add(int64(n))
			if ptr := h.Allocate(n); ptr != nil {
				live = append(live, ptr)
			}
		case rng.Intn(2) == 0:
			idx := rng.Intn(len(live))
			h.Release(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		default:
			idx := rng.Intn(len(live))
			n := 1 + rng.Intn(4096)
			sizes.Add(int64(n))
			if grown := h.Resize(live[idx], n); grown != nil {
				live[idx] = grown
			}
		}
	}

	fmt.Printf("regions admitted: %v/%v\n", admitted, options.regions)
	fmt.Printf("total capacity: %v\n", humanize.Bytes(uint64(total)))
	fmt.Printf("available at exit: %v\n", humanize.Bytes(uint64(h.Available())))
	fmt.Printf("live allocations at exit: %v\n", len(live))
	fmt.Printf("request sizes: min=%v max=%v mean=%v sd=%.1f\n",
		sizes.Min(), sizes.Max(), sizes.Mean(), sizes.SD())
	fmt.Printf("available-bytes histogram: %v\n", watermark.Logstring())
}
