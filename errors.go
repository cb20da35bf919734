package lwmem

// This file re-exports the sentinel errors shared with the api package so
// callers of lwmem don't need a separate import for them.

import "github.com/dpirly/lwmem/api"

// ErrorBadSettings is returned (via panic, see NewHeap in heap.go) when NewHeap is
// given an invalid configuration.
var ErrorBadSettings = api.ErrorBadSettings

// ErrorAlreadyReleased is used by slab.Cache to flag operations against a
// pool it has already handed back to its underlying Heap.
var ErrorAlreadyReleased = api.ErrorAlreadyReleased
