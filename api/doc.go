// Package api defines the interfaces and sentinel values common to the
// lwmem allocator and the packages layered on top of it (slab, cmd/lwmembench).
//
// Types and functions exported by this package follow the same convention
// as the rest of this module: they are not thread safe, callers serialize
// their own access.
package api
