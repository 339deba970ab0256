// Package alloc carves small suballocations out of a large owned region.
//
// Allocator is the one capability surface. Strategies (Bump, Slab) implement
// it over a Region; decorators (Locked, Instrumented) wrap any Allocator.
//
// Allocate proves its result with proof.Fresh: the range does not alias any
// other live result, is non-nil, satisfies the layout, and is uninitialized.
// Deallocate takes that proof back and trusts the caller that it came from
// Allocate on the same allocator with the same layout and was not returned
// already. Nothing checks this outside -tags proofcheck builds.
//
// Region memory is a plain byte slice that the collector does not scan for
// pointers: store only pointer-free values in it.
package alloc

import (
	"unsafe"

	"github.com/rawbytedev/proof"
)

// Allocator manages suballocations of a larger owned allocation.
type Allocator interface {
	// Allocate returns a fresh suballocation satisfying l, or an *Error of
	// kind KindUnsupportedLayout or KindOutOfSpace.
	Allocate(l Layout) (proof.Carrier[proof.Fresh, unsafe.Pointer], error)

	// Deallocate gives a suballocation back.
	//
	// Safety: p must come from Allocate on this allocator with layout l and
	// must not have been deallocated. p must not be used afterwards.
	Deallocate(p proof.Carrier[proof.Fresh, unsafe.Pointer], l Layout)
}

// Stats describes how much of an allocator's region is in use.
type Stats struct {
	Capacity uintptr // bytes in the region
	InUse    uintptr // bytes handed out and not yet returned
	Live     int     // suballocations not yet returned
}

// StatsReporter is implemented by allocators that can describe their usage.
type StatsReporter interface {
	Stats() Stats
}

var (
	_ Allocator     = (*Bump)(nil)
	_ Allocator     = (*Slab)(nil)
	_ Allocator     = (*Locked)(nil)
	_ Allocator     = (*Instrumented)(nil)
	_ StatsReporter = (*Bump)(nil)
	_ StatsReporter = (*Slab)(nil)
	_ StatsReporter = (*Locked)(nil)
	_ StatsReporter = (*Instrumented)(nil)
)
