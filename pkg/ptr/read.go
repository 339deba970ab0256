package ptr

import (
	"unsafe"

	"github.com/rawbytedev/proof"
	"github.com/rawbytedev/proof/internal/assert"
)

// Read copies the value out of c without touching the source memory.
//
// Safety: carried by the proof. A wrongly established ValidForRead makes
// the result unspecified.
func Read[T any](c proof.Carrier[proof.ValidForRead, *T]) T {
	return *c.Value()
}

// ReadRaw is Read over an untyped pointer.
//
// Safety: as Read, and the memory behind c must hold a T.
func ReadRaw[T any](c proof.Carrier[proof.ValidForRead, unsafe.Pointer]) T {
	p := c.Value()
	assert.NotNil(p, "ReadRaw")
	assert.Aligned(p, unsafe.Alignof(*new(T)), "ReadRaw")
	return *(*T)(p)
}

// Init writes v into fresh memory, making it readable as a T.
//
// Safety: the suballocation behind c must have been requested with a layout
// at least as large and as aligned as T. T must not hold Go pointers when the
// memory comes from a byte region, since the collector does not scan it.
func Init[T any](c proof.Carrier[proof.Fresh, unsafe.Pointer], v T) proof.Carrier[proof.ValidForRead, unsafe.Pointer] {
	p := c.Value()
	assert.NotNil(p, "Init")
	assert.Aligned(p, unsafe.Alignof(v), "Init")
	*(*T)(p) = v
	// PROOF: fresh memory is non-nil and aligned for its layout, which covers
	// T, and the write above initialized it.
	return proof.Assume[proof.ValidForRead](p)
}
