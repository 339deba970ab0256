// Package ptr holds the pointer primitives built on proof carriers: an owned
// heap box, a non-nil pointer, a pinned pointer, and reads through proven
// pointers.
//
// Functions documented with a Safety section take their preconditions on
// trust. Build with -tags proofcheck to assert them at runtime.
package ptr

import (
	"unsafe"

	"github.com/rawbytedev/proof"
	"github.com/rawbytedev/proof/internal/assert"
)

// Box is the single owner of a heap value.
type Box[T any] struct {
	p *T
}

// NewBox moves v into a fresh heap allocation owned by the returned box.
func NewBox[T any](v T) *Box[T] {
	p := new(T)
	*p = v
	return &Box[T]{p: p}
}

// Get returns a pointer to the boxed value. The box keeps ownership.
func (b *Box[T]) Get() *T {
	assert.NotNil(unsafe.Pointer(b.p), "Box.Get on a consumed box")
	return b.p
}

// Borrow proves the boxed value readable for as long as the box is not
// consumed.
func (b *Box[T]) Borrow() proof.Carrier[proof.ValidForRead, *T] {
	assert.NotNil(unsafe.Pointer(b.p), "Box.Borrow on a consumed box")
	// PROOF: a live box always points to the initialized value NewBox stored.
	return proof.Assume[proof.ValidForRead](b.p)
}

// IntoRaw consumes the box and returns its pointer. Ownership of the value
// passes to the caller, who must hand it back to FromRaw exactly once.
//
// Robustness: the pointer is non-nil and aligned for T.
func (b *Box[T]) IntoRaw() proof.Carrier[proof.NonNullAligned, unsafe.Pointer] {
	assert.NotNil(unsafe.Pointer(b.p), "Box.IntoRaw on a consumed box")
	p := b.p
	b.p = nil
	// PROOF: p came from new(T), which never returns nil and is aligned for T.
	return proof.Assume[proof.NonNullAligned](unsafe.Pointer(p))
}

// FromRaw rebuilds the box IntoRaw consumed.
//
// Safety: c must come from IntoRaw on a Box[T] and must not have been passed
// to FromRaw before.
func FromRaw[T any](c proof.Carrier[proof.NonNullAligned, unsafe.Pointer]) *Box[T] {
	p := c.Value()
	assert.NotNil(p, "FromRaw")
	assert.Aligned(p, unsafe.Alignof(*new(T)), "FromRaw")
	return &Box[T]{p: (*T)(p)}
}

// Drop releases the box. The collector reclaims the value once nothing else
// refers to it. Dropping twice is a defect.
func (b *Box[T]) Drop() {
	assert.NotNil(unsafe.Pointer(b.p), "Box.Drop on a consumed box")
	b.p = nil
}

// IntoNonNull consumes the box into a non-nil pointer.
func IntoNonNull[T any](b *Box[T]) NonNull[T] {
	raw := proof.Weaken[proof.NonNull](b.IntoRaw())
	// PROOF: forwarded from raw; converting to *T changes the static type,
	// not the address.
	return NonNull[T]{ptr: proof.Assume[proof.NonNull]((*T)(raw.Value()))}
}
