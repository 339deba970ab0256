package ptr

import (
	"unsafe"

	"github.com/rawbytedev/proof"
	"github.com/rawbytedev/proof/internal/assert"
)

// Pin is a pointer whose pointee must stay where it is. It has the layout
// of *T.
//
// Go's collector never relocates heap objects, so the obligation Pin
// records is about callers: nobody may move the value out from under the
// pointer (by swapping in a different value and treating the old one as
// living elsewhere) until the pin is dropped.
type Pin[T any] struct {
	ptr proof.Carrier[proof.Unmoved, *T]
}

// NewPin wraps a pointer already proven unmoved.
func NewPin[T any](c proof.Carrier[proof.Unmoved, *T]) Pin[T] {
	assert.NotNil(unsafe.Pointer(c.Value()), "NewPin")
	return Pin[T]{ptr: c}
}

// PinBox consumes the box and pins its value.
func PinBox[T any](b *Box[T]) Pin[T] {
	raw := b.IntoRaw()
	// PROOF: the box was the only owner and is now consumed, so the pin is
	// the only way left to reach the value, and the heap never relocates it.
	return Pin[T]{ptr: proof.Assume[proof.Unmoved]((*T)(raw.Value()))}
}

// Get copies the pinned value out. Copying is not moving: the original stays
// in place.
func (p Pin[T]) Get() T {
	return *p.ptr.Value()
}

// GetMutUnchecked grants mutable access to the pinned value. The result
// still carries the no-move obligation: every use of it must leave the
// value in place.
//
// Safety: the value behind the result must not be moved.
func (p Pin[T]) GetMutUnchecked() proof.Carrier[proof.Unmoved, *T] {
	return p.ptr
}
