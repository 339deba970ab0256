package ptr

import (
	"unsafe"

	"github.com/rawbytedev/proof"
	"github.com/rawbytedev/proof/internal/assert"
)

// NonNull is a pointer that is never nil. It has the layout of *T.
type NonNull[T any] struct {
	ptr proof.Carrier[proof.NonNull, *T]
}

// NewNonNull checks p and wraps it.
func NewNonNull[T any](p *T) (NonNull[T], bool) {
	if p == nil {
		return NonNull[T]{}, false
	}
	// PROOF: checked above.
	return NonNull[T]{ptr: proof.Assume[proof.NonNull](p)}, true
}

// NewNonNullUnchecked wraps a pointer already proven non-nil.
func NewNonNullUnchecked[T any](c proof.Carrier[proof.NonNull, *T]) NonNull[T] {
	assert.NotNil(unsafe.Pointer(c.Value()), "NewNonNullUnchecked")
	return NonNull[T]{ptr: c}
}

// Ptr returns the pointer. It is never nil.
func (n NonNull[T]) Ptr() *T {
	return n.ptr.Value()
}

// Carrier returns the pointer with its proof.
func (n NonNull[T]) Carrier() proof.Carrier[proof.NonNull, *T] {
	return n.ptr
}
