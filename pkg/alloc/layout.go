package alloc

import (
	"fmt"

	"github.com/rawbytedev/proof/internal/common"
)

// Layout is the size and alignment a suballocation must satisfy.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// NewLayout validates size and align. align must be a power of two and size
// must not be zero.
func NewLayout(size, align uintptr) (Layout, error) {
	l := Layout{Size: size, Align: align}
	if reason := l.check(); reason != "" {
		return Layout{}, unsupported(l, reason)
	}
	return l, nil
}

// LayoutOf returns the layout of T.
func LayoutOf[T any]() Layout {
	return Layout{Size: common.Sizeof[T](), Align: common.Alignof[T]()}
}

func (l Layout) String() string {
	return fmt.Sprintf("{size: %d, align: %d}", l.Size, l.Align)
}

// Padded returns the size rounded up to the alignment: the distance between
// consecutive elements of an array of l.
func (l Layout) Padded() uintptr {
	return common.AlignUp(l.Size, l.Align)
}

// check returns why l cannot be served by any allocator, or "".
func (l Layout) check() string {
	switch {
	case l.Size == 0:
		return "zero size"
	case !common.IsPowerOfTwo(l.Align):
		return "alignment is not a power of two"
	case l.Align > MaxAlign:
		return fmt.Sprintf("alignment above %d", MaxAlign)
	case common.AlignUp(l.Size, l.Align) < l.Size:
		return "size overflows when padded"
	}
	return ""
}
