package alloc

import (
	"unsafe"

	"github.com/rawbytedev/proof/internal/common"
)

// MaxAlign is the largest alignment any allocator here supports.
const MaxAlign = 4096

// Region is an owned, contiguous byte extent with a fixed base address.
// Allocators hand out ranges of it; the region itself is released when the
// collector finds no allocator or suballocation referring to it.
type Region struct {
	buf   []byte
	base  unsafe.Pointer
	size  uintptr
	align uintptr
}

// NewRegion allocates a region of size bytes whose base is aligned to
// MaxAlign.
func NewRegion(size int) *Region {
	if size < 0 {
		panic("alloc: negative region size")
	}
	buf := make([]byte, size+MaxAlign)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := common.AlignUp(addr, MaxAlign) - addr
	return &Region{
		buf:   buf,
		base:  unsafe.Pointer(&buf[off]),
		size:  uintptr(size),
		align: MaxAlign,
	}
}

// RegionOf adopts host-provided memory. The caller gives up buf: it must not
// touch it while any allocator uses the region.
func RegionOf(buf []byte) *Region {
	r := &Region{buf: buf, size: uintptr(len(buf))}
	if len(buf) == 0 {
		r.align = 1
		return r
	}
	r.base = unsafe.Pointer(unsafe.SliceData(buf))
	r.align = common.BaseAlign(uintptr(r.base), MaxAlign)
	return r
}

// Size returns the number of usable bytes.
func (r *Region) Size() uintptr { return r.size }

// Align returns the alignment of the base address, capped at MaxAlign.
func (r *Region) Align() uintptr { return r.align }

// Base returns the first usable byte.
func (r *Region) Base() unsafe.Pointer { return r.base }

// Contains reports whether [p, p+n) lies inside the region.
func (r *Region) Contains(p unsafe.Pointer, n uintptr) bool {
	if r.base == nil || p == nil {
		return false
	}
	start, addr := uintptr(r.base), uintptr(p)
	return addr >= start && addr-start <= r.size && n <= r.size-(addr-start)
}

func (r *Region) at(off uintptr) unsafe.Pointer {
	return unsafe.Add(r.base, off)
}

func (r *Region) offset(p unsafe.Pointer) uintptr {
	return uintptr(p) - uintptr(r.base)
}
