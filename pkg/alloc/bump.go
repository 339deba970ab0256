package alloc

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/proof"
	"github.com/rawbytedev/proof/internal/assert"
	"github.com/rawbytedev/proof/internal/common"
)

// Bump hands out ranges of a region in address order. Space is reclaimed in
// stack order: returning the most recent live suballocation lowers the top,
// along with any older ones already returned beneath it. Returning an older
// suballocation only marks it until everything above it is gone.
type Bump struct {
	region *Region
	next   uintptr // first byte above every live suballocation
	marks  []mark
	inUse  uintptr
	live   int
}

type mark struct {
	start uintptr // offset of the suballocation
	prev  uintptr // next before the suballocation, including its padding
	size  uintptr
	freed bool
}

// NewBump returns an allocator over r. r must not be shared with another
// allocator.
func NewBump(r *Region) *Bump {
	return &Bump{region: r}
}

func (b *Bump) Allocate(l Layout) (proof.Carrier[proof.Fresh, unsafe.Pointer], error) {
	if reason := l.check(); reason != "" {
		return proof.Carrier[proof.Fresh, unsafe.Pointer]{}, unsupported(l, reason)
	}
	if l.Align > b.region.align {
		return proof.Carrier[proof.Fresh, unsafe.Pointer]{}, unsupported(l, fmt.Sprintf("region base only aligned to %d", b.region.align))
	}
	start := common.AlignUp(b.next, l.Align)
	if start < b.next || start > b.region.size || l.Size > b.region.size-start {
		return proof.Carrier[proof.Fresh, unsafe.Pointer]{}, outOfSpace(l, fmt.Sprintf("%d of %d bytes reserved", b.next, b.region.size))
	}

	b.marks = append(b.marks, mark{start: start, prev: b.next, size: l.Size})
	b.next = start + l.Size
	b.inUse += l.Size
	b.live++

	// PROOF: every live suballocation ends at or below the old next and this
	// one starts at or above it, so nothing aliases. The range ends inside the
	// region, whose base is non-nil. start is a multiple of l.Align and the
	// base is aligned to at least l.Align. Whatever a returned suballocation
	// left in these bytes is garbage to the new owner.
	return proof.Assume[proof.Fresh](b.region.at(start)), nil
}

func (b *Bump) Deallocate(p proof.Carrier[proof.Fresh, unsafe.Pointer], l Layout) {
	ptr := p.Value()
	assert.That(b.region.Contains(ptr, l.Size), "Bump.Deallocate: %p is outside the region", ptr)
	off := b.region.offset(ptr)

	i := len(b.marks) - 1
	for i >= 0 && b.marks[i].start != off {
		i--
	}
	assert.That(i >= 0, "Bump.Deallocate: %p was not allocated here", ptr)
	if i < 0 {
		return
	}
	assert.That(!b.marks[i].freed, "Bump.Deallocate: %p already deallocated", ptr)
	assert.That(b.marks[i].size == l.Size, "Bump.Deallocate: layout %s does not match allocation of %d bytes", l, b.marks[i].size)

	b.marks[i].freed = true
	b.inUse -= b.marks[i].size
	b.live--
	for n := len(b.marks); n > 0 && b.marks[n-1].freed; n-- {
		b.next = b.marks[n-1].prev
		b.marks = b.marks[:n-1]
	}
}

// Reset forgets every suballocation.
//
// Safety: no pointer obtained from b may be used afterwards.
func (b *Bump) Reset() {
	b.marks = b.marks[:0]
	b.next = 0
	b.inUse = 0
	b.live = 0
}

func (b *Bump) Stats() Stats {
	return Stats{Capacity: b.region.size, InUse: b.inUse, Live: b.live}
}
