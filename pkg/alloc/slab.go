package alloc

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/proof"
	"github.com/rawbytedev/proof/internal/assert"
)

// Slab splits a region into equal blocks of one layout and recycles them
// through a free list. The most recently returned block is handed out
// first.
type Slab struct {
	region *Region
	block  Layout
	stride uintptr
	free   []uint32 // stack of free block indices
	taken  []bool
}

// NewSlab returns an allocator serving only the given block layout.
func NewSlab(r *Region, block Layout) (*Slab, error) {
	if reason := block.check(); reason != "" {
		return nil, fmt.Errorf("new slab: %w", unsupported(block, reason))
	}
	if block.Align > r.align {
		return nil, fmt.Errorf("new slab: %w", unsupported(block, fmt.Sprintf("region base only aligned to %d", r.align)))
	}
	stride := block.Padded()
	count := r.size / stride
	s := &Slab{
		region: r,
		block:  block,
		stride: stride,
		free:   make([]uint32, count),
		taken:  make([]bool, count),
	}
	// Highest index at the bottom so blocks come out in address order.
	for i := range s.free {
		s.free[i] = uint32(int(count) - 1 - i)
	}
	return s, nil
}

// Block returns the only layout s serves.
func (s *Slab) Block() Layout { return s.block }

// Blocks returns the number of blocks in the slab.
func (s *Slab) Blocks() int { return len(s.taken) }

func (s *Slab) Allocate(l Layout) (proof.Carrier[proof.Fresh, unsafe.Pointer], error) {
	if l != s.block {
		return proof.Carrier[proof.Fresh, unsafe.Pointer]{}, unsupported(l, fmt.Sprintf("slab serves only %s", s.block))
	}
	n := len(s.free)
	if n == 0 {
		return proof.Carrier[proof.Fresh, unsafe.Pointer]{}, outOfSpace(l, fmt.Sprintf("all %d blocks in use", len(s.taken)))
	}
	idx := s.free[n-1]
	s.free = s.free[:n-1]
	s.taken[idx] = true

	// PROOF: blocks are stride bytes apart with stride >= size, so distinct
	// blocks never overlap, and idx was on the free list so no live result
	// holds it. idx < count keeps the block inside the region, whose base is
	// non-nil and aligned to at least the block alignment; stride is a
	// multiple of that alignment.
	return proof.Assume[proof.Fresh](s.region.at(uintptr(idx) * s.stride)), nil
}

func (s *Slab) Deallocate(p proof.Carrier[proof.Fresh, unsafe.Pointer], l Layout) {
	ptr := p.Value()
	assert.That(l == s.block, "Slab.Deallocate: layout %s, slab serves %s", l, s.block)
	assert.That(s.region.Contains(ptr, s.block.Size), "Slab.Deallocate: %p is outside the region", ptr)
	off := s.region.offset(ptr)
	assert.That(off%s.stride == 0, "Slab.Deallocate: %p is not a block start", ptr)
	idx := off / s.stride
	assert.That(s.taken[idx], "Slab.Deallocate: %p already deallocated", ptr)

	s.taken[idx] = false
	s.free = append(s.free, uint32(idx))
}

func (s *Slab) Stats() Stats {
	live := len(s.taken) - len(s.free)
	return Stats{
		Capacity: s.region.size,
		InUse:    uintptr(live) * s.block.Size,
		Live:     live,
	}
}
