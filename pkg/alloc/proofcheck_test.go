//go:build proofcheck

package alloc

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/proof"
)

func TestSlabDeallocateChecks(t *testing.T) {
	l := Layout{Size: 16, Align: 8}
	s, err := NewSlab(NewRegion(256), l)
	require.NoError(t, err)

	p, err := s.Allocate(l)
	require.NoError(t, err)
	s.Deallocate(p, l)
	require.PanicsWithValue(t,
		fmt.Sprintf("proofcheck: Slab.Deallocate: %p already deallocated", p.Value()),
		func() { s.Deallocate(p, l) })

	q, err := s.Allocate(l)
	require.NoError(t, err)
	require.Panics(t, func() { s.Deallocate(q, Layout{Size: 8, Align: 8}) })

	// PROOF: deliberately wrong, the address is inside a block but not its start.
	mid := proof.Assume[proof.Fresh](unsafe.Add(q.Value(), 8))
	require.PanicsWithValue(t,
		fmt.Sprintf("proofcheck: Slab.Deallocate: %p is not a block start", mid.Value()),
		func() { s.Deallocate(mid, Layout{Size: 16, Align: 8}) })
	require.Equal(t, 1, s.Stats().Live)
}

func TestBumpDeallocateChecks(t *testing.T) {
	b := NewBump(NewRegion(64))
	l := Layout{Size: 8, Align: 8}

	var x uint64
	// PROOF: deliberately wrong, x does not come from b.
	foreign := proof.Assume[proof.Fresh](unsafe.Pointer(&x))
	require.PanicsWithValue(t,
		fmt.Sprintf("proofcheck: Bump.Deallocate: %p is outside the region", foreign.Value()),
		func() { b.Deallocate(foreign, l) })

	p1, err := b.Allocate(l)
	require.NoError(t, err)
	_, err = b.Allocate(l)
	require.NoError(t, err)
	b.Deallocate(p1, l)
	require.PanicsWithValue(t,
		fmt.Sprintf("proofcheck: Bump.Deallocate: %p already deallocated", p1.Value()),
		func() { b.Deallocate(p1, l) })
	require.Equal(t, 1, b.Stats().Live)
}
