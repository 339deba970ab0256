package assert

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAssertions(t *testing.T) {
	var x uint64
	p := unsafe.Pointer(&x)

	// Valid inputs never panic, whichever way the package was built.
	require.NotPanics(t, func() {
		NotNil(p, "x")
		Aligned(p, 8, "x")
		That(true, "unreachable")
	})

	if !Enabled {
		require.NotPanics(t, func() {
			NotNil(nil, "nil")
			That(false, "ignored")
		})
		return
	}
	require.PanicsWithValue(t, "proofcheck: nil: nil pointer", func() { NotNil(nil, "nil") })
	require.Panics(t, func() { Aligned(unsafe.Add(p, 1), 8, "odd") })
	require.PanicsWithValue(t, "proofcheck: bad 3", func() { That(false, "bad %d", 3) })
}
