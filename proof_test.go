package proof

import (
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type positive struct{}

type even struct{}

type evenPositive struct{}

func (evenPositive) Implies() even { return even{} }

func TestCarrierLayoutMatchesValue(t *testing.T) {
	var p *int
	require.Equal(t, unsafe.Sizeof(p), unsafe.Sizeof(Carrier[NonNullAligned, *int]{}))
	require.Equal(t, unsafe.Alignof(p), unsafe.Alignof(Carrier[NonNullAligned, *int]{}))

	var u unsafe.Pointer
	require.Equal(t, unsafe.Sizeof(u), unsafe.Sizeof(Carrier[Fresh, unsafe.Pointer]{}))

	var b byte
	require.Equal(t, unsafe.Sizeof(b), unsafe.Sizeof(Carrier[InBounds, byte]{}))

	type pair struct {
		a uint32
		b uint16
	}
	require.Equal(t, unsafe.Sizeof(pair{}), unsafe.Sizeof(Carrier[positive, pair]{}))
	require.Equal(t, uintptr(0), unsafe.Sizeof(Proof[positive]{}))
	require.Equal(t, uintptr(0), unsafe.Sizeof(Establish[even]()))
}

func TestValueIsIdentity(t *testing.T) {
	ints := func(v int) bool {
		return Assume[positive](v).Value() == v
	}
	require.NoError(t, quick.Check(ints, nil))

	strs := func(v string) bool {
		return Assume[Unvalidated](v).Value() == v
	}
	require.NoError(t, quick.Check(strs, nil))

	x := 7
	require.Same(t, &x, Assume[NonNullAligned](&x).Value())
}

func TestWeakenKeepsValue(t *testing.T) {
	c := Assume[evenPositive](42)
	w := Weaken[even](c)
	require.Equal(t, 42, w.Value())
	require.IsType(t, Carrier[even, int]{}, w)

	x := 1
	nn := Weaken[NonNull](Assume[NonNullAligned](&x))
	require.Same(t, &x, nn.Value())

	buf := make([]byte, 8)
	f := Weaken[NonNull](Assume[Fresh](unsafe.Pointer(&buf[0])))
	require.Equal(t, unsafe.Pointer(&buf[0]), f.Value())
}

func FuzzAssumeValue(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte{0xff, 0xfe})
	f.Fuzz(func(t *testing.T, b []byte) {
		s := string(b)
		require.Equal(t, s, Assume[Unvalidated](s).Value())
	})
}
