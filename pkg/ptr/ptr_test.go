package ptr

import (
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/proof"
)

type point struct {
	X, Y int32
	Tag  string
}

func TestReadRoundTrip(t *testing.T) {
	condition := func(v point) bool {
		// PROOF: v is a live, initialized local.
		return Read(proof.Assume[proof.ValidForRead](&v)) == v
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestReadLeavesSourceUntouched(t *testing.T) {
	v := point{X: 1, Y: 2, Tag: "a"}
	got := Read(proof.Assume[proof.ValidForRead](&v))
	got.X = 99
	require.Equal(t, int32(1), v.X)
}

func TestReadRawAndInit(t *testing.T) {
	buf := make([]uint64, 2)
	// PROOF: buf is a fresh, 8-byte aligned, 16-byte allocation nobody else uses.
	fresh := proof.Assume[proof.Fresh](unsafe.Pointer(&buf[0]))
	readable := Init(fresh, uint64(0xdeadbeef))
	require.Equal(t, uint64(0xdeadbeef), ReadRaw[uint64](readable))
	require.Equal(t, uint64(0xdeadbeef), buf[0])
}

func TestBoxIntoRawFromRaw(t *testing.T) {
	b := NewBox(point{X: 3, Y: 4, Tag: "box"})
	want := b.Get()

	raw := b.IntoRaw()
	require.NotNil(t, raw.Value())
	require.Equal(t, unsafe.Pointer(want), raw.Value())
	require.Zero(t, uintptr(raw.Value())%unsafe.Alignof(point{}))

	back := FromRaw[point](raw)
	require.Same(t, want, back.Get())
	require.Equal(t, "box", Read(back.Borrow()).Tag)
	back.Drop()
}

func TestIntoNonNull(t *testing.T) {
	b := NewBox(int64(-5))
	p := b.Get()
	nn := IntoNonNull(b)
	require.Same(t, p, nn.Ptr())
	require.Equal(t, int64(-5), *nn.Ptr())
	require.Same(t, p, nn.Carrier().Value())
}

func TestNewNonNull(t *testing.T) {
	_, ok := NewNonNull[int](nil)
	require.False(t, ok)

	x := 10
	nn, ok := NewNonNull(&x)
	require.True(t, ok)
	require.Same(t, &x, nn.Ptr())

	// PROOF: &x is never nil.
	unchecked := NewNonNullUnchecked(proof.Assume[proof.NonNull](&x))
	require.Equal(t, nn, unchecked)
}

func TestNonNullLayout(t *testing.T) {
	var p *point
	require.Equal(t, unsafe.Sizeof(p), unsafe.Sizeof(NonNull[point]{}))
	require.Equal(t, unsafe.Sizeof(p), unsafe.Sizeof(Pin[point]{}))
}

func TestPin(t *testing.T) {
	b := NewBox(point{X: 1})
	addr := b.Get()
	pin := PinBox(b)

	require.Equal(t, int32(1), pin.Get().X)

	mut := pin.GetMutUnchecked()
	// Mutating in place keeps the value where it is.
	mut.Value().X = 2
	require.Same(t, addr, mut.Value())
	require.Equal(t, int32(2), pin.Get().X)

	y := point{Y: 7}
	// PROOF: y is not moved for the rest of this test.
	p2 := NewPin(proof.Assume[proof.Unmoved](&y))
	require.Equal(t, int32(7), p2.Get().Y)
}
