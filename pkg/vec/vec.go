// Package vec provides Vec1024, an append-only byte vector over 1024 bytes
// of raw storage.
//
// The vector writes through unsafe pointer arithmetic. What keeps that sound
// is one invariant over the whole struct, recorded in the inv field:
//
//   - data points to an owned allocation of Capacity bytes;
//   - n is at most Capacity;
//   - the first n bytes behind data are initialized.
//
// Every mutation ends by re-establishing inv with a comment showing the
// invariant still holds. inv is zero-size, so the invariant itself costs no
// storage. The struct is still larger than (data, n): owner records where
// the storage came from, adding one interface value. A Vec1024 is not safe
// for concurrent use.
package vec

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/rawbytedev/proof"
	"github.com/rawbytedev/proof/pkg/alloc"
	"github.com/rawbytedev/proof/pkg/ptr"
)

// Capacity is the fixed size of a vector's storage.
const Capacity = 1024

// Invariant names the whole-vector invariant described in the package doc.
type Invariant struct{}

// StorageLayout is the layout New requests from its allocator.
var StorageLayout = alloc.Layout{Size: Capacity, Align: 1}

type Vec1024 struct {
	data  unsafe.Pointer
	n     int
	inv   proof.Proof[Invariant]
	owner alloc.Allocator // nil when the storage is a heap box
}

// New builds an empty vector whose storage comes from a.
func New(a alloc.Allocator) (*Vec1024, error) {
	storage, err := a.Allocate(StorageLayout)
	if err != nil {
		return nil, fmt.Errorf("vec: allocate storage: %w", err)
	}
	// PROOF: Allocate proved the storage non-aliasing and Capacity bytes long,
	// and the vector is now its only owner. n is zero, so the initialized
	// prefix is empty.
	inv := proof.Establish[Invariant]()
	return &Vec1024{data: storage.Value(), inv: inv, owner: a}, nil
}

// NewHeap builds an empty vector whose storage is a heap box.
func NewHeap() *Vec1024 {
	raw := ptr.NewBox([Capacity]byte{}).IntoRaw()
	// PROOF: IntoRaw handed over sole ownership of a non-nil [Capacity]byte.
	// n is zero, so the initialized prefix is empty.
	inv := proof.Establish[Invariant]()
	return &Vec1024{data: raw.Value(), inv: inv}
}

// Push appends x. Pushing onto a full vector is a programming error and
// panics.
func (v *Vec1024) Push(x byte) {
	v.mustLive("Push")
	if v.n >= Capacity {
		panic(fmt.Sprintf("vec: push onto full vector (len %d)", v.n))
	}

	// PROOF: the invariant is untouched since neither data nor n changed.
	// n < Capacity by the check above, so data+n lies inside the allocation
	// and the write is valid.
	*(*byte)(unsafe.Add(v.data, v.n)) = x

	v.n++
	// PROOF: n was below Capacity and grew by one, so it is at most Capacity.
	// The prefix was initialized up to the old n and the byte at the old n
	// was written just above.
	v.inv = proof.Establish[Invariant]()
}

// Extend appends as much of p as fits and returns how many bytes it took.
func (v *Vec1024) Extend(p []byte) int {
	v.mustLive("Extend")
	k := min(len(p), Capacity-v.n)
	if k == 0 {
		return 0
	}

	// PROOF: the invariant is untouched. n+k <= Capacity, so the k bytes
	// after the prefix lie inside the allocation.
	copy(unsafe.Slice((*byte)(unsafe.Add(v.data, v.n)), k), p[:k])

	v.n += k
	// PROOF: n+k <= Capacity by the choice of k, and the k bytes following
	// the old prefix were copied just above.
	v.inv = proof.Establish[Invariant]()
	return k
}

// Len returns the number of bytes pushed.
func (v *Vec1024) Len() int { return v.n }

// Cap returns Capacity.
func (v *Vec1024) Cap() int { return Capacity }

// At returns the i-th byte. It panics if i is out of range.
func (v *Vec1024) At(i int) byte {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("vec: index %d out of range [0:%d]", i, v.n))
	}
	// PROOF: 0 <= i < n, and the invariant makes the first n bytes readable.
	return ptr.Read(proof.Assume[proof.ValidForRead]((*byte)(unsafe.Add(v.data, i))))
}

// Bytes returns the initialized prefix. The slice aliases the vector's
// storage: do not write to it, and do not use it after Free.
func (v *Vec1024) Bytes() []byte {
	if v.data == nil {
		return nil
	}
	// PROOF: the invariant makes the first n bytes initialized and owned.
	return unsafe.Slice((*byte)(v.data), v.n)
}

// WriteTo writes the initialized prefix to w.
func (v *Vec1024) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.Bytes())
	return int64(n), err
}

// Free releases the storage to where it came from. The vector is unusable
// afterwards; freeing twice panics.
func (v *Vec1024) Free() {
	v.mustLive("Free")
	if v.owner != nil {
		// PROOF: data is the pointer Allocate returned for StorageLayout,
		// unchanged since, and this is the only place that returns it.
		v.owner.Deallocate(proof.Assume[proof.Fresh](v.data), StorageLayout)
	} else {
		// PROOF: data is the pointer IntoRaw returned in NewHeap, unchanged
		// since, and this is the only place that rebuilds the box.
		ptr.FromRaw[[Capacity]byte](proof.Assume[proof.NonNullAligned](v.data)).Drop()
	}
	// The invariant no longer holds: nothing is owned.
	*v = Vec1024{}
}

func (v *Vec1024) mustLive(op string) {
	if v.data == nil {
		panic("vec: " + op + " on a freed or unbuilt vector")
	}
}
