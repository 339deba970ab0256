package alloc

import (
	"sync"
	"unsafe"

	"github.com/rawbytedev/proof"
)

// Locked serializes every call to the allocator it wraps. The strategies in
// this package assume a single owner; wrap them in Locked before sharing
// one between goroutines.
type Locked struct {
	mu   sync.Mutex
	next Allocator
}

func NewLocked(next Allocator) *Locked {
	return &Locked{next: next}
}

func (a *Locked) Allocate(l Layout) (proof.Carrier[proof.Fresh, unsafe.Pointer], error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next.Allocate(l)
}

func (a *Locked) Deallocate(p proof.Carrier[proof.Fresh, unsafe.Pointer], l Layout) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next.Deallocate(p, l)
}

// Stats reports the wrapped allocator's usage, or zero if it keeps none.
func (a *Locked) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	if r, ok := a.next.(StatsReporter); ok {
		return r.Stats()
	}
	return Stats{}
}
