// Package proof attaches invariants to values at zero runtime cost.
//
// A Carrier[P, V] pairs a value with a zero-size marker P naming a predicate
// the value satisfies beyond what its Go type guarantees. Holding a live
// Carrier is the evidence: nothing is checked at runtime.
//
// Three rules keep the evidence honest:
//
//   - Assume is the only way to manufacture a carrier. Every call site must
//     carry a PROOF comment explaining why the predicate holds there. Those
//     comments are the only place a defect can hide, so review them.
//   - A received carrier is forwarded unchanged. Forwarding needs no comment.
//   - Value forgets the proof and is always safe. Weaken narrows a proof to
//     one it implies and is always safe. There is no way to strengthen a
//     proof except a new Assume.
//
// Go lets any type be zero-valued, so a zero Carrier can be written without
// Assume. A zero Carrier is evidence of nothing; functions here return one
// only next to a non-nil error or a false ok.
package proof

// Carrier is a value of type V known to satisfy the predicate named by P.
//
// The marker is the first field so that a zero-size P adds neither size nor
// padding: a Carrier has the exact layout of V.
type Carrier[P, V any] struct {
	proof P
	value V
}

// Assume wraps v with the claim that it satisfies P.
//
// PROOF: callers must justify the claim in a comment at the call site.
func Assume[P, V any](v V) Carrier[P, V] {
	return Carrier[P, V]{value: v}
}

// Value returns the wrapped value unchanged, forgetting the proof.
func (c Carrier[P, V]) Value() V {
	return c.value
}

// Proof is a carrier over nothing: a stand-alone witness that P holds, used
// to guard invariants spanning several fields of a struct.
type Proof[P any] struct {
	proof P
}

// Establish manufactures a stand-alone proof of P.
//
// PROOF: callers must justify the claim in a comment at the call site.
func Establish[P any]() Proof[P] {
	return Proof[P]{}
}

// Implier is satisfied by a marker whose predicate implies the predicate of To.
type Implier[To any] interface {
	Implies() To
}

// Weaken narrows the proof carried by c to one implied by it. The value is
// untouched. Since From implies To no new justification is needed.
func Weaken[To any, From Implier[To], V any](c Carrier[From, V]) Carrier[To, V] {
	return Carrier[To, V]{value: c.value}
}
