// Package common holds size and alignment arithmetic shared by the pointer,
// allocator and vector packages.
package common

import "unsafe"

// Sizeof returns the size of T in bytes.
func Sizeof[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Alignof returns the alignment of T in bytes.
func Alignof[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// IsPowerOfTwo reports whether x is a non-zero power of two.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}

// AlignUp rounds n up to a multiple of align. align must be a power of two.
func AlignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// IsAligned reports whether addr is a multiple of align.
func IsAligned(addr, align uintptr) bool {
	if align == 0 {
		return false
	}
	return addr%align == 0
}

// BaseAlign returns the largest power of two, capped at max, that divides
// addr.
func BaseAlign(addr, max uintptr) uintptr {
	if addr == 0 {
		return max
	}
	a := addr & -addr
	if a > max {
		return max
	}
	return a
}

// Overlaps reports whether [a, a+an) and [b, b+bn) share a byte.
func Overlaps(a uintptr, an uintptr, b uintptr, bn uintptr) bool {
	return a < b+bn && b < a+an
}
