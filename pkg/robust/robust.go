// Package robust holds functions that accept values outside their type's
// usual validity: strings that may hold invalid UTF-8. Their parameters are
// proof.Carrier[proof.Unvalidated, string] to say so in the signature; any
// string can be wrapped with Accept.
package robust

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/rawbytedev/proof"
	"github.com/rawbytedev/proof/internal/assert"
)

// Accept wraps any string. No check is needed since Unvalidated demands
// nothing.
func Accept(s string) proof.Carrier[proof.Unvalidated, string] {
	// PROOF: every string satisfies the empty predicate.
	return proof.Assume[proof.Unvalidated](s)
}

// Print writes msg to w byte for byte. msg need not be valid UTF-8.
func Print(w io.Writer, msg proof.Carrier[proof.Unvalidated, string]) error {
	if _, err := io.WriteString(w, msg.Value()); err != nil {
		return fmt.Errorf("robust print: %w", err)
	}
	return nil
}

// next returns the first valid rune at or after byte i, its start and size.
// Bytes that do not begin a valid encoding are skipped. ok is false when no
// valid rune remains.
func next(s string, i int) (r rune, start, size int, ok bool) {
	for i < len(s) {
		r, size = utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		return r, i, size, true
	}
	return utf8.RuneError, len(s), 0, false
}

// Runes counts the valid runes of s. A rune is valid when it is the first
// complete UTF-8 encoding after the previous valid rune, or after the start.
func Runes(s proof.Carrier[proof.Unvalidated, string]) int {
	str := s.Value()
	count := 0
	for i := 0; ; count++ {
		_, start, size, ok := next(str, i)
		if !ok {
			return count
		}
		i = start + size
	}
}

// Index checks n against s and proves it usable with NthRune.
func Index(s proof.Carrier[proof.Unvalidated, string], n int) (proof.Carrier[proof.InBounds, int], bool) {
	if n < 0 || n >= Runes(s) {
		return proof.Carrier[proof.InBounds, int]{}, false
	}
	// PROOF: checked above against the number of valid runes.
	return proof.Assume[proof.InBounds](n), true
}

// NthRune returns the valid rune with index n, counting from zero.
//
// Safety: s must hold more than n valid runes (see Runes). Otherwise the
// result is unspecified.
func NthRune(s proof.Carrier[proof.Unvalidated, string], n proof.Carrier[proof.InBounds, int]) rune {
	str, k := s.Value(), n.Value()
	for i := 0; ; k-- {
		r, start, size, ok := next(str, i)
		assert.That(ok, "NthRune: index %d past the last valid rune", n.Value())
		if !ok || k == 0 {
			return r
		}
		i = start + size
	}
}
