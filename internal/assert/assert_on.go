//go:build proofcheck

package assert

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/proof/internal/common"
)

// Enabled reports whether debug assertions are compiled in.
const Enabled = true

// NotNil panics when p is nil.
func NotNil(p unsafe.Pointer, what string) {
	if p == nil {
		panic(fmt.Sprintf("proofcheck: %s: nil pointer", what))
	}
}

// Aligned panics when p is not a multiple of align.
func Aligned(p unsafe.Pointer, align uintptr, what string) {
	if !common.IsAligned(uintptr(p), align) {
		panic(fmt.Sprintf("proofcheck: %s: pointer %p not aligned to %d", what, p, align))
	}
}

// That panics with the formatted message when cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic("proofcheck: " + fmt.Sprintf(format, args...))
	}
}
