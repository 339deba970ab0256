package alloc

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedLayout = errors.New("unsupported layout")
	ErrOutOfSpace        = errors.New("out of space")
)

// Kind says why an allocation failed. Callers branch on it, or on the
// sentinels through errors.Is.
type Kind uint8

const (
	KindUnsupportedLayout Kind = iota + 1
	KindOutOfSpace
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedLayout:
		return "unsupported_layout"
	case KindOutOfSpace:
		return "out_of_space"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindUnsupportedLayout:
		return ErrUnsupportedLayout
	case KindOutOfSpace:
		return ErrOutOfSpace
	default:
		return nil
	}
}

// Error is returned by Allocate. Both kinds are recoverable: the allocator
// state is unchanged by a failed call.
type Error struct {
	Kind   Kind
	Layout Layout
	Reason string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason == "" {
		return fmt.Sprintf("%s for layout %s", e.Kind.sentinel(), e.Layout)
	}
	return fmt.Sprintf("%s for layout %s: %s", e.Kind.sentinel(), e.Layout, e.Reason)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind.sentinel()
}

func unsupported(l Layout, reason string) error {
	return &Error{Kind: KindUnsupportedLayout, Layout: l, Reason: reason}
}

func outOfSpace(l Layout, reason string) error {
	return &Error{Kind: KindOutOfSpace, Layout: l, Reason: reason}
}

// KindOf extracts the failure kind from err, or 0 when err is not an
// allocation error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
