// Package assert backs unchecked preconditions with runtime checks in debug
// builds. Build with -tags proofcheck to turn them on; otherwise every
// function here is an empty body the compiler inlines away.
//
// Nothing outside a trusted constructor or an unchecked operation should
// call into this package: checked code reports failures through errors or
// panics of its own.
package assert
