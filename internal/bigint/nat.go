// Package bigint implements fixed-width unsigned big-integer arithmetic.
//
// A value is a sequence of 64-bit words in little-endian word order whose
// width is chosen by the caller at each call site and never changes during
// the value's lifetime. The package is the numeric core beneath the RSA
// layer: it provides word-level add/subtract/compare/shift, full-width
// schoolbook multiplication, modular reduction, and modular exponentiation.
//
// All operations are pure and synchronous. Values do not share storage
// unless the caller aliases them deliberately; the only aliasing discipline
// required is that a destination buffer must not be concurrently used by
// another in-flight call.
package bigint

import (
	"errors"
	"fmt"
)

// Errors reported by the encoding bridge and the modular operations.
// Width and aliasing violations are programming errors and panic instead.
var (
	// ErrZeroModulus is returned by Reduce and ModExp when the modulus is zero.
	ErrZeroModulus = errors.New("bigint: modulus is zero")
	// ErrValueTooLarge is returned when a byte string or value does not fit
	// the destination capacity.
	ErrValueTooLarge = errors.New("bigint: value exceeds destination capacity")
)

// Nat is an unsigned integer of fixed width, stored as little-endian 64-bit
// words: the represented value is the sum of words[i] << (64*i).
//
// The width (word count) is fixed at construction. A Nat never reallocates
// its storage and never represents a value of 2^(64*width) or more.
type Nat struct {
	words []uint64
}

// New returns a zero-valued Nat of the given width in words.
func New(width int) *Nat {
	if width <= 0 {
		panic(fmt.Sprintf("bigint: invalid width %d", width))
	}
	return &Nat{words: make([]uint64, width)}
}

// FromWords returns a Nat view aliasing the given word slice without
// copying. Mutating operations on the returned value write through to the
// caller's storage; the engine never touches words outside the slice.
func FromWords(words []uint64) *Nat {
	if len(words) == 0 {
		panic("bigint: empty word slice")
	}
	return &Nat{words: words}
}

// Width returns the fixed word count of x.
func (x *Nat) Width() int { return len(x.words) }

// Words returns the underlying little-endian word slice of x. The slice
// aliases x's storage.
func (x *Nat) Words() []uint64 { return x.words }

// Clear sets x to zero in place.
func (x *Nat) Clear() *Nat {
	clear(x.words)
	return x
}

// SetUint64 sets x to the single-word value v, zeroing all higher words.
func (x *Nat) SetUint64(v uint64) *Nat {
	x.Clear()
	x.words[0] = v
	return x
}

// Set copies y into x. Both values must have the same width.
func (x *Nat) Set(y *Nat) *Nat {
	assertSameWidth(x, y)
	copy(x.words, y.words)
	return x
}

// Widened returns a new Nat of the given larger width holding the same
// value. Widening is the explicit step required before combining values of
// different widths.
func (x *Nat) Widened(width int) *Nat {
	if width < len(x.words) {
		panic(fmt.Sprintf("bigint: widening %d words to %d", len(x.words), width))
	}
	z := New(width)
	copy(z.words, x.words)
	return z
}

// Truncated returns a new Nat of the given smaller width holding the low
// words of x. It returns ErrValueTooLarge if any discarded word is nonzero:
// truncation never silently drops value.
func (x *Nat) Truncated(width int) (*Nat, error) {
	if width > len(x.words) {
		panic(fmt.Sprintf("bigint: truncating %d words to %d", len(x.words), width))
	}
	for _, w := range x.words[width:] {
		if w != 0 {
			return nil, ErrValueTooLarge
		}
	}
	z := New(width)
	copy(z.words, x.words[:width])
	return z, nil
}

// Clone returns an independent copy of x.
func (x *Nat) Clone() *Nat {
	z := New(len(x.words))
	copy(z.words, x.words)
	return z
}

// assertSameWidth panics when the operands disagree on width. Mixed-width
// arithmetic requires an explicit Widened/Truncated step by the caller.
func assertSameWidth(x, y *Nat) {
	if len(x.words) != len(y.words) {
		panic(fmt.Sprintf("bigint: width mismatch %d != %d", len(x.words), len(y.words)))
	}
}

// aliases reports whether two word slices share backing storage.
// Slices cut from the same array share the final addressable element of
// their capacity, which is what this comparison detects.
func aliases(a, b []uint64) bool {
	return cap(a) > 0 && cap(b) > 0 &&
		&a[0:cap(a)][cap(a)-1] == &b[0:cap(b)][cap(b)-1]
}
