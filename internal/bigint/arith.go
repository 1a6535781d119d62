package bigint

import "math/bits"

// Add sets z = x + y and returns the final carry-out bit (1 when the true
// sum is 2^(64*width) or more). All three operands must share one width;
// z may alias x or y. The carry is reported, never dropped: overflow is an
// expected outcome that callers consume directly.
func (z *Nat) Add(x, y *Nat) (carry uint64) {
	assertSameWidth(z, x)
	assertSameWidth(z, y)
	for i := range z.words {
		z.words[i], carry = bits.Add64(x.words[i], y.words[i], carry)
	}
	return carry
}

// Sub sets z = x - y and returns the final borrow-out bit. When x < y the
// stored result is the two's-complement wraparound value and borrow is 1.
// All operands must share one width; z may alias x or y.
func (z *Nat) Sub(x, y *Nat) (borrow uint64) {
	assertSameWidth(z, x)
	assertSameWidth(z, y)
	for i := range z.words {
		z.words[i], borrow = bits.Sub64(x.words[i], y.words[i], borrow)
	}
	return borrow
}

// Cmp compares x and y numerically, returning -1, 0 or +1. The scan runs
// most-significant word first; because words are unsigned and uniformly
// weighted this is exactly numeric comparison.
func (x *Nat) Cmp(y *Nat) int {
	assertSameWidth(x, y)
	for i := len(x.words) - 1; i >= 0; i-- {
		switch {
		case x.words[i] < y.words[i]:
			return -1
		case x.words[i] > y.words[i]:
			return 1
		}
	}
	return 0
}

// Shl sets z = x << s, discarding bits shifted past the top of the width.
// z may alias x.
func (z *Nat) Shl(x *Nat, s uint) *Nat {
	assertSameWidth(z, x)
	n := len(z.words)
	wordShift := int(s / 64)
	bitShift := s % 64
	if wordShift >= n {
		return z.Clear()
	}
	if bitShift == 0 {
		copy(z.words[wordShift:], x.words[:n-wordShift])
	} else {
		for i := n - 1; i > wordShift; i-- {
			z.words[i] = x.words[i-wordShift]<<bitShift |
				x.words[i-wordShift-1]>>(64-bitShift)
		}
		z.words[wordShift] = x.words[0] << bitShift
	}
	clear(z.words[:wordShift])
	return z
}

// Shr sets z = x >> s, discarding bits shifted out at the bottom.
// z may alias x.
func (z *Nat) Shr(x *Nat, s uint) *Nat {
	assertSameWidth(z, x)
	n := len(z.words)
	wordShift := int(s / 64)
	bitShift := s % 64
	if wordShift >= n {
		return z.Clear()
	}
	if bitShift == 0 {
		copy(z.words[:n-wordShift], x.words[wordShift:])
	} else {
		for i := 0; i < n-wordShift-1; i++ {
			z.words[i] = x.words[i+wordShift]>>bitShift |
				x.words[i+wordShift+1]<<(64-bitShift)
		}
		z.words[n-wordShift-1] = x.words[n-1] >> bitShift
	}
	clear(z.words[n-wordShift:])
	return z
}

// IsZero reports whether x is zero.
func (x *Nat) IsZero() bool {
	for _, w := range x.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// BitLen returns the position of the highest set bit plus one, or 0 when
// x is zero. The exponentiation loop uses this to bound its bit scan.
func (x *Nat) BitLen() int {
	for i := len(x.words) - 1; i >= 0; i-- {
		if x.words[i] != 0 {
			return i*64 + bits.Len64(x.words[i])
		}
	}
	return 0
}

// Bit returns bit i of x (0 or 1). Bits beyond the width read as 0.
func (x *Nat) Bit(i uint) uint64 {
	word := int(i / 64)
	if word >= len(x.words) {
		return 0
	}
	return x.words[word] >> (i % 64) & 1
}

// SetBit sets bit i of x to 1. Bits beyond the width are ignored.
func (x *Nat) SetBit(i uint) *Nat {
	word := int(i / 64)
	if word < len(x.words) {
		x.words[word] |= 1 << (i % 64)
	}
	return x
}
