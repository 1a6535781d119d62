package bigint

// This file is the only place the external big-endian byte representation
// meets the internal little-endian word order. Encoded keys, ciphertexts
// and signatures all pass through here on their way in and out of the
// engine.

// SetBytes sets x from a big-endian byte string, zero-extending the most
// significant word when the byte length is not a multiple of 8. A byte
// string longer than x's capacity returns ErrValueTooLarge before any
// words are written: a malformed encoding never reaches the arithmetic.
func (x *Nat) SetBytes(b []byte) error {
	if len(b) > len(x.words)*8 {
		return ErrValueTooLarge
	}
	x.Clear()
	for i := len(b) - 1; i >= 0; i-- {
		pos := len(b) - 1 - i
		x.words[pos/8] |= uint64(b[i]) << (pos % 8 * 8)
	}
	return nil
}

// FillBytes writes x to b as a big-endian byte string of exactly len(b)
// bytes, left-padding with zeros. The surrounding protocol fixes the
// length (a signature is always as long as the modulus). It returns
// ErrValueTooLarge if x does not fit in b.
func (x *Nat) FillBytes(b []byte) error {
	if x.BitLen() > len(b)*8 {
		return ErrValueTooLarge
	}
	for i := range b {
		b[i] = 0
	}
	for pos := 0; pos < len(b) && pos/8 < len(x.words); pos++ {
		b[len(b)-1-pos] = byte(x.words[pos/8] >> (pos % 8 * 8))
	}
	return nil
}

// Bytes returns x as a minimal big-endian byte string, with no leading
// zero bytes. The zero value encodes as an empty slice.
func (x *Nat) Bytes() []byte {
	n := (x.BitLen() + 7) / 8
	b := make([]byte, n)
	// Cannot fail: the buffer is sized from the bit length.
	_ = x.FillBytes(b)
	return b
}
