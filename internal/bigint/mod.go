package bigint

// Reduce sets z = v mod m. z and m must share one width; v may be any
// width (typically a double-width product). A zero modulus returns
// ErrZeroModulus: reducing by zero would otherwise loop forever.
//
// The reduction is binary long division: a copy of the modulus is shifted
// up to align with the value's highest bit, then repeatedly compared,
// conditionally subtracted, and shifted back down one bit at a time until
// the remainder is below the modulus.
func (z *Nat) Reduce(v, m *Nat) error {
	assertSameWidth(z, m)
	if m.IsZero() {
		return ErrZeroModulus
	}

	width := len(v.words)
	if w := len(m.words); w > width {
		width = w
	}
	t := v.Widened(width)
	sm := m.Widened(width)

	if shift := t.BitLen() - sm.BitLen(); shift > 0 {
		sm.Shl(sm, uint(shift))
		for s := shift; s > 0; s-- {
			if t.Cmp(sm) >= 0 {
				t.Sub(t, sm)
			}
			sm.Shr(sm, 1)
		}
	}
	if t.Cmp(sm) >= 0 {
		t.Sub(t, sm)
	}

	// t < m, so every word above m's width is zero.
	z.Clear()
	copy(z.words, t.words[:len(z.words)])
	return nil
}

// ModExp sets z = base^exp mod m by binary square-and-multiply.
//
// z, base and m must share one width; exp may be any width, and the cost
// is one squaring plus at most one multiplication (each a Mul and a
// Reduce) per exponent bit, scanned most significant bit first. A zero
// modulus returns ErrZeroModulus.
//
// RSA encryption/verification and decryption/signing both call through
// this one contract; the engine has no notion of public versus private
// exponents.
func (z *Nat) ModExp(base, exp, m *Nat) error {
	assertSameWidth(z, m)
	assertSameWidth(base, m)
	if m.IsZero() {
		return ErrZeroModulus
	}

	n := len(m.words)
	wide := New(2 * n)

	baseRed := New(n)
	if err := baseRed.Reduce(base, m); err != nil {
		return err
	}
	result := New(n)
	if err := result.Reduce(New(n).SetUint64(1), m); err != nil {
		return err
	}

	for i := exp.BitLen() - 1; i >= 0; i-- {
		wide.Mul(result, result)
		if err := result.Reduce(wide, m); err != nil {
			return err
		}
		if exp.Bit(uint(i)) == 1 {
			wide.Mul(result, baseRed)
			if err := result.Reduce(wide, m); err != nil {
				return err
			}
		}
	}

	z.Set(result)
	return nil
}
