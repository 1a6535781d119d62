package bigint

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestReduceExamples(t *testing.T) {
	cases := []struct {
		name string
		v    []uint64
		m    []uint64
		want uint64
	}{
		{"value below modulus", []uint64{7}, []uint64{13}, 7},
		{"value equal to modulus", []uint64{13}, []uint64{13}, 0},
		{"single subtraction", []uint64{20}, []uint64{13}, 7},
		{"wide value", []uint64{0, 1}, []uint64{13}, 3}, // 2^64 mod 13
		{"narrow value wide modulus", []uint64{9}, []uint64{13, 0}, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := FromWords(tc.m)
			z := New(m.Width())
			if err := z.Reduce(FromWords(tc.v), m); err != nil {
				t.Fatalf("Reduce: %v", err)
			}
			if got := toBig(z); !got.IsUint64() || got.Uint64() != tc.want {
				t.Errorf("Reduce = %v, want %d", z.Words(), tc.want)
			}
		})
	}
}

func TestReduceAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		vWidth := 1 + rng.Intn(8)
		mWidth := 1 + rng.Intn(4)
		v := randomNat(rng, vWidth)
		m := randomNat(rng, mWidth)
		if m.IsZero() {
			m.SetUint64(1)
		}

		z := New(mWidth)
		if err := z.Reduce(v, m); err != nil {
			t.Fatalf("Reduce: %v", err)
		}
		want := new(big.Int).Mod(toBig(v), toBig(m))
		if got := toBig(z); got.Cmp(want) != 0 {
			t.Fatalf("%v mod %v = %v, want %v", toBig(v), toBig(m), got, want)
		}
	}
}

func TestReduceZeroModulus(t *testing.T) {
	z := New(2)
	err := z.Reduce(FromWords([]uint64{5, 0}), New(2))
	if err != ErrZeroModulus {
		t.Errorf("Reduce by zero = %v, want ErrZeroModulus", err)
	}
}

func TestModExpExamples(t *testing.T) {
	modexp := func(base, exp, mod uint64) uint64 {
		t.Helper()
		m := FromWords([]uint64{mod})
		z := New(1)
		err := z.ModExp(FromWords([]uint64{base}), FromWords([]uint64{exp}), m)
		if err != nil {
			t.Fatalf("ModExp(%d, %d, %d): %v", base, exp, mod, err)
		}
		return z.Words()[0]
	}

	cases := []struct {
		base, exp, mod, want uint64
	}{
		{2, 10, 1000, 24},
		{3, 0, 7, 1},   // x^0 = 1
		{0, 5, 7, 0},   // 0^x = 0 for x > 0
		{5, 1, 7, 5},   // x^1 = x
		{4, 13, 497, 445},
		{7, 3, 1, 0}, // modulus one: everything reduces to zero
	}
	for _, tc := range cases {
		if got := modexp(tc.base, tc.exp, tc.mod); got != tc.want {
			t.Errorf("%d^%d mod %d = %d, want %d", tc.base, tc.exp, tc.mod, got, tc.want)
		}
	}
}

func TestModExpAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		mWidth := 1 + rng.Intn(3)
		base := randomNat(rng, mWidth)
		exp := randomNat(rng, 1+rng.Intn(2))
		m := randomNat(rng, mWidth)
		if m.IsZero() {
			m.SetUint64(3)
		}

		z := New(mWidth)
		if err := z.ModExp(base, exp, m); err != nil {
			t.Fatalf("ModExp: %v", err)
		}
		want := new(big.Int).Exp(toBig(base), toBig(exp), toBig(m))
		if got := toBig(z); got.Cmp(want) != 0 {
			t.Fatalf("%v^%v mod %v = %v, want %v",
				toBig(base), toBig(exp), toBig(m), got, want)
		}
	}
}

// TestModExpRSAIdentity checks the RSA round trip on a textbook-sized key:
// m = 61*53 = 3233, lambda(m) = 780, e = 17, d = 413 (e*d = 7021 = 9*780+1).
func TestModExpRSAIdentity(t *testing.T) {
	m := FromWords([]uint64{3233})
	e := FromWords([]uint64{17})
	d := FromWords([]uint64{413})

	for x := uint64(0); x < 3233; x += 37 {
		c := New(1)
		if err := c.ModExp(FromWords([]uint64{x}), e, m); err != nil {
			t.Fatalf("encrypt %d: %v", x, err)
		}
		p := New(1)
		if err := p.ModExp(c, d, m); err != nil {
			t.Fatalf("decrypt %d: %v", x, err)
		}
		if got := p.Words()[0]; got != x {
			t.Fatalf("decrypt(encrypt(%d)) = %d", x, got)
		}
	}
}

func TestModExpZeroModulus(t *testing.T) {
	z := New(1)
	err := z.ModExp(FromWords([]uint64{5}), FromWords([]uint64{3}), New(1))
	if err != ErrZeroModulus {
		t.Errorf("ModExp with zero modulus = %v, want ErrZeroModulus", err)
	}
}

func BenchmarkModExp512(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	base := randomNat(rng, 8)
	exp := randomNat(rng, 8)
	m := randomNat(rng, 8)
	m.SetBit(0) // odd, as an RSA modulus would be
	z := New(8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := z.ModExp(base, exp, m); err != nil {
			b.Fatal(err)
		}
	}
}
