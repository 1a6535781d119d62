package bigint

import (
	"fmt"
	"math/bits"
)

// Mul sets z = x * y using schoolbook multiplication.
//
// z must be exactly x.Width()+y.Width() words wide and must not alias
// either source; both constraints are contract violations and panic.
// The width requirement is the load-bearing correctness argument: for
// x < 2^(64p) and y < 2^(64q), x*y < 2^(64(p+q)), so a p+q word buffer
// always holds the full product and no overflow check is needed anywhere
// in the loop below.
//
// For every word pair (i, j) the 128-bit partial product is added into
// z[i+j] and z[i+j+1], and any carry out of that double-word add ripples
// one word at a time toward the top until it dies. The size bound above
// guarantees the ripple stops at or before the last word of z.
func (z *Nat) Mul(x, y *Nat) *Nat {
	if len(z.words) != len(x.words)+len(y.words) {
		panic(fmt.Sprintf("bigint: product width %d, need %d+%d",
			len(z.words), len(x.words), len(y.words)))
	}
	if aliases(z.words, x.words) || aliases(z.words, y.words) {
		panic("bigint: product buffer aliases an operand")
	}

	z.Clear()
	for i, xw := range x.words {
		if xw == 0 {
			continue
		}
		for j, yw := range y.words {
			hi, lo := bits.Mul64(xw, yw)

			var c uint64
			z.words[i+j], c = bits.Add64(z.words[i+j], lo, 0)
			z.words[i+j+1], c = bits.Add64(z.words[i+j+1], hi, c)

			// Ripple the remaining single-word carry upward.
			for k := i + j + 2; c != 0; k++ {
				z.words[k], c = bits.Add64(z.words[k], 0, c)
			}
		}
	}
	return z
}
