package bigint

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestSetBytes(t *testing.T) {
	t.Run("full width", func(t *testing.T) {
		x := New(2)
		err := x.SetBytes([]byte{
			0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
			0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
		})
		if err != nil {
			t.Fatalf("SetBytes: %v", err)
		}
		want := []uint64{0x090a0b0c0d0e0f10, 0x0102030405060708}
		if got := x.Words(); got[0] != want[0] || got[1] != want[1] {
			t.Errorf("words = %x, want %x", got, want)
		}
	})

	t.Run("zero extends partial top word", func(t *testing.T) {
		x := New(2)
		if err := x.SetBytes([]byte{0xab, 0xcd, 0xef}); err != nil {
			t.Fatalf("SetBytes: %v", err)
		}
		if got := x.Words(); got[0] != 0xabcdef || got[1] != 0 {
			t.Errorf("words = %x, want [abcdef 0]", got)
		}
	})

	t.Run("empty input is zero", func(t *testing.T) {
		x := New(2).SetUint64(99)
		if err := x.SetBytes(nil); err != nil {
			t.Fatalf("SetBytes: %v", err)
		}
		if !x.IsZero() {
			t.Errorf("SetBytes(nil) = %v, want zero", x.Words())
		}
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		x := New(1)
		input := make([]byte, 9)
		if err := x.SetBytes(input); err != ErrValueTooLarge {
			t.Errorf("SetBytes error = %v, want ErrValueTooLarge", err)
		}
	})
}

func TestFillBytes(t *testing.T) {
	t.Run("pads to requested length", func(t *testing.T) {
		x := New(1).SetUint64(0xabcd)
		buf := make([]byte, 8)
		if err := x.FillBytes(buf); err != nil {
			t.Fatalf("FillBytes: %v", err)
		}
		want := []byte{0, 0, 0, 0, 0, 0, 0xab, 0xcd}
		if !bytes.Equal(buf, want) {
			t.Errorf("FillBytes = %x, want %x", buf, want)
		}
	})

	t.Run("rejects short buffer", func(t *testing.T) {
		x := New(1).SetUint64(0x10000)
		buf := make([]byte, 2)
		if err := x.FillBytes(buf); err != ErrValueTooLarge {
			t.Errorf("FillBytes error = %v, want ErrValueTooLarge", err)
		}
	})

	t.Run("overwrites stale buffer contents", func(t *testing.T) {
		x := New(1).SetUint64(1)
		buf := []byte{0xff, 0xff, 0xff}
		if err := x.FillBytes(buf); err != nil {
			t.Fatalf("FillBytes: %v", err)
		}
		if !bytes.Equal(buf, []byte{0, 0, 1}) {
			t.Errorf("FillBytes = %x, want 000001", buf)
		}
	})
}

func TestBytesMinimal(t *testing.T) {
	x := New(4).SetUint64(0x1234)
	if got := x.Bytes(); !bytes.Equal(got, []byte{0x12, 0x34}) {
		t.Errorf("Bytes = %x, want 1234", got)
	}
	if got := New(2).Bytes(); len(got) != 0 {
		t.Errorf("Bytes(0) = %x, want empty", got)
	}
}

// TestEncodingRoundTrip checks that decoding a byte string and re-encoding
// it at the same length is byte-exact, including leading zeros.
func TestEncodingRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		width := 1 + rng.Intn(8)
		length := rng.Intn(width*8 + 1)
		in := make([]byte, length)
		rng.Read(in)

		x := New(width)
		if err := x.SetBytes(in); err != nil {
			t.Fatalf("SetBytes(%d bytes into %d words): %v", length, width, err)
		}
		out := make([]byte, length)
		if err := x.FillBytes(out); err != nil {
			t.Fatalf("FillBytes: %v", err)
		}
		if !bytes.Equal(in, out) {
			t.Fatalf("round trip mismatch: in %x out %x", in, out)
		}
	}
}
