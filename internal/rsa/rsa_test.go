package rsa

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

// 512-bit test keypair, generated with openssl genrsa. The private key is
// a traditional PKCS#1 RSAPrivateKey, the public key a SubjectPublicKeyInfo.
const (
	testPrivateHex = `
		3082013b020100024100d2f10467f62c9607a6bd85acc1175de8f093940c4567
		2667de7efba8dabd07dfcf45046dbd698bfbc172c0fc0304f282c47b6a3eec53
		7ae34ea8c9f91f2a130d0203010001024049b861c9d3871187eb06214996d20b
		c7f50c1e998b47d96c439e2d657dccc28b1a6f2b55beb39fd1e29ade1dacec67
		eca5bf9c30d6f90a1a48f3c2933a172721022100fc8dfbee8aaa45194bf068b0
		02383e036b247720bd5e6c76dbc9e143a340626f022100d5d1b44d0340693f9a
		a74415281ea55fcf972112b3e61c9a8db7b4803a9cb043022071f0a0ab82f5c4
		8ce01ccb2e352228a02433646769e7f2a94109784eaa953e9302210085cc4dd9
		0b39d92275f249463beec1696d0b932492f261dfcce2b1ceb3deace50221009c
		236a95a6fe1ed80c3f6ee60aeb97d6361c80c102870d4dfe28021edee1cc72`
	testPublicHex = `
		305c300d06092a864886f70d0101010500034b003048024100d2f10467f62c96
		07a6bd85acc1175de8f093940c45672667de7efba8dabd07dfcf45046dbd698b
		fbc172c0fc0304f282c47b6a3eec537ae34ea8c9f91f2a130d0203010001`
	// The same key wrapped in PKCS#8 PrivateKeyInfo.
	testPrivatePKCS8Hex = `
		30820155020100300d06092a864886f70d01010105000482013f3082013b0201
		00024100d2f10467f62c9607a6bd85acc1175de8f093940c45672667de7efba8
		dabd07dfcf45046dbd698bfbc172c0fc0304f282c47b6a3eec537ae34ea8c9f9
		1f2a130d0203010001024049b861c9d3871187eb06214996d20bc7f50c1e998b
		47d96c439e2d657dccc28b1a6f2b55beb39fd1e29ade1dacec67eca5bf9c30d6
		f90a1a48f3c2933a172721022100fc8dfbee8aaa45194bf068b002383e036b24
		7720bd5e6c76dbc9e143a340626f022100d5d1b44d0340693f9aa74415281ea5
		5fcf972112b3e61c9a8db7b4803a9cb043022071f0a0ab82f5c48ce01ccb2e35
		2228a02433646769e7f2a94109784eaa953e9302210085cc4dd90b39d92275f2
		49463beec1696d0b932492f261dfcce2b1ceb3deace50221009c236a95a6fe1e
		d80c3f6ee60aeb97d6361c80c102870d4dfe28021edee1cc72`
	// "Hello world\n" encrypted under the public key above.
	testCiphertextHex = `
		39ff5c54653e6aabc06291b2bf1d735bd54cbd160f24c9f5a7dd94d6f8aed3a0
		9f4dff8d813447ff2a8796d3175d934d7b27884fec439cedb3f219893843f941`
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.NewReplacer("\n", "", "\t", "", " ", "").Replace(s))
	if err != nil {
		t.Fatalf("bad hex in test vector: %v", err)
	}
	return b
}

func testKeys(t *testing.T) (priv, pub *Key) {
	t.Helper()
	priv, err := ParsePrivateKey(mustHex(t, testPrivateHex))
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	pub, err = ParsePublicKey(mustHex(t, testPublicHex))
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	return priv, pub
}

func TestParseKeys(t *testing.T) {
	priv, pub := testKeys(t)

	if priv.Size() != 64 || pub.Size() != 64 {
		t.Errorf("key sizes = %d, %d; want 64, 64", priv.Size(), pub.Size())
	}
	if priv.Modulus.Cmp(pub.Modulus) != 0 {
		t.Error("private and public moduli differ")
	}
	if pub.Exponent.Words()[0] != 65537 {
		t.Errorf("public exponent = %v, want 65537", pub.Exponent.Words()[0])
	}
}

func TestParsePrivateKeyPKCS8(t *testing.T) {
	fromPKCS8, err := ParsePrivateKey(mustHex(t, testPrivatePKCS8Hex))
	if err != nil {
		t.Fatalf("ParsePrivateKey(PKCS#8): %v", err)
	}
	fromPKCS1, _ := testKeys(t)

	if fromPKCS8.Modulus.Cmp(fromPKCS1.Modulus) != 0 ||
		fromPKCS8.Exponent.Cmp(fromPKCS1.Exponent) != 0 {
		t.Error("PKCS#8 and PKCS#1 parses disagree")
	}
}

func TestParseKeyErrors(t *testing.T) {
	if _, err := ParsePrivateKey([]byte{0x30, 0x00}); err == nil {
		t.Error("ParsePrivateKey accepted an empty SEQUENCE")
	}
	if _, err := ParsePublicKey([]byte("not der")); err == nil {
		t.Error("ParsePublicKey accepted garbage")
	}
}

func TestDecryptKnownCiphertext(t *testing.T) {
	priv, _ := testKeys(t)

	plaintext, err := Decrypt(priv, mustHex(t, testCiphertextHex))
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if want := []byte("Hello world\n"); !bytes.Equal(plaintext, want) {
		t.Errorf("Decrypt = %q, want %q", plaintext, want)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	priv, pub := testKeys(t)

	msg := []byte("Hello world\n")
	ct, err := Encrypt(rand.Reader, pub, msg)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(ct) != pub.Size() {
		t.Errorf("ciphertext length = %d, want %d", len(ct), pub.Size())
	}

	got, err := Decrypt(priv, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Errorf("round trip = %q, want %q", got, msg)
	}
}

func TestEncryptMessageTooLong(t *testing.T) {
	_, pub := testKeys(t)

	msg := make([]byte, pub.Size()-10) // one byte over the padding budget
	if _, err := Encrypt(rand.Reader, pub, msg); err != ErrMessageTooLong {
		t.Errorf("Encrypt = %v, want ErrMessageTooLong", err)
	}
}

func TestDecryptErrors(t *testing.T) {
	priv, pub := testKeys(t)

	t.Run("wrong length", func(t *testing.T) {
		if _, err := Decrypt(priv, []byte{1, 2, 3}); err != ErrDecryption {
			t.Errorf("Decrypt = %v, want ErrDecryption", err)
		}
	})

	t.Run("garbage block", func(t *testing.T) {
		ct := make([]byte, priv.Size())
		ct[0] = 0x01 // below the modulus, decrypts to noise
		if _, err := Decrypt(priv, ct); err != ErrDecryption {
			t.Errorf("Decrypt = %v, want ErrDecryption", err)
		}
	})

	t.Run("corrupted ciphertext", func(t *testing.T) {
		ct, err := Encrypt(rand.Reader, pub, []byte("hi"))
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		ct[len(ct)-1] ^= 0xff
		if _, err := Decrypt(priv, ct); err != ErrDecryption {
			t.Errorf("Decrypt = %v, want ErrDecryption", err)
		}
	})
}

func TestSignVerify(t *testing.T) {
	priv, pub := testKeys(t)

	digest := sha256.Sum256([]byte("message to sign"))
	sig, err := Sign(priv, crypto.SHA256, digest[:])
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != priv.Size() {
		t.Errorf("signature length = %d, want %d", len(sig), priv.Size())
	}

	if err := Verify(pub, crypto.SHA256, digest[:], sig); err != nil {
		t.Errorf("Verify: %v", err)
	}

	t.Run("signing is deterministic", func(t *testing.T) {
		again, err := Sign(priv, crypto.SHA256, digest[:])
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		if !bytes.Equal(sig, again) {
			t.Error("two signatures over one digest differ")
		}
	})

	t.Run("wrong digest fails", func(t *testing.T) {
		other := sha256.Sum256([]byte("a different message"))
		if err := Verify(pub, crypto.SHA256, other[:], sig); err != ErrVerification {
			t.Errorf("Verify = %v, want ErrVerification", err)
		}
	})

	t.Run("zeroed signature fails", func(t *testing.T) {
		zero := make([]byte, len(sig))
		if err := Verify(pub, crypto.SHA256, digest[:], zero); err != ErrVerification {
			t.Errorf("Verify = %v, want ErrVerification", err)
		}
	})

	t.Run("truncated signature fails", func(t *testing.T) {
		if err := Verify(pub, crypto.SHA256, digest[:], sig[:len(sig)-1]); err != ErrVerification {
			t.Errorf("Verify = %v, want ErrVerification", err)
		}
	})
}

func TestSignRejectsBadDigestLength(t *testing.T) {
	priv, _ := testKeys(t)
	if _, err := Sign(priv, crypto.SHA256, []byte("short")); err == nil {
		t.Error("Sign accepted a digest of the wrong length")
	}
}
