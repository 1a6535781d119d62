package rsa

import (
	"crypto"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/rsacore/internal/bigint"
)

var (
	// ErrMessageTooLong is returned when a plaintext does not fit the
	// modulus after padding.
	ErrMessageTooLong = errors.New("rsa: message too long for key size")
	// ErrDecryption is returned when a ciphertext does not decrypt to a
	// well-formed padded message.
	ErrDecryption = errors.New("rsa: decryption error")
	// ErrVerification is returned when a signature does not match the
	// digest under the given public key.
	ErrVerification = errors.New("rsa: verification error")
)

// minPadLen is the minimum PKCS#1 v1.5 padding string length. Together
// with the three framing bytes it costs 11 bytes of every block.
const minPadLen = 8

// digestInfoPrefixes holds the precomputed DER prefix of the DigestInfo
// structure for each supported hash. Appending the raw digest to the
// prefix yields the complete encoding signed by PKCS#1 v1.5.
var digestInfoPrefixes = map[crypto.Hash][]byte{
	crypto.MD5: {0x30, 0x20, 0x30, 0x0c, 0x06, 0x08, 0x2a, 0x86, 0x48, 0x86,
		0xf7, 0x0d, 0x02, 0x05, 0x05, 0x00, 0x04, 0x10},
	crypto.SHA1: {0x30, 0x21, 0x30, 0x09, 0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02,
		0x1a, 0x05, 0x00, 0x04, 0x14},
	crypto.SHA256: {0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48,
		0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20},
	crypto.SHA384: {0x30, 0x41, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48,
		0x01, 0x65, 0x03, 0x04, 0x02, 0x02, 0x05, 0x00, 0x04, 0x30},
	crypto.SHA512: {0x30, 0x51, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48,
		0x01, 0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00, 0x04, 0x40},
}

// transform applies the raw RSA permutation in^exponent mod modulus and
// returns the result as a modulus-length byte string. It is the single
// funnel between the padded byte world and the engine: every public and
// private operation passes through here.
func (k *Key) transform(in []byte) ([]byte, error) {
	width := k.Modulus.Width()
	m := bigint.New(width)
	if err := m.SetBytes(in); err != nil {
		return nil, fmt.Errorf("rsa: input wider than modulus: %w", err)
	}
	if m.Cmp(k.Modulus) >= 0 {
		return nil, errors.New("rsa: input out of range")
	}

	out := bigint.New(width)
	if err := out.ModExp(m, k.Exponent, k.Modulus); err != nil {
		return nil, fmt.Errorf("rsa: %w", err)
	}

	buf := make([]byte, k.size)
	if err := out.FillBytes(buf); err != nil {
		return nil, fmt.Errorf("rsa: %w", err)
	}
	return buf, nil
}

// Encrypt encrypts msg under the public key using PKCS#1 v1.5 type 2
// padding with random nonzero pad bytes from random. The ciphertext is
// always Size() bytes. Because the padding is random, a plaintext
// encrypts to a different ciphertext on every call.
func Encrypt(random io.Reader, pub *Key, msg []byte) ([]byte, error) {
	k := pub.Size()
	if len(msg) > k-minPadLen-3 {
		return nil, ErrMessageTooLong
	}

	em := make([]byte, k)
	em[0] = 0x00
	em[1] = 0x02
	pad := em[2 : k-len(msg)-1]
	if err := fillNonzero(random, pad); err != nil {
		return nil, fmt.Errorf("rsa: reading padding: %w", err)
	}
	em[k-len(msg)-1] = 0x00
	copy(em[k-len(msg):], msg)

	return pub.transform(em)
}

// Decrypt decrypts a PKCS#1 v1.5 ciphertext with the private key. Any
// inconsistency in the recovered padding aborts with ErrDecryption; no
// partial plaintext is ever returned.
func Decrypt(priv *Key, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != priv.Size() {
		return nil, ErrDecryption
	}
	em, err := priv.transform(ciphertext)
	if err != nil {
		return nil, ErrDecryption
	}

	if em[0] != 0x00 || em[1] != 0x02 {
		return nil, ErrDecryption
	}
	sep := -1
	for i := 2; i < len(em); i++ {
		if em[i] == 0x00 {
			sep = i
			break
		}
	}
	if sep < 2+minPadLen {
		return nil, ErrDecryption
	}
	return em[sep+1:], nil
}

// Sign produces a PKCS#1 v1.5 signature over digest, which must be the
// hash-sized output of the given hash function. Signing is deterministic:
// the padding is the fixed type 1 all-ones string.
func Sign(priv *Key, hash crypto.Hash, digest []byte) ([]byte, error) {
	em, err := encodeDigestInfo(priv.Size(), hash, digest)
	if err != nil {
		return nil, err
	}
	return priv.transform(em)
}

// Verify checks a PKCS#1 v1.5 signature over digest against the public
// key. Any mismatch, including malformed recovered padding, returns
// ErrVerification.
func Verify(pub *Key, hash crypto.Hash, digest, sig []byte) error {
	if len(sig) != pub.Size() {
		return ErrVerification
	}
	em, err := pub.transform(sig)
	if err != nil {
		return ErrVerification
	}
	expected, err := encodeDigestInfo(pub.Size(), hash, digest)
	if err != nil {
		return ErrVerification
	}
	if subtle.ConstantTimeCompare(em, expected) != 1 {
		return ErrVerification
	}
	return nil
}

// encodeDigestInfo builds the full type 1 encoded message:
// 0x00 0x01 0xff..0xff 0x00 DigestInfo(digest).
func encodeDigestInfo(k int, hash crypto.Hash, digest []byte) ([]byte, error) {
	prefix, ok := digestInfoPrefixes[hash]
	if !ok {
		return nil, fmt.Errorf("rsa: unsupported hash %v", hash)
	}
	if len(digest) != hash.Size() {
		return nil, fmt.Errorf("rsa: digest length %d, want %d for %v",
			len(digest), hash.Size(), hash)
	}
	infoLen := len(prefix) + len(digest)
	if infoLen > k-minPadLen-3 {
		return nil, ErrMessageTooLong
	}

	em := make([]byte, k)
	em[0] = 0x00
	em[1] = 0x01
	padEnd := k - infoLen - 1
	for i := 2; i < padEnd; i++ {
		em[i] = 0xff
	}
	em[padEnd] = 0x00
	copy(em[padEnd+1:], prefix)
	copy(em[padEnd+1+len(prefix):], digest)
	return em, nil
}

// fillNonzero fills buf with random bytes, none of which are zero. A zero
// byte would terminate the padding string early on decryption.
func fillNonzero(random io.Reader, buf []byte) error {
	if _, err := io.ReadFull(random, buf); err != nil {
		return err
	}
	for i := range buf {
		for buf[i] == 0 {
			var b [1]byte
			if _, err := io.ReadFull(random, b[:]); err != nil {
				return err
			}
			buf[i] = b[0]
		}
	}
	return nil
}
