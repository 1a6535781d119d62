// Package rsa implements RSA encryption, decryption, signing and
// verification on top of the fixed-width bigint engine.
//
// Key material arrives as DER: PKCS#1 RSAPrivateKey (optionally inside a
// PKCS#8 wrapper) and X.509 SubjectPublicKeyInfo (or a bare
// RSAPublicKey). Padding is PKCS#1 v1.5. The package deliberately treats
// keys as just a modulus and an exponent: encrypt/verify and decrypt/sign
// differ only in which exponent the caller parsed.
package rsa

import (
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"

	"github.com/agbru/rsacore/internal/bigint"
)

// ErrInvalidKey is returned when DER key material cannot be parsed or
// describes an unusable key (zero modulus or exponent).
var ErrInvalidKey = errors.New("rsa: invalid key")

// Key holds one half of an RSA keypair: the shared modulus and either the
// public or the private exponent. The engine below has no notion of which
// one it is.
type Key struct {
	// Modulus is the RSA modulus n.
	Modulus *bigint.Nat
	// Exponent is e for a public key, d for a private key.
	Exponent *bigint.Nat

	size int
}

// Size returns the modulus length in bytes. Ciphertexts and signatures
// are always exactly this long.
func (k *Key) Size() int { return k.size }

// pkcs1PrivateKey mirrors the ASN.1 RSAPrivateKey structure. The CRT
// components are parsed but unused: the engine exponentiates with d
// directly.
type pkcs1PrivateKey struct {
	Version int
	N       *big.Int
	E       *big.Int
	D       *big.Int
	P       *big.Int
	Q       *big.Int
	Dp      *big.Int
	Dq      *big.Int
	Qinv    *big.Int
}

// pkcs8PrivateKey mirrors the outer PKCS#8 PrivateKeyInfo wrapper.
type pkcs8PrivateKey struct {
	Version    int
	Algo       asn1.RawValue
	PrivateKey []byte
}

// subjectPublicKeyInfo mirrors the X.509 SubjectPublicKeyInfo wrapper.
type subjectPublicKeyInfo struct {
	Algo      asn1.RawValue
	PublicKey asn1.BitString
}

// rsaPublicKey mirrors the ASN.1 RSAPublicKey structure.
type rsaPublicKey struct {
	N *big.Int
	E *big.Int
}

// ParsePrivateKey parses a DER-encoded RSA private key. Both the bare
// PKCS#1 RSAPrivateKey form and the PKCS#8 wrapper around it are
// accepted, matching the encodings key generation tools emit.
func ParsePrivateKey(der []byte) (*Key, error) {
	var pkcs1 pkcs1PrivateKey
	if _, err := asn1.Unmarshal(der, &pkcs1); err == nil && pkcs1.N != nil {
		return newKey(pkcs1.N, pkcs1.D)
	}

	var pkcs8 pkcs8PrivateKey
	if _, err := asn1.Unmarshal(der, &pkcs8); err != nil {
		return nil, fmt.Errorf("%w: not PKCS#1 or PKCS#8", ErrInvalidKey)
	}
	if _, err := asn1.Unmarshal(pkcs8.PrivateKey, &pkcs1); err != nil {
		return nil, fmt.Errorf("%w: bad PKCS#8 payload: %v", ErrInvalidKey, err)
	}
	return newKey(pkcs1.N, pkcs1.D)
}

// ParsePublicKey parses a DER-encoded RSA public key, accepting both the
// SubjectPublicKeyInfo wrapper and a bare RSAPublicKey.
func ParsePublicKey(der []byte) (*Key, error) {
	var spki subjectPublicKeyInfo
	if _, err := asn1.Unmarshal(der, &spki); err == nil && len(spki.PublicKey.Bytes) > 0 {
		var pub rsaPublicKey
		if _, err := asn1.Unmarshal(spki.PublicKey.RightAlign(), &pub); err != nil {
			return nil, fmt.Errorf("%w: bad SubjectPublicKeyInfo payload: %v", ErrInvalidKey, err)
		}
		return newKey(pub.N, pub.E)
	}

	var pub rsaPublicKey
	if _, err := asn1.Unmarshal(der, &pub); err != nil {
		return nil, fmt.Errorf("%w: not SubjectPublicKeyInfo or RSAPublicKey", ErrInvalidKey)
	}
	return newKey(pub.N, pub.E)
}

// newKey converts the DER integers into fixed-width engine values. The
// modulus byte length fixes the word width for the whole key lifetime;
// math/big appears only here, at the decoding boundary.
func newKey(n, exp *big.Int) (*Key, error) {
	if n == nil || exp == nil || n.Sign() <= 0 || exp.Sign() <= 0 {
		return nil, fmt.Errorf("%w: missing modulus or exponent", ErrInvalidKey)
	}

	size := (n.BitLen() + 7) / 8
	width := (size + 7) / 8

	modulus := bigint.New(width)
	if err := modulus.SetBytes(n.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	exponent := bigint.New(width)
	if err := exponent.SetBytes(exp.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: exponent wider than modulus", ErrInvalidKey)
	}

	return &Key{Modulus: modulus, Exponent: exponent, size: size}, nil
}
