// Package selftest runs the fixed RSA test vectors against the engine.
//
// The suites mirror the checks firmware performs before trusting its
// crypto: decrypt a known ciphertext, round-trip an encryption, reproduce
// known signatures bit-exactly, and refuse a zeroed signature. Any
// failure is a reason to abort whatever depends on the engine.
package selftest

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"sort"
	"time"

	// Register the digest algorithms the signature vectors use.
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/rsacore/internal/errors"
	"github.com/agbru/rsacore/internal/rsa"
)

// Result is the outcome of one self-test suite.
type Result struct {
	// Name identifies the suite (e.g. "signature/sha256").
	Name string
	// Duration is the wall time the suite took.
	Duration time.Duration
	// Err is nil on success.
	Err error
}

// Passed reports whether every result succeeded.
func Passed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return false
		}
	}
	return true
}

// Run executes all self-test suites concurrently, at most workers at a
// time (workers <= 0 means no limit), and returns one result per suite,
// sorted by name. A failing suite does not stop the others: the full
// picture is more useful than the first error.
func Run(ctx context.Context, workers int) []Result {
	type suite struct {
		name string
		run  func(context.Context) error
	}

	var suites []suite
	for _, v := range encryptDecryptVectors {
		v := v
		suites = append(suites, suite{v.name, func(ctx context.Context) error {
			return runEncryptDecrypt(ctx, v)
		}})
	}
	for _, v := range signatureVectors {
		v := v
		suites = append(suites, suite{v.name, func(ctx context.Context) error {
			return runSignature(ctx, v)
		}})
	}

	results := make([]Result, len(suites))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, s := range suites {
		i, s := i, s
		g.Go(func() error {
			start := time.Now()
			err := apperrors.NewOperationError(s.name, s.run(ctx))
			results[i] = Result{Name: s.name, Duration: time.Since(start), Err: err}
			return nil
		})
	}
	g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results
}

func runEncryptDecrypt(ctx context.Context, v encryptDecryptVector) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	priv, err := rsa.ParsePrivateKey(v.private)
	if err != nil {
		return fmt.Errorf("parsing private key: %w", err)
	}
	pub, err := rsa.ParsePublicKey(v.public)
	if err != nil {
		return fmt.Errorf("parsing public key: %w", err)
	}

	// The known ciphertext must decrypt to the known plaintext. The
	// reverse is not checked byte-for-byte: encryption pads randomly.
	plaintext, err := rsa.Decrypt(priv, v.ciphertext)
	if err != nil {
		return fmt.Errorf("decrypting known ciphertext: %w", err)
	}
	if !bytes.Equal(plaintext, v.plaintext) {
		return fmt.Errorf("known ciphertext decrypted to %x, want %x", plaintext, v.plaintext)
	}

	ciphertext, err := rsa.Encrypt(rand.Reader, pub, v.plaintext)
	if err != nil {
		return fmt.Errorf("encrypting: %w", err)
	}
	roundTrip, err := rsa.Decrypt(priv, ciphertext)
	if err != nil {
		return fmt.Errorf("decrypting own ciphertext: %w", err)
	}
	if !bytes.Equal(roundTrip, v.plaintext) {
		return fmt.Errorf("round trip produced %x, want %x", roundTrip, v.plaintext)
	}
	return nil
}

func runSignature(ctx context.Context, v signatureVector) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	priv, err := rsa.ParsePrivateKey(v.private)
	if err != nil {
		return fmt.Errorf("parsing private key: %w", err)
	}
	pub, err := rsa.ParsePublicKey(v.public)
	if err != nil {
		return fmt.Errorf("parsing public key: %w", err)
	}

	h := v.hash.New()
	h.Write(v.plaintext)
	digest := h.Sum(nil)

	sig, err := rsa.Sign(priv, v.hash, digest)
	if err != nil {
		return fmt.Errorf("signing: %w", err)
	}
	if !bytes.Equal(sig, v.signature) {
		return fmt.Errorf("signature is %x, want %x", sig, v.signature)
	}

	if err := rsa.Verify(pub, v.hash, digest, v.signature); err != nil {
		return fmt.Errorf("verifying known signature: %w", err)
	}

	// A corrupted signature must be rejected.
	zeroed := make([]byte, len(v.signature))
	if err := rsa.Verify(pub, v.hash, digest, zeroed); err == nil {
		return fmt.Errorf("zeroed signature verified")
	}
	return nil
}
