// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"math/big"
	"strings"
)

// PrivateKey is an ECDSA signing scalar modulo the curve order n.
type PrivateKey = Scalar

// PublicKey is the curve point corresponding to a PrivateKey, Q = priv*G.
type PublicKey = Point

// Signature is an (r, s) ECDSA signature pair, both scalars modulo n.
type Signature struct {
	R *Scalar
	S *Scalar
}

// Signer is the capability this package requires of a caller-supplied
// signing key: it must produce an (r, s) pair for a message digest and an
// ephemeral nonce it supplies itself. This package never generates a nonce
// internally -- per-signature randomness (e.g. RFC 6979 or a CSPRNG) is
// explicitly the caller's responsibility, matching the reference
// implementation's design.
type Signer interface {
	Sign(msgHashHex string, k *big.Int) (*Signature, error)
}

// Verifier is the capability this package requires of a public key: it must
// check whether a signature is valid for a message digest under that key,
// against the constant-point table whose shift point the verification
// arithmetic is built on.
type Verifier interface {
	Verify(table *PointTable, msgHashHex string, sig *Signature) (bool, error)
}

// PublicKeyFromPrivateKey derives Q = priv*G.
func PublicKeyFromPrivateKey(priv *PrivateKey) PublicKey {
	return ScalarMult(priv.Int(), generatorPoint())
}

func generatorPoint() Point {
	return NewPoint(fieldElementMust(genXHex), fieldElementMust(genYHex))
}

// negatePoint returns -p, i.e. (p.X, p.Y negated mod p).
func negatePoint(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	zero := FieldElementFromUint64(0)
	return NewPoint(p.X, zero.Sub(p.Y))
}

// fixMsgHashLen adapts a "0x"-optional hex message digest to the value the
// signing/verification arithmetic expects. The digest is first reduced to
// its minimum-length hex representation (leading zeros stripped, per spec
// section 4.6), since a caller may hand this function a zero-padded digest
// even though every digest this package itself produces (FieldElement.Hex)
// is already minimal.
//
// A minimal digest of 62 hex digits or fewer is always below 2**248 and is
// used unmodified. A minimal digest of exactly 63 hex digits spans [2**248,
// 2**252): if its top bit (bit 251) is set, that single bit is cleared by
// subtracting 2**251, the same adjustment the reference StarkEx signing
// code applies to a 63-digit digest whose leading nibble is 8 or above, so
// that the value handed to the signing/verification arithmetic is always
// strictly less than 2**251. Anything longer than 63 minimal hex digits, or
// entirely empty input, is rejected as an invalid digest length.
func fixMsgHashLen(msgHashHex string) (*big.Int, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(msgHashHex, "0x"), "0X")
	if len(raw) == 0 {
		return nil, makeError(ErrInvalidDigestLength,
			"message hash must be between 1 and 63 hex digits")
	}
	h := strings.TrimLeft(raw, "0")
	if h == "" {
		h = "0"
	}
	if len(h) > 63 {
		return nil, makeError(ErrInvalidDigestLength,
			"message hash must be between 1 and 63 hex digits")
	}
	v, ok := new(big.Int).SetString(h, 16)
	if !ok {
		return nil, makeError(ErrInvalidInput, "malformed hex message hash: "+msgHashHex)
	}
	if len(h) == 63 && v.Cmp(MaxEcdsaVal) >= 0 {
		v.Sub(v, MaxEcdsaVal)
	}
	if v.Cmp(MaxEcdsaVal) >= 0 {
		return nil, makeError(ErrDigestOutOfRange, "message hash is not strictly less than 2**251")
	}
	return v, nil
}

// Sign produces an ECDSA signature over msgHashHex using priv and the
// caller-supplied nonce k (0 < k < n is the caller's responsibility to
// ensure came from a secure source; this package only range-checks the
// coordinates it derives from k). Per spec section 4.6 it enforces
// r in [1, 2**251) and, via w = s^-1 mod n, w in [1, 2**251) before
// returning; any violation yields ErrSignatureOutOfRange, in which case the
// caller must retry with a fresh k -- this package does not loop
// internally.
func Sign(priv *PrivateKey, msgHashHex string, k *big.Int) (*Signature, error) {
	e, err := fixMsgHashLen(msgHashHex)
	if err != nil {
		return nil, err
	}

	r := ScalarMult(k, generatorPoint())
	if r.IsInfinity() {
		return nil, makeError(ErrSignatureOutOfRange, "nonce produced the point at infinity")
	}
	rInt := r.X.Int()
	if rInt.Sign() <= 0 || rInt.Cmp(MaxEcdsaVal) >= 0 {
		return nil, makeError(ErrSignatureOutOfRange, "signature r is out of range [1, 2**251)")
	}
	rScalar, err := ScalarFromBigInt(rInt)
	if err != nil {
		return nil, err
	}

	kScalar, err := ScalarFromBigInt(new(big.Int).Mod(k, curveOrder))
	if err != nil {
		return nil, err
	}
	kInv, err := kScalar.Inverse()
	if err != nil {
		return nil, err
	}

	eScalar, err := ScalarFromBigInt(new(big.Int).Mod(e, curveOrder))
	if err != nil {
		return nil, err
	}
	agg := eScalar.Add(rScalar.Mul(priv))
	if agg.IsZero() {
		return nil, makeError(ErrSignatureOutOfRange, "signature hash+r*priv is zero mod n")
	}

	s := kInv.Mul(agg)
	if s.IsZero() {
		return nil, makeError(ErrSignatureOutOfRange, "signature s is zero")
	}

	w, err := s.Inverse()
	if err != nil {
		return nil, err
	}
	wInt := w.Int()
	if wInt.Sign() <= 0 || wInt.Cmp(MaxEcdsaVal) >= 0 {
		return nil, makeError(ErrSignatureOutOfRange, "signature w = s^-1 mod n is out of range [1, 2**251)")
	}

	return &Signature{R: rScalar, S: s}, nil
}

// Verify reports whether sig is a valid signature over msgHashHex under pub,
// using table's shift point the same way the on-chain AIR circuit does.
//
// Rather than a plain double-and-add scalar multiplication, Verify computes
// every scalar multiple via ScalarMultMimicAir (grounded on the reference
// StarkEx Go port's MimicEcMultAir), so a signature that is arithmetically
// valid but would trigger an x-coordinate collision inside the on-chain
// verification circuit is rejected here too, as ErrPointCollision, rather
// than reported as a valid signature that the chain would then refuse to
// accept. ScalarMultMimicAir's own precondition (0 < m < 2**251) doubles as
// the r and w in [1, 2**251) range checks: e, r, and w are each checked
// right before their own multiplication, and the first one outside that
// range surfaces as ErrSignatureOutOfRange.
//
// It returns an error only for malformed input (a bad digest, a zero r or
// s, an s with no inverse mod n, a range violation, or a collision); an
// otherwise well-formed but non-matching signature simply reports false
// with a nil error.
func Verify(table *PointTable, pub PublicKey, msgHashHex string, sig *Signature) (bool, error) {
	e, err := fixMsgHashLen(msgHashHex)
	if err != nil {
		return false, err
	}
	if sig.R.IsZero() || sig.S.IsZero() {
		return false, makeError(ErrSignatureOutOfRange, "signature r or s is zero")
	}

	w, err := sig.S.Inverse()
	if err != nil {
		return false, err
	}

	shift := table.Shift()
	minusShift := negatePoint(shift)

	zG, err := ScalarMultMimicAir(e, generatorPoint(), minusShift)
	if err != nil {
		return false, err
	}
	rQ, err := ScalarMultMimicAir(sig.R.Int(), pub, shift)
	if err != nil {
		return false, err
	}
	sum := Add(zG, rQ)

	wSum, err := ScalarMultMimicAir(w.Int(), sum, shift)
	if err != nil {
		return false, err
	}
	result := Add(wSum, minusShift)
	if result.IsInfinity() {
		return false, nil
	}
	return result.X.Int().Cmp(sig.R.Int()) == 0, nil
}
