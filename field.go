// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"math/big"
	"strings"
)

// fieldPrime is the Stark field prime p = 2**251 + 17*2**192 + 1.
var fieldPrime = fromDecimalPanic(
	"3618502788666131213697322783095070105623107215331596699973092056135872020481")

// curveOrder is the order n of the Stark curve's cyclic subgroup.
var curveOrder = fromHexPanic(
	"0800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f")

// MaxEcdsaVal is 2**251, the strict upper bound on any ECDSA-facing digest.
var MaxEcdsaVal = new(big.Int).Lsh(big.NewInt(1), 251)

func fromHexPanic(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("starkcurve: invalid embedded hex constant " + s)
	}
	return v
}

func fromDecimalPanic(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("starkcurve: invalid embedded decimal constant " + s)
	}
	return v
}

// FieldElement is an unsigned integer modulo the Stark field prime p. The
// zero value is not usable; construct one with FieldElementFromBigInt,
// FieldElementFromHex, or FieldElementFromUint64.
type FieldElement struct {
	v *big.Int
}

// FieldElementFromBigInt builds a FieldElement from a big.Int, requiring it
// to already lie in [0, p). This is the strict constructor used anywhere the
// spec requires an InvalidInput check rather than silent reduction.
func FieldElementFromBigInt(x *big.Int) (*FieldElement, error) {
	if x.Sign() < 0 || x.Cmp(fieldPrime) >= 0 {
		return nil, makeError(ErrInvalidInput, "field element out of range [0, p)")
	}
	return &FieldElement{v: new(big.Int).Set(x)}, nil
}

// FieldElementFromUint64 builds a FieldElement from a small unsigned value,
// which is always in range.
func FieldElementFromUint64(x uint64) *FieldElement {
	return &FieldElement{v: new(big.Int).SetUint64(x)}
}

// FieldElementFromHex parses a "0x"-prefixed hex string into a FieldElement,
// enforcing both the prefix convention (spec.md section 6) and the [0, p)
// range.
func FieldElementFromHex(s string) (*FieldElement, error) {
	stripped, err := requireHexPrefix(s)
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(stripped, 16)
	if !ok {
		return nil, makeError(ErrInvalidInput, "malformed hex field element: "+s)
	}
	return FieldElementFromBigInt(v)
}

// FieldElementFromDecimal parses a base-10 string into a FieldElement. Used
// for amounts and fee limits, which arrive as decimal strings to preserve
// the full 63-bit range without floating-point round-tripping.
func FieldElementFromDecimal(s string) (*FieldElement, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, makeError(ErrInvalidInput, "malformed decimal integer: "+s)
	}
	return FieldElementFromBigInt(v)
}

// requireHexPrefix strips a "0x"/"0X" prefix from s, returning
// ErrMissingHexPrefix if it is absent.
func requireHexPrefix(s string) (string, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", makeError(ErrMissingHexPrefix, "hex value missing 0x prefix: "+s)
	}
	return s[2:], nil
}

// Int returns a copy of the underlying big.Int value.
func (f *FieldElement) Int() *big.Int {
	return new(big.Int).Set(f.v)
}

// Hex renders the field element as lowercase hex with no "0x" prefix and no
// leading zeros, per the output convention of every public function in this
// package.
func (f *FieldElement) Hex() string {
	return f.v.Text(16)
}

// Cmp compares two field elements the same way big.Int.Cmp does.
func (f *FieldElement) Cmp(o *FieldElement) int {
	return f.v.Cmp(o.v)
}

// Equals reports whether two field elements hold the same value.
func (f *FieldElement) Equals(o *FieldElement) bool {
	return f.Cmp(o) == 0
}

// IsZero reports whether the field element is zero.
func (f *FieldElement) IsZero() bool {
	return f.v.Sign() == 0
}

// Bit returns the value of the j'th least-significant bit (0 or 1).
func (f *FieldElement) Bit(j int) uint {
	return f.v.Bit(j)
}

// addMod returns (a+b) mod p as a new FieldElement.
func addMod(a, b *big.Int) *FieldElement {
	r := new(big.Int).Add(a, b)
	r.Mod(r, fieldPrime)
	return &FieldElement{v: r}
}

// subMod returns (a-b) mod p as a new FieldElement.
func subMod(a, b *big.Int) *FieldElement {
	r := new(big.Int).Sub(a, b)
	r.Mod(r, fieldPrime)
	return &FieldElement{v: r}
}

// mulMod returns (a*b) mod p as a new FieldElement.
func mulMod(a, b *big.Int) *FieldElement {
	r := new(big.Int).Mul(a, b)
	r.Mod(r, fieldPrime)
	return &FieldElement{v: r}
}

// Add returns f+o mod p.
func (f *FieldElement) Add(o *FieldElement) *FieldElement { return addMod(f.v, o.v) }

// Sub returns f-o mod p.
func (f *FieldElement) Sub(o *FieldElement) *FieldElement { return subMod(f.v, o.v) }

// Mul returns f*o mod p.
func (f *FieldElement) Mul(o *FieldElement) *FieldElement { return mulMod(f.v, o.v) }

// Square returns f*f mod p.
func (f *FieldElement) Square() *FieldElement { return mulMod(f.v, f.v) }

// Inverse returns the modular multiplicative inverse of f modulo p via the
// extended Euclidean algorithm (math/big.Int.ModInverse). f must be nonzero.
func (f *FieldElement) Inverse() (*FieldElement, error) {
	if f.IsZero() {
		return nil, makeError(ErrInvalidInput, "cannot invert zero field element")
	}
	inv := new(big.Int).ModInverse(f.v, fieldPrime)
	if inv == nil {
		return nil, makeError(ErrInvalidInput, "field element has no inverse mod p")
	}
	return &FieldElement{v: inv}, nil
}

// Scalar is an unsigned integer modulo the Stark curve group order n. It is
// used exclusively for ECDSA signature components (r, s, and w = s^-1).
type Scalar struct {
	v *big.Int
}

// ScalarFromBigInt builds a Scalar from a big.Int, requiring it to already
// lie in [0, n).
func ScalarFromBigInt(x *big.Int) (*Scalar, error) {
	if x.Sign() < 0 || x.Cmp(curveOrder) >= 0 {
		return nil, makeError(ErrSignatureOutOfRange, "scalar out of range [0, n)")
	}
	return &Scalar{v: new(big.Int).Set(x)}, nil
}

// Int returns a copy of the underlying big.Int value.
func (s *Scalar) Int() *big.Int {
	return new(big.Int).Set(s.v)
}

// Hex renders the scalar as lowercase hex with no "0x" prefix.
func (s *Scalar) Hex() string {
	return s.v.Text(16)
}

// Cmp compares two scalars the same way big.Int.Cmp does.
func (s *Scalar) Cmp(o *Scalar) int { return s.v.Cmp(o.v) }

// IsZero reports whether the scalar is zero.
func (s *Scalar) IsZero() bool { return s.v.Sign() == 0 }

// Inverse returns the modular multiplicative inverse of s modulo n.
func (s *Scalar) Inverse() (*Scalar, error) {
	if s.IsZero() {
		return nil, makeError(ErrSignatureOutOfRange, "cannot invert zero scalar")
	}
	inv := new(big.Int).ModInverse(s.v, curveOrder)
	if inv == nil {
		return nil, makeError(ErrSignatureOutOfRange, "scalar has no inverse mod n")
	}
	return &Scalar{v: inv}, nil
}

// Mul returns s*o mod n.
func (s *Scalar) Mul(o *Scalar) *Scalar {
	r := new(big.Int).Mul(s.v, o.v)
	r.Mod(r, curveOrder)
	return &Scalar{v: r}
}

// Add returns s+o mod n.
func (s *Scalar) Add(o *Scalar) *Scalar {
	r := new(big.Int).Add(s.v, o.v)
	r.Mod(r, curveOrder)
	return &Scalar{v: r}
}
