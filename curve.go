// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import "math/big"

// curveAlpha is the "a" coefficient of the short Weierstrass curve
// y**2 = x**3 + a*x + b (mod p). The Stark curve fixes a = 1.
var curveAlpha = big.NewInt(1)

// curveBeta is the "b" coefficient, chosen by StarkWare as the truncated
// decimal digits of pi reduced to a point on the curve.
var curveBeta = fromHexPanic(
	"06f21413efbe40de150e596d72f7a8c5609ad26c15c915c1f4cdfcb99cee9e89")

// Point is an affine point (x, y) on the Stark curve. The zero value is not
// a usable point; the point at infinity is obtained from Infinity.
type Point struct {
	X        *FieldElement
	Y        *FieldElement
	infinity bool
}

// Infinity returns the point at infinity (the curve's additive identity).
func Infinity() Point {
	return Point{infinity: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// NewPoint builds an affine point from two FieldElements without checking
// curve membership; use IsOnCurve to validate untrusted input.
func NewPoint(x, y *FieldElement) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether two points have the same coordinates, treating the
// point at infinity as equal only to itself.
func (p Point) Equal(o Point) bool {
	if p.infinity || o.infinity {
		return p.infinity == o.infinity
	}
	return p.X.Equals(o.X) && p.Y.Equals(o.Y)
}

// SameX reports whether two non-infinity points share an x-coordinate. This
// is the check the Pedersen hash loop relies on to guarantee its addition
// never degenerates into a doubling or an identity collision.
func (p Point) SameX(o Point) bool {
	if p.infinity || o.infinity {
		return false
	}
	return p.X.Equals(o.X)
}

// IsOnCurve reports whether p satisfies y**2 = x**3 + a*x + b (mod p). The
// point at infinity is considered on-curve by convention.
func (p Point) IsOnCurve() bool {
	if p.infinity {
		return true
	}
	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).Add(mulMod(curveAlpha, p.X.v))
	rhs = rhs.Add(&FieldElement{v: curveBeta})
	return lhs.Equals(rhs)
}

// Add computes p+q on the Stark curve using the standard short Weierstrass
// affine addition formulas, correctly handling the point at infinity,
// doubling (p == q), and inverse pairs (p == -q).
//
// The Pedersen hash never exercises the doubling or infinity branches in
// practice (its x-disjointness invariant forbids it), but Add must still
// handle them correctly because ScalarMult and ECDSA verification rely on
// the same routine for arbitrary points.
func Add(p, q Point) Point {
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if p.X.Equals(q.X) {
		if p.Y.Equals(q.Y) {
			return Double(p)
		}
		// p == -q: the sum is the point at infinity.
		return Infinity()
	}

	// slope = (y2 - y1) / (x2 - x1)
	num := q.Y.Sub(p.Y)
	den := q.X.Sub(p.X)
	denInv, err := den.Inverse()
	if err != nil {
		// den is nonzero here because x1 != x2 was just checked.
		panic("starkcurve: unreachable non-invertible denominator in Add")
	}
	slope := num.Mul(denInv)

	x3 := slope.Square().Sub(p.X).Sub(q.X)
	y3 := slope.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point{X: x3, Y: y3}
}

// Double computes 2*p on the Stark curve.
func Double(p Point) Point {
	if p.infinity {
		return p
	}
	if p.Y.IsZero() {
		return Infinity()
	}

	// slope = (3*x^2 + a) / (2*y)
	three := FieldElementFromUint64(3)
	num := p.X.Square().Mul(three).Add(&FieldElement{v: curveAlpha})
	den := p.Y.Add(p.Y)
	denInv, err := den.Inverse()
	if err != nil {
		panic("starkcurve: unreachable non-invertible denominator in Double")
	}
	slope := num.Mul(denInv)

	x3 := slope.Square().Sub(p.X).Sub(p.X)
	y3 := slope.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point{X: x3, Y: y3}
}

// AddDistinctX adds p+q under the precondition that p and q do not share an
// x-coordinate (and neither is the point at infinity). It is the "add-only"
// fast path the Pedersen hash loop uses, returning ErrPointCollision instead
// of silently falling back to Double or Infinity handling when the
// precondition is violated -- which, for a valid constant-point table, can
// only happen if the table itself is corrupted.
func AddDistinctX(p, q Point) (Point, error) {
	if p.infinity || q.infinity {
		return Point{}, makeError(ErrPointCollision,
			"pedersen accumulator or addend is the point at infinity")
	}
	if p.X.Equals(q.X) {
		return Point{}, makeError(ErrPointCollision,
			"pedersen accumulator shares an x-coordinate with the next addend")
	}
	return Add(p, q), nil
}

// ScalarMult computes k*p via double-and-add over the bits of k, least
// significant bit first. It is used for public-key derivation, for the
// r = k*G step of Sign, and by GeneratePointTable; Verify uses
// ScalarMultMimicAir instead. The Pedersen hash never calls it: it relies on
// the precomputed constant-point table and AddDistinctX.
func ScalarMult(k *big.Int, p Point) Point {
	result := Infinity()
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = Add(result, addend)
		}
		addend = Double(addend)
	}
	return result
}

// ScalarMultMimicAir computes m*(x1, y1) + shift while iterating exactly 251
// bits, least-significant bit first, mirroring the "MimicEcMultAir" routine
// used by the reference StarkEx Go port
// (other_examples/...thrasher-corp-gocryptotrader.../starkex.go) and, in
// turn, the on-chain AIR's bit-serial multiplication. Unlike ScalarMult, it
// fails with ErrPointCollision the moment the running accumulator's x
// coordinate would collide with the doubled base point, exactly as the
// chain's verification circuit does, and it requires 0 < m < 2**251.
func ScalarMultMimicAir(m *big.Int, base, shift Point) (Point, error) {
	if m.Sign() <= 0 || m.Cmp(MaxEcdsaVal) >= 0 {
		return Point{}, makeError(ErrSignatureOutOfRange, "scalar out of range (0, 2**251) for MimicEcMultAir")
	}
	acc := shift
	rem := new(big.Int).Set(m)
	for i := 0; i < 251; i++ {
		if acc.SameX(base) {
			return Point{}, makeError(ErrPointCollision,
				"MimicEcMultAir accumulator collided with doubled base point")
		}
		if rem.Bit(0) == 1 {
			acc = Add(acc, base)
		}
		base = Double(base)
		rem.Rsh(rem, 1)
	}
	return acc, nil
}
