// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"math/big"
	"testing"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	g := generatorPoint()
	if !g.IsOnCurve() {
		t.Fatal("generator point is not on the curve")
	}
}

func TestShiftPointIsOnCurve(t *testing.T) {
	s := DefaultPointTable().Shift()
	if !s.IsOnCurve() {
		t.Fatal("default table's shift point is not on the curve")
	}
}

func TestPointAddCommutative(t *testing.T) {
	g := generatorPoint()
	g2 := Double(g)
	g3 := Add(g, g2)
	g3Alt := Add(g2, g)
	if !g3.Equal(g3Alt) {
		t.Fatal("Add is not commutative")
	}
	if !g3.IsOnCurve() {
		t.Fatal("g+2g is not on the curve")
	}
}

func TestPointAddInverse(t *testing.T) {
	g := generatorPoint()
	neg := NewPoint(g.X, g.Y.Mul(FieldElementFromUint64(0)).Sub(g.Y))
	sum := Add(g, neg)
	if !sum.IsInfinity() {
		t.Fatalf("g + (-g) = %v, want infinity", sum)
	}
}

func TestPointAddIdentity(t *testing.T) {
	g := generatorPoint()
	if got := Add(g, Infinity()); !got.Equal(g) {
		t.Fatal("g + infinity != g")
	}
	if got := Add(Infinity(), g); !got.Equal(g) {
		t.Fatal("infinity + g != g")
	}
}

func TestScalarMultMatchesRepeatedAdd(t *testing.T) {
	g := generatorPoint()
	acc := Infinity()
	for i := 0; i < 9; i++ {
		acc = Add(acc, g)
	}
	got := ScalarMult(big.NewInt(9), g)
	if !got.Equal(acc) {
		t.Fatalf("ScalarMult(9, g) != g added nine times")
	}
}

func TestScalarMultByOrderIsInfinity(t *testing.T) {
	g := generatorPoint()
	got := ScalarMult(curveOrder, g)
	if !got.IsInfinity() {
		t.Fatal("n*G should be the point at infinity")
	}
}

func TestAddDistinctXRejectsCollision(t *testing.T) {
	g := generatorPoint()
	if _, err := AddDistinctX(g, g); err == nil {
		t.Fatal("AddDistinctX(g, g): expected ErrPointCollision, got nil")
	}
	if _, err := AddDistinctX(Infinity(), g); err == nil {
		t.Fatal("AddDistinctX(infinity, g): expected ErrPointCollision, got nil")
	}
}

func TestAddDistinctXMatchesAdd(t *testing.T) {
	g := generatorPoint()
	g2 := Double(g)
	g3 := Double(g2)
	want := Add(g2, g3)
	got, err := AddDistinctX(g2, g3)
	if err != nil {
		t.Fatalf("AddDistinctX unexpected error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatal("AddDistinctX result differs from Add for distinct-x points")
	}
}

func TestScalarMultMimicAirMatchesScalarMult(t *testing.T) {
	g := generatorPoint()
	shift := DefaultPointTable().Shift()
	m := big.NewInt(777)

	got, err := ScalarMultMimicAir(m, g, shift)
	if err != nil {
		t.Fatalf("ScalarMultMimicAir unexpected error: %v", err)
	}
	want := Add(shift, ScalarMult(m, g))
	if !got.Equal(want) {
		t.Fatal("ScalarMultMimicAir(m, base, shift) != shift + m*base")
	}
}

func TestScalarMultMimicAirRejectsOutOfRange(t *testing.T) {
	g := generatorPoint()
	shift := DefaultPointTable().Shift()
	if _, err := ScalarMultMimicAir(big.NewInt(0), g, shift); err == nil {
		t.Fatal("ScalarMultMimicAir(0, ...): expected error, got nil")
	}
	if _, err := ScalarMultMimicAir(MaxEcdsaVal, g, shift); err == nil {
		t.Fatal("ScalarMultMimicAir(2**251, ...): expected error, got nil")
	}
}
