// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"errors"
	"math/big"
	"testing"
)

func TestFieldElementFromHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantHex string
		wantErr ErrorKind
	}{
		{name: "zero", in: "0x0", wantHex: "0"},
		{name: "small value", in: "0x2a", wantHex: "2a"},
		{name: "uppercase prefix", in: "0X2A", wantHex: "2a"},
		{name: "missing prefix", in: "2a", wantErr: ErrMissingHexPrefix},
		{name: "out of range", in: "0x" + fieldPrime.Text(16), wantErr: ErrInvalidInput},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fe, err := FieldElementFromHex(test.in)
			if test.wantErr != "" {
				var kerr Error
				if !errors.As(err, &kerr) || !errors.Is(kerr.Err, test.wantErr) {
					t.Fatalf("FieldElementFromHex(%q) error = %v, want kind %v", test.in, err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FieldElementFromHex(%q) unexpected error: %v", test.in, err)
			}
			if got := fe.Hex(); got != test.wantHex {
				t.Fatalf("FieldElementFromHex(%q).Hex() = %q, want %q", test.in, got, test.wantHex)
			}
		})
	}
}

func TestFieldElementArithmetic(t *testing.T) {
	a := FieldElementFromUint64(5)
	b := FieldElementFromUint64(7)

	if got := a.Add(b); got.Hex() != "c" {
		t.Fatalf("5+7 = %s, want c", got.Hex())
	}
	if got := b.Sub(a); got.Hex() != "2" {
		t.Fatalf("7-5 = %s, want 2", got.Hex())
	}
	if got := a.Mul(b); got.Hex() != "23" {
		t.Fatalf("5*7 = %s, want 23", got.Hex())
	}
	if got := a.Square(); got.Hex() != "19" {
		t.Fatalf("5^2 = %s, want 19", got.Hex())
	}

	// 0 - 1 should wrap correctly through the modulus rather than going
	// negative.
	wrapped := FieldElementFromUint64(0).Sub(FieldElementFromUint64(1))
	want := new(big.Int).Sub(fieldPrime, big.NewInt(1))
	if wrapped.Int().Cmp(want) != 0 {
		t.Fatalf("0-1 mod p = %s, want %s", wrapped.Int().Text(16), want.Text(16))
	}
}

func TestFieldElementInverse(t *testing.T) {
	a := FieldElementFromUint64(12345)
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error: %v", err)
	}
	one := a.Mul(inv)
	if !one.Equals(FieldElementFromUint64(1)) {
		t.Fatalf("a * a^-1 = %s, want 1", one.Hex())
	}

	if _, err := FieldElementFromUint64(0).Inverse(); err == nil {
		t.Fatal("Inverse() of zero: expected error, got nil")
	}
}

func TestFieldElementBit(t *testing.T) {
	fe := FieldElementFromUint64(0b1010)
	for j, want := range []uint{0, 1, 0, 1} {
		if got := fe.Bit(j); got != want {
			t.Fatalf("Bit(%d) = %d, want %d", j, got, want)
		}
	}
}

func TestScalarFromBigIntRange(t *testing.T) {
	if _, err := ScalarFromBigInt(curveOrder); err == nil {
		t.Fatal("ScalarFromBigInt(n): expected out-of-range error, got nil")
	}
	if _, err := ScalarFromBigInt(big.NewInt(-1)); err == nil {
		t.Fatal("ScalarFromBigInt(-1): expected out-of-range error, got nil")
	}
	s, err := ScalarFromBigInt(big.NewInt(41))
	if err != nil {
		t.Fatalf("ScalarFromBigInt(41) unexpected error: %v", err)
	}
	if s.Hex() != "29" {
		t.Fatalf("Scalar(41).Hex() = %q, want %q", s.Hex(), "29")
	}
}

func TestScalarInverse(t *testing.T) {
	s, err := ScalarFromBigInt(big.NewInt(9999))
	if err != nil {
		t.Fatalf("ScalarFromBigInt error: %v", err)
	}
	inv, err := s.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error: %v", err)
	}
	one := s.Mul(inv)
	if one.Int().Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("s * s^-1 mod n = %s, want 1", one.Hex())
	}
}
