// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// NumConstantPoints is the size of the Pedersen hash's constant-point table:
// index 0 is the shift point, index 1 is the curve generator G, and indices
// 2..505 are the per-bit addends for up to two 252-bit inputs.
const NumConstantPoints = 506

// bitsPerInput is the number of bits of each Pedersen input that the
// constant-point table has a dedicated addend for.
const bitsPerInput = 252

// PointTable is the immutable, ordered table of 506 curve points the
// Pedersen hash sums over. Once constructed it is read-only and may be
// shared freely across goroutines.
type PointTable struct {
	points []Point
}

// Shift returns the table's shift point (index 0), used as the Pedersen
// hash's initial accumulator so the running sum is never the identity.
func (t *PointTable) Shift() Point {
	return t.points[0]
}

// Generator returns the table's generator point G (index 1). G is not one of
// the per-bit addends: those start at index 2 (see Addend).
func (t *PointTable) Generator() Point {
	return t.points[1]
}

// Addend returns the constant point used for bit j (0..251) of input i
// (0 or 1): index 2 + i*252 + j.
func (t *PointTable) Addend(i, j int) (Point, error) {
	if i < 0 || i > 1 || j < 0 || j >= bitsPerInput {
		return Point{}, makeError(ErrInvalidInput, "pedersen addend index out of range")
	}
	return t.points[2+i*bitsPerInput+j], nil
}

// NewPointTable validates and wraps an externally supplied table of 506 hex
// (x, y) pairs. Supplying this table is explicitly out of scope for this
// module (spec.md section 1 names "the binding that supplies the 506
// precomputed curve points" as an external collaborator); this constructor
// is the module's one consumption point for that data. Every point is
// required to lie on the curve -- a corrupted table is caught here rather
// than silently producing wrong hashes later.
func NewPointTable(pairs [][2]string) (*PointTable, error) {
	if len(pairs) != NumConstantPoints {
		return nil, makeError(ErrInvalidPointTable,
			fmt.Sprintf("constant-point table must have exactly %d points, got %d",
				NumConstantPoints, len(pairs)))
	}
	points := make([]Point, NumConstantPoints)
	for idx, pair := range pairs {
		x, err := parseUnprefixedHex(pair[0])
		if err != nil {
			return nil, makeError(ErrInvalidPointTable,
				fmt.Sprintf("point %d: invalid x: %v", idx, err))
		}
		y, err := parseUnprefixedHex(pair[1])
		if err != nil {
			return nil, makeError(ErrInvalidPointTable,
				fmt.Sprintf("point %d: invalid y: %v", idx, err))
		}
		fx, err := FieldElementFromBigInt(x)
		if err != nil {
			return nil, makeError(ErrInvalidPointTable,
				fmt.Sprintf("point %d: x out of field range: %v", idx, err))
		}
		fy, err := FieldElementFromBigInt(y)
		if err != nil {
			return nil, makeError(ErrInvalidPointTable,
				fmt.Sprintf("point %d: y out of field range: %v", idx, err))
		}
		p := NewPoint(fx, fy)
		if !p.IsOnCurve() {
			return nil, makeError(ErrInvalidPointTable,
				fmt.Sprintf("point %d is not on the curve", idx))
		}
		points[idx] = p
	}
	return &PointTable{points: points}, nil
}

// parseUnprefixedHex parses a hex string that may or may not carry a "0x"
// prefix. The constant-point table is trusted setup data, not a
// caller-supplied field, so it is not held to the strict MissingHexPrefix
// contract the external interfaces enforce (spec.md section 6).
func parseUnprefixedHex(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("malformed hex integer: %q", s)
	}
	return v, nil
}

// GeneratePointTable derives a structurally valid, on-curve, deterministic
// 506-point table from a seed using nothing but this package's own curve
// arithmetic: the generator G for index 1, and scalar multiples of G under
// domain-separated, SHA-256-derived scalars for every other index.
//
// This is *not* a reproduction of StarkWare's published nothing-up-my-sleeve
// constants -- per spec.md section 1 those are supplied by an external
// collaborator this module does not implement. It exists so the Pedersen
// bit loop, the x-disjointness assertion, and the message hashers are
// exercisable and testable without that external input.
func GeneratePointTable(seed string) *PointTable {
	gen := NewPoint(
		fieldElementMust(genXHex),
		fieldElementMust(genYHex),
	)
	points := make([]Point, NumConstantPoints)
	points[1] = gen
	for idx := range points {
		if idx == 1 {
			continue
		}
		scalar := domainScalar(seed, idx)
		points[idx] = ScalarMult(scalar, gen)
	}
	return &PointTable{points: points}
}

// domainScalar derives a scalar in [1, n) from SHA-256(seed || index || 0),
// reducing the digest mod n-1 and adding one, so the result is never zero
// and the loop returns on its first pass with counter 0.
func domainScalar(seed string, idx int) *big.Int {
	for counter := 0; ; counter++ {
		h := sha256.Sum256([]byte(fmt.Sprintf("starkcurve-point-table|%s|%d|%d", seed, idx, counter)))
		v := new(big.Int).SetBytes(h[:])
		v.Mod(v, new(big.Int).Sub(curveOrder, big.NewInt(1)))
		v.Add(v, big.NewInt(1))
		if v.Sign() != 0 {
			return v
		}
	}
}

// defaultPointTable lazily builds the package's reference, non-production
// point table on first use, mirroring the teacher's sync.Once-guarded lazy
// initialization of its own precomputed scalar-multiplication table.
var (
	defaultPointTableOnce sync.Once
	defaultPointTableData *PointTable
)

// DefaultPointTable returns a process-wide, lazily initialized point table
// generated from a fixed seed. It is suitable for tests and for exercising
// the Pedersen hash mechanics; it is not the production StarkEx table, which
// must be supplied externally via NewPointTable.
func DefaultPointTable() *PointTable {
	defaultPointTableOnce.Do(func() {
		defaultPointTableData = GeneratePointTable("starkcurve-default")
	})
	return defaultPointTableData
}

func fieldElementMust(hex string) *FieldElement {
	fe, err := FieldElementFromBigInt(fromHexPanic(hex))
	if err != nil {
		panic("starkcurve: embedded generator coordinate out of range: " + err.Error())
	}
	return fe
}

// genXHex and genYHex are the Stark curve generator's coordinates: point
// index 1 of the official constant-point table.
const (
	genXHex = "1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca"
	genYHex = "5668060aa49730b7be4801df46ec62de53ecd11abe43a32873000c36e8dc1f"
)
