// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import "fmt"

// maxPedersenInputs is the number of field elements a single Pedersen call
// may combine: one or two.
const maxPedersenInputs = 2

// Pedersen computes the Stark-variant Pedersen hash of one or two field
// elements and returns the x-coordinate of the result as lowercase hex
// without a "0x" prefix.
//
// The accumulator starts at the table's shift point so it is never the
// identity, then for each input x_i it walks bits j = 0..251 (least
// significant first), adding the constant point at index 2 + i*252 + j
// whenever bit j of x_i is set. Every addition goes through AddDistinctX,
// so a table whose addend happens to share an x-coordinate with the running
// accumulator surfaces as ErrPointCollision rather than a silently wrong
// hash.
func Pedersen(table *PointTable, inputs ...*FieldElement) (string, error) {
	fe, err := pedersenPoint(table, inputs...)
	if err != nil {
		return "", err
	}
	return fe.Hex(), nil
}

// pedersenPoint is the internal entry point shared by Pedersen and the
// message hashers, returning the resulting FieldElement instead of its hex
// encoding so callers can feed it directly into a further Pedersen call
// without a round trip through hex.
func pedersenPoint(table *PointTable, inputs ...*FieldElement) (*FieldElement, error) {
	if len(inputs) == 0 || len(inputs) > maxPedersenInputs {
		return nil, makeError(ErrInvalidInput,
			fmt.Sprintf("pedersen accepts 1 or 2 inputs, got %d", len(inputs)))
	}

	acc := table.Shift()
	for i, x := range inputs {
		for j := 0; j < bitsPerInput; j++ {
			if x.Bit(j) == 0 {
				continue
			}
			addend, err := table.Addend(i, j)
			if err != nil {
				return nil, err
			}
			next, err := AddDistinctX(acc, addend)
			if err != nil {
				return nil, err
			}
			acc = next
		}
	}
	return acc.X, nil
}

// pedersen2 is a small convenience used throughout the message hashers for
// the common two-input case, matching the spec's P(a, b) notation.
func pedersen2(table *PointTable, a, b *FieldElement) (*FieldElement, error) {
	return pedersenPoint(table, a, b)
}
