// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import (
	"fmt"
	"math/big"
)

// Declared bit widths and moduli for every guarded field in spec.md's data
// model (section 3). Vault ids, amounts, nonces, and timestamps are all
// guarded against a power-of-two bound; tokens, public keys, and conditions
// are guarded against the field prime itself.
var (
	vaultBound      = new(big.Int).Lsh(big.NewInt(1), 31)
	amountBound     = new(big.Int).Lsh(big.NewInt(1), 63)
	nonceBound      = new(big.Int).Lsh(big.NewInt(1), 31)
	expirationBound = new(big.Int).Lsh(big.NewInt(1), 22)
	feeLimitBound   = new(big.Int).Lsh(big.NewInt(1), 63)
)

// assertInRange asserts lo <= x < hi, failing with the same human-readable
// message the reference implementation uses: "Message not signable, invalid
// {name} length."
func assertInRange(x, lo, hi *big.Int, name string) error {
	if x.Cmp(lo) < 0 || x.Cmp(hi) >= 0 {
		return makeError(ErrInvalidRange,
			fmt.Sprintf("Message not signable, invalid %s length.", name))
	}
	return nil
}

func assertVaultID(x *big.Int, name string) error {
	return assertInRange(x, big.NewInt(0), vaultBound, name)
}

func assertAmount(x *big.Int, name string) error {
	return assertInRange(x, big.NewInt(0), amountBound, name)
}

func assertNonce(x *big.Int, name string) error {
	return assertInRange(x, big.NewInt(0), nonceBound, name)
}

func assertExpiration(x *big.Int, name string) error {
	return assertInRange(x, big.NewInt(0), expirationBound, name)
}

func assertFeeLimit(x *big.Int, name string) error {
	return assertInRange(x, big.NewInt(0), feeLimitBound, name)
}

// assertFieldRange asserts that x is a valid field element, i.e. in [0, p).
// This is the guard applied to tokens, public keys, and conditions.
func assertFieldRange(x *big.Int, name string) error {
	return assertInRange(x, big.NewInt(0), fieldPrime, name)
}
