// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package starkcurve implements the client-side cryptographic primitives of a
Stark-curve layer-2 exchange: the Pedersen hash, canonical instruction
packing and hashing for limit orders and transfers (with fee and condition
variants), and ECDSA signing and verification over the curve.

An overview of the features provided by this package:

  - FieldElement and Scalar, unsigned integers modulo the curve's field
    prime p and group order n respectively
  - Point, an affine Stark-curve point, with addition, doubling, and two
    scalar-multiplication routines (a general double-and-add for ECDSA and
    a 251-bit bit-serial routine mirroring the on-chain verification
    circuit, used by Verify)
  - PointTable, the 506-point constant table the Pedersen hash sums over,
    either validated from an externally supplied set of constants or
    generated deterministically for testing
  - Pedersen, the one- and two-input Pedersen hash
  - Message packers and hashers for limit orders and transfers, in both
    fee-less and fee-paying forms, matching the bit-exact word layouts and
    hash trees of the wire protocol
  - RangeGuards, the bounded-range assertions every packed field is
    checked against before it is hashed or signed
  - Sign and Verify, ECDSA over the curve with an explicit, caller-supplied
    nonce -- this package never generates signing randomness itself
  - HashStrategy, a small seam for swapping which PointTable backs the
    Pedersen operations at a call site without touching the call site itself

This package performs no key exchange, no BIP32-style key derivation, and no
Schnorr signing; those are out of scope. It also does not ship the real,
StarkWare-published constant-point table: that table is supplied by the
caller via NewPointTable. GeneratePointTable and DefaultPointTable produce a
self-consistent but non-production substitute for tests and local use.
*/
package starkcurve
