// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import "os"

// HashStrategy selects which PointTable backs the Pedersen hash operations
// in a given process. Swapping this out for a native/optimized
// implementation (e.g. an assembly or GPU-backed point-sum routine loading
// the real StarkWare constants) is explicitly out of scope for this module;
// HashStrategy exists so a caller can make that substitution at the
// composition root without touching any call site.
type HashStrategy struct {
	Table *PointTable
}

// NewHashStrategy wraps an already-validated PointTable, typically one
// built from NewPointTable with the real, externally supplied constants.
func NewHashStrategy(table *PointTable) HashStrategy {
	return HashStrategy{Table: table}
}

// DefaultHashStrategy wraps the package's lazily generated, non-production
// PointTable. Suitable for tests and local experimentation only.
func DefaultHashStrategy() HashStrategy {
	return HashStrategy{Table: DefaultPointTable()}
}

// strategyEnvVar names the environment variable StrategyFromEnv consults.
const strategyEnvVar = "STARKCURVE_POINT_TABLE"

// StrategyFromEnv selects a HashStrategy based on the STARKCURVE_POINT_TABLE
// environment variable:
//
//   - unset or "default": DefaultHashStrategy()
//   - any other value: treated as a path is the caller's responsibility --
//     this function only recognizes "default" and returns ErrInvalidInput
//     for anything else, since loading a table from disk would pull in a
//     file format this module does not define.
func StrategyFromEnv() (HashStrategy, error) {
	v := os.Getenv(strategyEnvVar)
	if v == "" || v == "default" {
		return DefaultHashStrategy(), nil
	}
	return HashStrategy{}, makeError(ErrInvalidInput,
		"unrecognized "+strategyEnvVar+" value: "+v)
}

// Pedersen computes the Pedersen hash using the strategy's table.
func (s HashStrategy) Pedersen(inputs ...*FieldElement) (string, error) {
	return Pedersen(s.Table, inputs...)
}

// GetLimitOrderMsgHash computes a fee-less limit order digest using the
// strategy's table.
func (s HashStrategy) GetLimitOrderMsgHash(p LimitOrderParams) (string, error) {
	return GetLimitOrderMsgHash(s.Table, p)
}

// GetLimitOrderMsgHashWithFee computes a fee-paying limit order digest using
// the strategy's table.
func (s HashStrategy) GetLimitOrderMsgHashWithFee(p LimitOrderParams) (string, error) {
	return GetLimitOrderMsgHashWithFee(s.Table, p)
}

// GetTransferMsgHash computes a fee-less transfer digest using the
// strategy's table.
func (s HashStrategy) GetTransferMsgHash(p TransferParams) (string, error) {
	return GetTransferMsgHash(s.Table, p)
}

// GetTransferMsgHashWithFee computes a fee-paying transfer digest using the
// strategy's table.
func (s HashStrategy) GetTransferMsgHashWithFee(p TransferParams) (string, error) {
	return GetTransferMsgHashWithFee(s.Table, p)
}

// Verify checks sig against pub and msgHashHex using the strategy's table as
// the shift point for the AIR-mimicking verification arithmetic.
func (s HashStrategy) Verify(pub PublicKey, msgHashHex string, sig *Signature) (bool, error) {
	return Verify(s.Table, pub, msgHashHex, sig)
}
