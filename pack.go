// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import "math/big"

// packField is one shift-and-add term of a packed message word. When
// packWord processes a field it first shifts the running accumulator left
// by bits (making room for this field) and then adds value. The very first
// field in a call needs no shift (the accumulator starts at zero), so its
// bits value is immaterial and is only supplied for documentation.
type packField struct {
	value *big.Int
	bits  uint
}

// packWord folds a sequence of fields into a single big integer by
// left-shift-and-add, most-significant field first -- exactly the order
// each field is listed in spec.md section 4.4.
func packWord(fields ...packField) *big.Int {
	word := new(big.Int)
	for _, f := range fields {
		word.Lsh(word, f.bits)
		word.Add(word, f.value)
	}
	return word
}

func u64(x uint64) *big.Int { return new(big.Int).SetUint64(x) }

// packBaseWord builds the 251-bit Order/Transfer base word (spec.md section
// 4.4): instructionType . vault0(31) . vault1(31) . amount0(63) .
// amount1(63) . nonce(31) . expiration(22). instructionType occupies the
// remaining 10 high bits (251 - 241); its value (0-5) always fits.
func packBaseWord(instructionType InstructionType, vault0, vault1, amount0, amount1 uint64, nonce, expiration uint32) *big.Int {
	return packWord(
		packField{big.NewInt(int64(instructionType)), 0},
		packField{u64(vault0), 31},
		packField{u64(vault1), 31},
		packField{u64(amount0), 63},
		packField{u64(amount1), 63},
		packField{u64(uint64(nonce)), 31},
		packField{u64(uint64(expiration)), 22},
	)
}

// packTransferFeeWord1 builds the transfer-with-fee word 1 (spec.md section
// 4.4): senderVaultId(64) . receiverVaultId(64) . feeVaultId(64) . nonce(32).
// The widths are padded to 64/32 for uniform packing even though the
// semantic ranges remain 31/31/31/31.
func packTransferFeeWord1(senderVaultID, receiverVaultID, feeVaultID uint64, nonce uint32) *big.Int {
	return packWord(
		packField{u64(senderVaultID), 0},
		packField{u64(receiverVaultID), 64},
		packField{u64(feeVaultID), 64},
		packField{u64(uint64(nonce)), 32},
	)
}

// packTransferFeeWord2 builds the transfer-with-fee word 2 (spec.md section
// 4.4): instructionType . amount(64) . feeLimit(64) . expiration(32) .
// padding zero(81).
func packTransferFeeWord2(instructionType InstructionType, amount, feeLimit uint64, expiration uint32) *big.Int {
	return packWord(
		packField{big.NewInt(int64(instructionType)), 0},
		packField{u64(amount), 64},
		packField{u64(feeLimit), 64},
		packField{u64(uint64(expiration)), 32},
		packField{big.NewInt(0), 81},
	)
}

// packLimitOrderFeeWord1 builds the limit-order-with-fee word 1 (spec.md
// section 4.4): amountSell(64) . amountBuy(64) . feeLimit(64) . nonce(32).
func packLimitOrderFeeWord1(amountSell, amountBuy, feeLimit uint64, nonce uint32) *big.Int {
	return packWord(
		packField{u64(amountSell), 0},
		packField{u64(amountBuy), 64},
		packField{u64(feeLimit), 64},
		packField{u64(uint64(nonce)), 32},
	)
}

// packLimitOrderFeeWord2 builds the limit-order-with-fee word 2 (spec.md
// section 4.4): instructionType . feeVaultId(64) . vaultSell(64) .
// vaultBuy(64) . expiration(32) . padding zero(17).
func packLimitOrderFeeWord2(instructionType InstructionType, feeVaultID, vaultSell, vaultBuy uint64, expiration uint32) *big.Int {
	return packWord(
		packField{big.NewInt(int64(instructionType)), 0},
		packField{u64(feeVaultID), 64},
		packField{u64(vaultSell), 64},
		packField{u64(vaultBuy), 64},
		packField{u64(uint64(expiration)), 32},
		packField{big.NewInt(0), 17},
	)
}

// packedWordToField converts a packed word into a FieldElement, which by
// construction (widths summing to <= 251 bits) always lies in [0, p).
func packedWordToField(word *big.Int) (*FieldElement, error) {
	return FieldElementFromBigInt(word)
}
