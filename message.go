// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

import "math/big"

// parseGuardedHexField parses a "0x"-prefixed hex field element and
// range-guards it to [0, p), producing the *InvalidRange* error named by the
// field when it is out of bounds and *MissingHexPrefix* when the prefix is
// absent. This is the single parsing path used for token ids, public keys,
// and conditions across every message hasher below -- deliberately uniform,
// unlike the one reference implementation spec.md's Open Question flags as
// parsing "condition" inconsistently (decimal in one path, hex in another).
// This module parses it as hex in every path.
func parseGuardedHexField(s, name string) (*FieldElement, error) {
	stripped, err := requireHexPrefix(s)
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(stripped, 16)
	if !ok {
		return nil, makeError(ErrInvalidInput, "malformed hex value for "+name)
	}
	if err := assertFieldRange(v, name); err != nil {
		return nil, err
	}
	return FieldElementFromBigInt(v)
}

// checkDigestRange re-asserts the stricter EcdsaDigest bound (spec.md
// section 4.5): a valid Pedersen output is already < p, but every message
// hasher must additionally confirm it is < 2**251 before handing it back to
// a caller who may feed it straight into Sign or Verify.
func checkDigestRange(h *FieldElement) error {
	if h.Int().Cmp(MaxEcdsaVal) >= 0 {
		return makeError(ErrDigestOutOfRange, "message digest is not strictly less than 2**251")
	}
	return nil
}

// LimitOrderParams is the caller-supplied input to GetLimitOrderMsgHash and
// GetLimitOrderMsgHashWithFee.
type LimitOrderParams struct {
	VaultSell            uint64
	VaultBuy             uint64
	AmountSell           string // decimal, [0, 2**63)
	AmountBuy            string // decimal, [0, 2**63)
	TokenSell            string // "0x"-prefixed hex, [0, p)
	TokenBuy             string // "0x"-prefixed hex, [0, p)
	Nonce                uint32
	ExpirationTimestamp  uint32
	FeeToken             string // "0x"-prefixed hex, [0, p); only used *WithFee
	FeeVaultID           uint64 // only used *WithFee
	FeeLimit             string // decimal, [0, 2**63); only used *WithFee
}

// GetLimitOrderMsgHash computes the Pedersen digest of a fee-less limit
// order: H = P(P(tokenSell, tokenBuy), packedBase), instructionType 0.
func GetLimitOrderMsgHash(table *PointTable, p LimitOrderParams) (string, error) {
	fe, err := limitOrderHash(table, p, InstructionLimitOrder, false)
	if err != nil {
		return "", err
	}
	return fe.Hex(), nil
}

// GetLimitOrderMsgHashWithFee computes the Pedersen digest of a limit order
// that also pays a fee, instructionType 3: tmp = P(P(tokenSell, tokenBuy),
// feeToken); H = P(P(tmp, packed1), packed2).
func GetLimitOrderMsgHashWithFee(table *PointTable, p LimitOrderParams) (string, error) {
	fe, err := limitOrderHash(table, p, InstructionLimitOrderWithFee, true)
	if err != nil {
		return "", err
	}
	return fe.Hex(), nil
}

func limitOrderHash(table *PointTable, p LimitOrderParams, kind InstructionType, withFee bool) (*FieldElement, error) {
	if err := assertVaultID(big.NewInt(int64(p.VaultSell)), "vaultSell"); err != nil {
		return nil, err
	}
	if err := assertVaultID(big.NewInt(int64(p.VaultBuy)), "vaultBuy"); err != nil {
		return nil, err
	}
	amountSell, ok := new(big.Int).SetString(p.AmountSell, 10)
	if !ok {
		return nil, makeError(ErrInvalidInput, "malformed decimal amountSell")
	}
	if err := assertAmount(amountSell, "amountSell"); err != nil {
		return nil, err
	}
	amountBuy, ok := new(big.Int).SetString(p.AmountBuy, 10)
	if !ok {
		return nil, makeError(ErrInvalidInput, "malformed decimal amountBuy")
	}
	if err := assertAmount(amountBuy, "amountBuy"); err != nil {
		return nil, err
	}
	if err := assertNonce(big.NewInt(int64(p.Nonce)), "nonce"); err != nil {
		return nil, err
	}
	if err := assertExpiration(big.NewInt(int64(p.ExpirationTimestamp)), "expirationTimestamp"); err != nil {
		return nil, err
	}
	tokenSell, err := parseGuardedHexField(p.TokenSell, "tokenSell")
	if err != nil {
		return nil, err
	}
	tokenBuy, err := parseGuardedHexField(p.TokenBuy, "tokenBuy")
	if err != nil {
		return nil, err
	}

	tokenHash, err := pedersen2(table, tokenSell, tokenBuy)
	if err != nil {
		return nil, err
	}

	if !withFee {
		base, err := packedWordToField(packBaseWord(kind, p.VaultSell, p.VaultBuy,
			amountSell.Uint64(), amountBuy.Uint64(), p.Nonce, p.ExpirationTimestamp))
		if err != nil {
			return nil, err
		}
		h, err := pedersen2(table, tokenHash, base)
		if err != nil {
			return nil, err
		}
		if err := checkDigestRange(h); err != nil {
			return nil, err
		}
		return h, nil
	}

	if err := assertVaultID(big.NewInt(int64(p.FeeVaultID)), "feeVaultId"); err != nil {
		return nil, err
	}
	feeLimit, ok := new(big.Int).SetString(p.FeeLimit, 10)
	if !ok {
		return nil, makeError(ErrInvalidInput, "malformed decimal feeLimit")
	}
	if err := assertFeeLimit(feeLimit, "feeLimit"); err != nil {
		return nil, err
	}
	feeToken, err := parseGuardedHexField(p.FeeToken, "feeToken")
	if err != nil {
		return nil, err
	}

	tmp, err := pedersen2(table, tokenHash, feeToken)
	if err != nil {
		return nil, err
	}
	packed1, err := packedWordToField(packLimitOrderFeeWord1(amountSell.Uint64(), amountBuy.Uint64(), feeLimit.Uint64(), p.Nonce))
	if err != nil {
		return nil, err
	}
	packed2, err := packedWordToField(packLimitOrderFeeWord2(kind, p.FeeVaultID, p.VaultSell, p.VaultBuy, p.ExpirationTimestamp))
	if err != nil {
		return nil, err
	}
	step1, err := pedersen2(table, tmp, packed1)
	if err != nil {
		return nil, err
	}
	h, err := pedersen2(table, step1, packed2)
	if err != nil {
		return nil, err
	}
	if err := checkDigestRange(h); err != nil {
		return nil, err
	}
	return h, nil
}

// TransferParams is the caller-supplied input to GetTransferMsgHash and
// GetTransferMsgHashWithFee.
type TransferParams struct {
	Amount              string // decimal, [0, 2**63)
	Nonce               uint32
	SenderVaultID       uint64
	Token               string // "0x"-prefixed hex, [0, p)
	ReceiverVaultID     uint64
	ReceiverPublicKey   string // "0x"-prefixed hex, [0, p)
	ExpirationTimestamp uint32
	Condition           *string // "0x"-prefixed hex, [0, p); nil means no condition

	FeeToken   string // "0x"-prefixed hex, [0, p); only used *WithFee
	FeeVaultID uint64 // only used *WithFee
	FeeLimit   string // decimal, [0, 2**63); only used *WithFee
}

// GetTransferMsgHash computes the Pedersen digest of a transfer with no fee.
// If Condition is nil the result uses instructionType 1 (H = P(P(token,
// receiverKey), packedBase) with amount1 = 0); otherwise it uses
// instructionType 2 (H = P(P(P(token, receiverKey), condition), packedBase)).
// The two code paths are guaranteed to produce different digests for
// identical fields because they use distinct instruction types.
func GetTransferMsgHash(table *PointTable, p TransferParams) (string, error) {
	fe, err := transferHash(table, p, false)
	if err != nil {
		return "", err
	}
	return fe.Hex(), nil
}

// GetTransferMsgHashWithFee computes the Pedersen digest of a transfer that
// also pays a fee. If Condition is nil it uses instructionType 4; otherwise
// instructionType 5.
func GetTransferMsgHashWithFee(table *PointTable, p TransferParams) (string, error) {
	fe, err := transferHash(table, p, true)
	if err != nil {
		return "", err
	}
	return fe.Hex(), nil
}

func transferHash(table *PointTable, p TransferParams, withFee bool) (*FieldElement, error) {
	amount, ok := new(big.Int).SetString(p.Amount, 10)
	if !ok {
		return nil, makeError(ErrInvalidInput, "malformed decimal amount")
	}
	if err := assertAmount(amount, "amount"); err != nil {
		return nil, err
	}
	if err := assertNonce(big.NewInt(int64(p.Nonce)), "nonce"); err != nil {
		return nil, err
	}
	if err := assertVaultID(big.NewInt(int64(p.SenderVaultID)), "senderVaultId"); err != nil {
		return nil, err
	}
	if err := assertVaultID(big.NewInt(int64(p.ReceiverVaultID)), "receiverVaultId"); err != nil {
		return nil, err
	}
	if err := assertExpiration(big.NewInt(int64(p.ExpirationTimestamp)), "expirationTimestamp"); err != nil {
		return nil, err
	}
	token, err := parseGuardedHexField(p.Token, "token")
	if err != nil {
		return nil, err
	}
	receiverKey, err := parseGuardedHexField(p.ReceiverPublicKey, "receiverPublicKey")
	if err != nil {
		return nil, err
	}

	if !withFee {
		var kind InstructionType
		var treeRoot *FieldElement
		tokenReceiver, err := pedersen2(table, token, receiverKey)
		if err != nil {
			return nil, err
		}
		if p.Condition == nil {
			kind = InstructionTransfer
			treeRoot = tokenReceiver
		} else {
			kind = InstructionConditionalTransfer
			condition, err := parseGuardedHexField(*p.Condition, "condition")
			if err != nil {
				return nil, err
			}
			treeRoot, err = pedersen2(table, tokenReceiver, condition)
			if err != nil {
				return nil, err
			}
		}
		base, err := packedWordToField(packBaseWord(kind, p.SenderVaultID, p.ReceiverVaultID, amount.Uint64(), 0, p.Nonce, p.ExpirationTimestamp))
		if err != nil {
			return nil, err
		}
		h, err := pedersen2(table, treeRoot, base)
		if err != nil {
			return nil, err
		}
		if err := checkDigestRange(h); err != nil {
			return nil, err
		}
		return h, nil
	}

	if err := assertVaultID(big.NewInt(int64(p.FeeVaultID)), "feeVaultId"); err != nil {
		return nil, err
	}
	feeLimit, ok := new(big.Int).SetString(p.FeeLimit, 10)
	if !ok {
		return nil, makeError(ErrInvalidInput, "malformed decimal feeLimit")
	}
	if err := assertFeeLimit(feeLimit, "feeLimit"); err != nil {
		return nil, err
	}
	feeToken, err := parseGuardedHexField(p.FeeToken, "feeToken")
	if err != nil {
		return nil, err
	}

	tmp, err := pedersen2(table, token, feeToken)
	if err != nil {
		return nil, err
	}
	tmp, err = pedersen2(table, tmp, receiverKey)
	if err != nil {
		return nil, err
	}

	var kind InstructionType
	var treeRoot *FieldElement
	if p.Condition == nil {
		kind = InstructionTransferWithFee
		treeRoot = tmp
	} else {
		kind = InstructionConditionalTransferWithFee
		condition, err := parseGuardedHexField(*p.Condition, "condition")
		if err != nil {
			return nil, err
		}
		treeRoot, err = pedersen2(table, tmp, condition)
		if err != nil {
			return nil, err
		}
	}

	packed1, err := packedWordToField(packTransferFeeWord1(p.SenderVaultID, p.ReceiverVaultID, p.FeeVaultID, p.Nonce))
	if err != nil {
		return nil, err
	}
	packed2, err := packedWordToField(packTransferFeeWord2(kind, amount.Uint64(), feeLimit.Uint64(), p.ExpirationTimestamp))
	if err != nil {
		return nil, err
	}
	step1, err := pedersen2(table, treeRoot, packed1)
	if err != nil {
		return nil, err
	}
	h, err := pedersen2(table, step1, packed2)
	if err != nil {
		return nil, err
	}
	if err := checkDigestRange(h); err != nil {
		return nil, err
	}
	return h, nil
}
