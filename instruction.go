// Copyright (c) 2024 The starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package starkcurve

// InstructionType is the small integer tag distinguishing the six
// supported message shapes. It is a closed enum: every (hasFee,
// hasCondition, kind) combination the module supports maps to exactly one
// InstructionType, packing layout, and hash tree (spec.md section 9 "Design
// Notes" recommends exactly this dispatch-table shape over an inheritance
// hierarchy).
type InstructionType uint8

const (
	// InstructionLimitOrder is a limit order with no fee.
	InstructionLimitOrder InstructionType = 0

	// InstructionTransfer is a transfer with neither a fee nor a condition.
	InstructionTransfer InstructionType = 1

	// InstructionConditionalTransfer is a transfer with a condition and no
	// fee.
	InstructionConditionalTransfer InstructionType = 2

	// InstructionLimitOrderWithFee is a limit order that also pays a fee.
	InstructionLimitOrderWithFee InstructionType = 3

	// InstructionTransferWithFee is a transfer with a fee and no condition.
	InstructionTransferWithFee InstructionType = 4

	// InstructionConditionalTransferWithFee is a transfer with both a fee
	// and a condition.
	InstructionConditionalTransferWithFee InstructionType = 5
)
