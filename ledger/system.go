// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/instruction"
	"github.com/bitmark-inc/swallow/rent"
)

// system instruction tags, little endian uint32
const (
	systemCreateAccount uint32 = 0
	systemTransfer      uint32 = 2
)

// encoded sizes including the tag
const (
	createAccountSize = 4 + 8 + 8 + 32
	transferSize      = 4 + 8
)

// MaxAccountSpace - largest data allocation for a new account
const MaxAccountSpace = 10 * 1024 * 1024

// NewCreateAccount - fund and allocate target, assigning it to owner
//
// both payer and target must sign
func NewCreateAccount(payer account.Key, target account.Key, lamports uint64, space uint64, owner account.Key) instruction.Instruction {
	data := make([]byte, createAccountSize)
	binary.LittleEndian.PutUint32(data[0:4], systemCreateAccount)
	binary.LittleEndian.PutUint64(data[4:12], lamports)
	binary.LittleEndian.PutUint64(data[12:20], space)
	copy(data[20:52], owner[:])

	return instruction.Instruction{
		ProgramID: account.SystemProgramID,
		Accounts: []instruction.Meta{
			{Key: payer, IsSigner: true, IsWritable: true},
			{Key: target, IsSigner: true, IsWritable: true},
		},
		Data: data,
	}
}

// NewSystemTransfer - move lamports between system accounts
func NewSystemTransfer(from account.Key, to account.Key, lamports uint64) instruction.Instruction {
	data := make([]byte, transferSize)
	binary.LittleEndian.PutUint32(data[0:4], systemTransfer)
	binary.LittleEndian.PutUint64(data[4:12], lamports)

	return instruction.Instruction{
		ProgramID: account.SystemProgramID,
		Accounts: []instruction.Meta{
			{Key: from, IsSigner: true, IsWritable: true},
			{Key: to, IsWritable: true},
		},
		Data: data,
	}
}

func processSystem(ctx *invocation, accounts []*account.Info, data []byte) error {
	if len(data) < 4 {
		return fault.ErrInvalidInstructionData
	}

	switch binary.LittleEndian.Uint32(data[0:4]) {

	case systemCreateAccount:
		if createAccountSize != len(data) {
			return fault.ErrInvalidInstructionData
		}
		if len(accounts) < 2 {
			return fault.ErrNotEnoughAccountKeys
		}
		payer := accounts[0]
		target := accounts[1]
		if !payer.IsSigner || !target.IsSigner {
			return fault.ErrMissingRequiredSignature
		}
		lamports := binary.LittleEndian.Uint64(data[4:12])
		space := binary.LittleEndian.Uint64(data[12:20])
		var owner account.Key
		copy(owner[:], data[20:52])
		return createAccount(ctx.bank.rent, payer, target, lamports, space, owner)

	case systemTransfer:
		if transferSize != len(data) {
			return fault.ErrInvalidInstructionData
		}
		if len(accounts) < 2 {
			return fault.ErrNotEnoughAccountKeys
		}
		from := accounts[0]
		if !from.IsSigner {
			return fault.ErrMissingRequiredSignature
		}
		return transferLamports(from, accounts[1], binary.LittleEndian.Uint64(data[4:12]))

	default:
		return fault.ErrUnsupportedInstruction
	}
}

// signatures are checked by the caller
func createAccount(policy rent.Policy, payer *account.Info, target *account.Info, lamports uint64, space uint64, owner account.Key) error {
	err := mustWrite(payer, target)
	if nil != err {
		return err
	}
	if !target.IsUnused() {
		return fault.ErrAccountAlreadyInUse
	}
	if space > MaxAccountSpace {
		return fault.ErrAccountSpaceTooLarge
	}
	if payer.Lamports < lamports {
		return fault.ErrInsufficientLamports
	}
	if !policy.IsExempt(lamports, space) {
		return fault.ErrInsufficientFundsForRent
	}

	payer.Lamports -= lamports
	target.Lamports = lamports
	target.Data = make([]byte, space)
	target.Owner = owner
	return nil
}

func transferLamports(from *account.Info, to *account.Info, lamports uint64) error {
	err := mustWrite(from, to)
	if nil != err {
		return err
	}
	if !from.Owner.Equals(account.SystemProgramID) {
		return fault.ErrIncorrectProgramID
	}
	if from.Lamports < lamports {
		return fault.ErrInsufficientLamports
	}
	if from == to {
		return nil
	}
	if to.Lamports+lamports < to.Lamports {
		return fault.ErrArithmeticOverflow
	}
	from.Lamports -= lamports
	to.Lamports += lamports
	return nil
}

// all accounts must have been passed as writable
func mustWrite(accounts ...*account.Info) error {
	for _, info := range accounts {
		if !info.IsWritable {
			return fault.ErrReadonlyModified
		}
	}
	return nil
}
