// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/instruction"
)

// RentSysvarID - passed to the initialise calls for compatibility,
// the ledger does not read it
var RentSysvarID = solana.MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")

// Opcode - first byte of a token instruction
type Opcode uint8

// supported token instructions
const (
	OpInitializeMint    Opcode = 0
	OpInitializeAccount Opcode = 1
	OpTransfer          Opcode = 3
	OpMintTo            Opcode = 7
	OpBurn              Opcode = 8
)

// Instruction - decoded token instruction
type Instruction struct {
	Opcode          Opcode
	Amount          uint64
	Decimals        uint8
	MintAuthority   account.Key
	FreezeAuthority *account.Key
}

// DecodeInstruction - parse token instruction data
func DecodeInstruction(data []byte) (*Instruction, error) {
	if 0 == len(data) {
		return nil, fault.ErrInvalidInstructionData
	}
	ix := &Instruction{
		Opcode: Opcode(data[0]),
	}
	payload := data[1:]

	switch ix.Opcode {
	case OpInitializeMint:
		// decimals(1) ++ authority(32) ++ freeze option(1) [++ freeze(32)]
		if len(payload) < 34 {
			return nil, fault.ErrInvalidInstructionData
		}
		ix.Decimals = payload[0]
		ix.MintAuthority = solana.PublicKeyFromBytes(payload[1:33])
		switch payload[33] {
		case 0:
		case 1:
			if len(payload) < 66 {
				return nil, fault.ErrInvalidInstructionData
			}
			freeze := solana.PublicKeyFromBytes(payload[34:66])
			ix.FreezeAuthority = &freeze
		default:
			return nil, fault.ErrInvalidInstructionData
		}

	case OpInitializeAccount:

	case OpTransfer, OpMintTo, OpBurn:
		if len(payload) < 8 {
			return nil, fault.ErrInvalidInstructionData
		}
		ix.Amount = binary.LittleEndian.Uint64(payload[:8])

	default:
		return nil, fault.ErrUnsupportedInstruction
	}
	return ix, nil
}

// Encode - instruction data
func (ix *Instruction) Encode() []byte {
	switch ix.Opcode {
	case OpInitializeMint:
		data := make([]byte, 0, 67)
		data = append(data, byte(ix.Opcode), ix.Decimals)
		data = append(data, ix.MintAuthority[:]...)
		if nil == ix.FreezeAuthority {
			data = append(data, 0)
		} else {
			data = append(data, 1)
			data = append(data, ix.FreezeAuthority[:]...)
		}
		return data

	case OpTransfer, OpMintTo, OpBurn:
		data := make([]byte, 9)
		data[0] = byte(ix.Opcode)
		binary.LittleEndian.PutUint64(data[1:], ix.Amount)
		return data

	default:
		return []byte{byte(ix.Opcode)}
	}
}

// NewInitializeMint - accounts: mint, rent sysvar
func NewInitializeMint(mint account.Key, decimals uint8, authority account.Key, freeze *account.Key) instruction.Instruction {
	ix := &Instruction{
		Opcode:          OpInitializeMint,
		Decimals:        decimals,
		MintAuthority:   authority,
		FreezeAuthority: freeze,
	}
	return instruction.Instruction{
		ProgramID: account.TokenProgramID,
		Accounts: []instruction.Meta{
			{Key: mint, IsWritable: true},
			{Key: RentSysvarID},
		},
		Data: ix.Encode(),
	}
}

// NewInitializeAccount - accounts: token account, mint, owner, rent sysvar
func NewInitializeAccount(tokenAccount account.Key, mint account.Key, owner account.Key) instruction.Instruction {
	ix := &Instruction{Opcode: OpInitializeAccount}
	return instruction.Instruction{
		ProgramID: account.TokenProgramID,
		Accounts: []instruction.Meta{
			{Key: tokenAccount, IsWritable: true},
			{Key: mint},
			{Key: owner},
			{Key: RentSysvarID},
		},
		Data: ix.Encode(),
	}
}

// NewTransfer - accounts: source, destination, owner
func NewTransfer(source account.Key, destination account.Key, owner account.Key, amount uint64) instruction.Instruction {
	ix := &Instruction{Opcode: OpTransfer, Amount: amount}
	return instruction.Instruction{
		ProgramID: account.TokenProgramID,
		Accounts: []instruction.Meta{
			{Key: source, IsWritable: true},
			{Key: destination, IsWritable: true},
			{Key: owner, IsSigner: true},
		},
		Data: ix.Encode(),
	}
}

// NewMintTo - accounts: mint, destination, mint authority
func NewMintTo(mint account.Key, destination account.Key, authority account.Key, amount uint64) instruction.Instruction {
	ix := &Instruction{Opcode: OpMintTo, Amount: amount}
	return instruction.Instruction{
		ProgramID: account.TokenProgramID,
		Accounts: []instruction.Meta{
			{Key: mint, IsWritable: true},
			{Key: destination, IsWritable: true},
			{Key: authority, IsSigner: true},
		},
		Data: ix.Encode(),
	}
}

// NewBurn - accounts: token account, mint, owner
func NewBurn(tokenAccount account.Key, mint account.Key, owner account.Key, amount uint64) instruction.Instruction {
	ix := &Instruction{Opcode: OpBurn, Amount: amount}
	return instruction.Instruction{
		ProgramID: account.TokenProgramID,
		Accounts: []instruction.Meta{
			{Key: tokenAccount, IsWritable: true},
			{Key: mint, IsWritable: true},
			{Key: owner, IsSigner: true},
		},
		Data: ix.Encode(),
	}
}
