// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - wire encoding of calls into a program
//
// the burn program reads one opcode byte followed by an opcode
// specific payload:
//
//   0 ++ threshold(little endian uint64)   - initialise
//   1                                      - swallow
package instruction

import (
	"encoding/binary"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/fault"
)

// Opcode - first byte of the instruction data
type Opcode uint8

// the opcodes
const (
	Initialize Opcode = 0
	Swallow    Opcode = 1
)

// ThresholdSize - bytes in the initialise payload
const ThresholdSize = 8

// Meta - how a client passes one account to an instruction
type Meta struct {
	Key        account.Key
	IsSigner   bool
	IsWritable bool
}

// Instruction - one call of a program
type Instruction struct {
	ProgramID account.Key
	Accounts  []Meta
	Data      []byte
}

// String - opcode name for logging
func (op Opcode) String() string {
	switch op {
	case Initialize:
		return "initialize"
	case Swallow:
		return "swallow"
	default:
		return "unknown"
	}
}

// Decode - split instruction data into opcode and payload
func Decode(data []byte) (Opcode, []byte, error) {
	if 0 == len(data) {
		return 0, nil, fault.ErrInvalidInstructionData
	}
	op := Opcode(data[0])
	switch op {
	case Initialize, Swallow:
		return op, data[1:], nil
	default:
		return op, nil, fault.ErrInvalidInstructionData
	}
}

// DecodeThreshold - the initialise payload
func DecodeThreshold(payload []byte) (uint64, error) {
	if ThresholdSize != len(payload) {
		return 0, fault.ErrInvalidInstructionData
	}
	return binary.LittleEndian.Uint64(payload), nil
}

// EncodeInitialize - instruction data for initialise
func EncodeInitialize(threshold uint64) []byte {
	data := make([]byte, 1+ThresholdSize)
	data[0] = byte(Initialize)
	binary.LittleEndian.PutUint64(data[1:], threshold)
	return data
}

// EncodeSwallow - instruction data for swallow
func EncodeSwallow() []byte {
	return []byte{byte(Swallow)}
}
