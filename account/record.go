// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/swallow/fault"
)

// stored record layout:
//
//   owner(32) ++ lamports(big endian uint64) ++ executable(1) ++ data
const (
	ownerOffset      = 0
	lamportsOffset   = ownerOffset + solana.PublicKeyLength
	executableOffset = lamportsOffset + 8
	dataOffset       = executableOffset + 1
)

// Pack - convert the persisted parts of an account to a storage record
func (info *Info) Pack() []byte {
	buffer := make([]byte, dataOffset+len(info.Data))
	copy(buffer[ownerOffset:], info.Owner[:])
	binary.BigEndian.PutUint64(buffer[lamportsOffset:], info.Lamports)
	if info.Executable {
		buffer[executableOffset] = 1
	}
	copy(buffer[dataOffset:], info.Data)
	return buffer
}

// Unpack - rebuild an account from a storage record
//
// signer and writable flags are not stored and are always false
func Unpack(key Key, record []byte) (*Info, error) {
	if len(record) < dataOffset {
		return nil, fault.ErrRecordTooShort
	}

	data := make([]byte, len(record)-dataOffset)
	copy(data, record[dataOffset:])

	info := &Info{
		Key:        key,
		Owner:      solana.PublicKeyFromBytes(record[ownerOffset:lamportsOffset]),
		Lamports:   binary.BigEndian.Uint64(record[lamportsOffset:executableOffset]),
		Executable: 0 != record[executableOffset],
		Data:       data,
	}
	return info, nil
}
