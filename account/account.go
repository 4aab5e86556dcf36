// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
)

// Key - a 32 byte ledger address
type Key = solana.PublicKey

// well known builtin program identities
var (
	SystemProgramID = solana.SystemProgramID
	TokenProgramID  = solana.TokenProgramID
)

// Info - a host managed account as seen by one instruction
//
// Key and the signer/writable flags describe how the account was
// passed in, the remaining fields are the ledger state of the
// account and are the only parts that are persisted
type Info struct {
	Key        Key
	Owner      Key
	Lamports   uint64
	Data       []byte
	IsSigner   bool
	IsWritable bool
	Executable bool
}

// New - an unused account at key, owned by the system program
func New(key Key) *Info {
	return &Info{
		Key:   key,
		Owner: SystemProgramID,
		Data:  []byte{},
	}
}

// IsUnused - true if nothing has ever been allocated at this address
func (info *Info) IsUnused() bool {
	return 0 == info.Lamports && 0 == len(info.Data) && info.Owner.Equals(SystemProgramID)
}

// Clone - deep copy so the original is unaffected by writes
func (info *Info) Clone() *Info {
	data := make([]byte, len(info.Data))
	copy(data, info.Data)
	c := *info
	c.Data = data
	return &c
}

// SameState - compare the persisted parts of two accounts
func (info *Info) SameState(other *Info) bool {
	return info.Owner.Equals(other.Owner) &&
		info.Lamports == other.Lamports &&
		info.Executable == other.Executable &&
		bytes.Equal(info.Data, other.Data)
}
