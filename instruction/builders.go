// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/address"
)

// NewInitialize - client side initialise call, payer funds the state record
func NewInitialize(programID account.Key, payer account.Key, threshold uint64) (Instruction, error) {
	s, err := address.State(programID)
	if nil != err {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: programID,
		Accounts: []Meta{
			{Key: s.Key, IsSigner: false, IsWritable: true},
			{Key: payer, IsSigner: true, IsWritable: true},
			{Key: account.SystemProgramID, IsSigner: false, IsWritable: false},
		},
		Data: EncodeInitialize(threshold),
	}, nil
}

// NewSwallow - client side swallow call against the program's token account
func NewSwallow(programID account.Key, tokenAccount account.Key, mint account.Key) (Instruction, error) {
	s, err := address.State(programID)
	if nil != err {
		return Instruction{}, err
	}
	a, err := address.Authority(programID)
	if nil != err {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: programID,
		Accounts: []Meta{
			{Key: s.Key, IsSigner: false, IsWritable: true},
			{Key: a.Key, IsSigner: false, IsWritable: false},
			{Key: tokenAccount, IsSigner: false, IsWritable: true},
			{Key: mint, IsSigner: false, IsWritable: true},
			{Key: account.TokenProgramID, IsSigner: false, IsWritable: false},
		},
		Data: EncodeSwallow(),
	}, nil
}
