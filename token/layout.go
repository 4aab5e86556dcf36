// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - fungible token account and mint layouts
//
// account (165 bytes):
//
//   mint(32) ++ owner(32) ++ amount(le64) ++ delegate(option key)
//   ++ state(1) ++ is_native(option le64) ++ delegated_amount(le64)
//   ++ close_authority(option key)
//
// mint (82 bytes):
//
//   mint_authority(option key) ++ supply(le64) ++ decimals(1)
//   ++ is_initialised(1) ++ freeze_authority(option key)
//
// an option is a little endian uint32 tag (0 = none, 1 = some)
// followed by the value, which is zero filled when absent
package token

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/fault"
)

// sizes of the two records
const (
	AccountSize = 165
	MintSize    = 82
)

// amount field of an account
const (
	AmountOffset = 64
	AmountEnd    = AmountOffset + 8
)

// AccountState - lifecycle of a token account
type AccountState uint8

// the account states
const (
	Uninitialized AccountState = iota
	Initialized
	Frozen
)

// Account - a holder of some units of a mint
type Account struct {
	Mint            account.Key
	Owner           account.Key
	Amount          uint64
	Delegate        *account.Key
	State           AccountState
	IsNative        *uint64
	DelegatedAmount uint64
	CloseAuthority  *account.Key
}

// Mint - the issuer record of a token
type Mint struct {
	MintAuthority   *account.Key
	Supply          uint64
	Decimals        uint8
	IsInitialized   bool
	FreezeAuthority *account.Key
}

// Balance - read only the amount of a token account
func Balance(data []byte) (uint64, error) {
	if len(data) < AmountEnd {
		return 0, fault.ErrTokenAccountTooShort
	}
	return binary.LittleEndian.Uint64(data[AmountOffset:AmountEnd]), nil
}

// UnpackAccount - decode a token account
func UnpackAccount(data []byte) (*Account, error) {
	if len(data) < AccountSize {
		return nil, fault.ErrTokenAccountTooShort
	}
	a := &Account{
		Mint:   solana.PublicKeyFromBytes(data[0:32]),
		Owner:  solana.PublicKeyFromBytes(data[32:64]),
		Amount: binary.LittleEndian.Uint64(data[AmountOffset:AmountEnd]),
	}
	a.Delegate = getOptionKey(data[72:108])
	a.State = AccountState(data[108])
	if 0 != binary.LittleEndian.Uint32(data[109:113]) {
		n := binary.LittleEndian.Uint64(data[113:121])
		a.IsNative = &n
	}
	a.DelegatedAmount = binary.LittleEndian.Uint64(data[121:129])
	a.CloseAuthority = getOptionKey(data[129:165])
	return a, nil
}

// Pack - encode a token account
func (a *Account) Pack(data []byte) error {
	if len(data) < AccountSize {
		return fault.ErrTokenAccountTooShort
	}
	copy(data[0:32], a.Mint[:])
	copy(data[32:64], a.Owner[:])
	binary.LittleEndian.PutUint64(data[AmountOffset:AmountEnd], a.Amount)
	putOptionKey(data[72:108], a.Delegate)
	data[108] = byte(a.State)
	if nil == a.IsNative {
		binary.LittleEndian.PutUint32(data[109:113], 0)
		binary.LittleEndian.PutUint64(data[113:121], 0)
	} else {
		binary.LittleEndian.PutUint32(data[109:113], 1)
		binary.LittleEndian.PutUint64(data[113:121], *a.IsNative)
	}
	binary.LittleEndian.PutUint64(data[121:129], a.DelegatedAmount)
	putOptionKey(data[129:165], a.CloseAuthority)
	return nil
}

// UnpackMint - decode a mint
func UnpackMint(data []byte) (*Mint, error) {
	if len(data) < MintSize {
		return nil, fault.ErrMintTooShort
	}
	return &Mint{
		MintAuthority:   getOptionKey(data[0:36]),
		Supply:          binary.LittleEndian.Uint64(data[36:44]),
		Decimals:        data[44],
		IsInitialized:   0 != data[45],
		FreezeAuthority: getOptionKey(data[46:82]),
	}, nil
}

// Pack - encode a mint
func (m *Mint) Pack(data []byte) error {
	if len(data) < MintSize {
		return fault.ErrMintTooShort
	}
	putOptionKey(data[0:36], m.MintAuthority)
	binary.LittleEndian.PutUint64(data[36:44], m.Supply)
	data[44] = m.Decimals
	data[45] = 0
	if m.IsInitialized {
		data[45] = 1
	}
	putOptionKey(data[46:82], m.FreezeAuthority)
	return nil
}

// 36 byte buffer: tag(4) ++ key(32)
func getOptionKey(buffer []byte) *account.Key {
	if 0 == binary.LittleEndian.Uint32(buffer[0:4]) {
		return nil
	}
	key := solana.PublicKeyFromBytes(buffer[4:36])
	return &key
}

func putOptionKey(buffer []byte, key *account.Key) {
	if nil == key {
		for i := range buffer[:36] {
			buffer[i] = 0
		}
		return
	}
	binary.LittleEndian.PutUint32(buffer[0:4], 1)
	copy(buffer[4:36], key[:])
}
