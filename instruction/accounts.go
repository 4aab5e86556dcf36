// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/fault"
)

// account counts, any other count is rejected
const (
	InitializeAccountCount = 3
	SwallowAccountCount    = 5
)

// InitializeAccounts - accounts passed to initialise
type InitializeAccounts struct {
	State         *account.Info
	Payer         *account.Info
	SystemProgram *account.Info
}

// SwallowAccounts - accounts passed to swallow
type SwallowAccounts struct {
	State        *account.Info
	Authority    *account.Info
	TokenAccount *account.Info
	Mint         *account.Info
	TokenProgram *account.Info
}

// NewInitializeAccounts - name the positional accounts of initialise
func NewInitializeAccounts(accounts []*account.Info) (*InitializeAccounts, error) {
	if InitializeAccountCount != len(accounts) {
		return nil, fault.ErrNotEnoughAccountKeys
	}
	return &InitializeAccounts{
		State:         accounts[0],
		Payer:         accounts[1],
		SystemProgram: accounts[2],
	}, nil
}

// NewSwallowAccounts - name the positional accounts of swallow
func NewSwallowAccounts(accounts []*account.Info) (*SwallowAccounts, error) {
	if SwallowAccountCount != len(accounts) {
		return nil, fault.ErrNotEnoughAccountKeys
	}
	return &SwallowAccounts{
		State:        accounts[0],
		Authority:    accounts[1],
		TokenAccount: accounts[2],
		Mint:         accounts[3],
		TokenProgram: accounts[4],
	}, nil
}
