// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/address"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/instruction"
	"github.com/bitmark-inc/swallow/state"
	"github.com/bitmark-inc/swallow/token"
)

// burn the current threshold and advance the thresholds
//
// accounts: state, program authority, token account, mint, token program
func (p *Program) swallow(host Host, programID account.Key, accounts []*account.Info) error {
	a, err := instruction.NewSwallowAccounts(accounts)
	if nil != err {
		return err
	}

	stateAddress, err := host.FindProgramAddress(programID, []byte(address.StateLabel))
	if nil != err {
		return err
	}
	authorityAddress, err := host.FindProgramAddress(programID, []byte(address.AuthorityLabel))
	if nil != err {
		return err
	}
	if !stateAddress.Matches(a.State.Key) || !authorityAddress.Matches(a.Authority.Key) {
		return fault.ErrInvalidAccountData
	}

	current, err := state.Unpack(a.State.Data)
	if nil != err {
		return err
	}

	balance, err := token.Balance(a.TokenAccount.Data)
	if nil != err {
		return fault.ErrInvalidAccountData
	}
	if balance < current.Next {
		return fault.ErrInsufficientFunds
	}

	// checked before the burn so an overflow never destroys tokens
	advanced, err := current.Advance()
	if nil != err {
		return err
	}

	err = host.Burn(a.TokenAccount, a.Mint, a.Authority, current.Next, authorityAddress.Signer())
	if nil != err {
		return err
	}

	if err := advanced.Pack(a.State.Data); nil != err {
		return err
	}

	p.log.Infof("swallowed: %d  next threshold: %d", current.Next, advanced.Next)
	return nil
}
