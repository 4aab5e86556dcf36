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
)

// create the state record and seed both thresholds
//
// accounts: state, payer, system program
func (p *Program) initialize(host Host, programID account.Key, accounts []*account.Info, payload []byte) error {
	a, err := instruction.NewInitializeAccounts(accounts)
	if nil != err {
		return err
	}

	stateAddress, err := host.FindProgramAddress(programID, []byte(address.StateLabel))
	if nil != err {
		return err
	}
	if !stateAddress.Matches(a.State.Key) {
		return fault.ErrInvalidAccountData
	}

	threshold, err := instruction.DecodeThreshold(payload)
	if nil != err {
		return err
	}

	lamports := host.Rent().MinimumBalance(state.Size)

	// fails if the address is already in use, so a second
	// initialise cannot reset the thresholds
	err = host.CreateAccount(a.Payer, a.State, lamports, state.Size, programID, stateAddress.Signer())
	if nil != err {
		return err
	}

	record := state.New(threshold)
	if err := record.Pack(a.State.Data); nil != err {
		return err
	}

	p.log.Infof("initialised: %s  threshold: %d  funded: %d", a.State.Key, threshold, lamports)
	return nil
}
