// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/address"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/program"
	"github.com/bitmark-inc/swallow/rent"
)

// invocation - the host as seen by the program running one instruction
type invocation struct {
	bank      *Bank
	programID account.Key
	burned    *uint64
}

// ensure the interface is satisfied
var _ program.Host = &invocation{}

func (ctx *invocation) FindProgramAddress(programID account.Key, label []byte) (address.Derived, error) {
	return address.Find(programID, label)
}

func (ctx *invocation) Rent() rent.Policy {
	return ctx.bank.rent
}

// CreateAccount - system program call on behalf of the running program
func (ctx *invocation) CreateAccount(payer *account.Info, target *account.Info, lamports uint64, space uint64, owner account.Key, signer address.Signer) error {
	err := ctx.authorized(payer, signer)
	if nil != err {
		return err
	}
	err = ctx.authorized(target, signer)
	if nil != err {
		return err
	}
	return createAccount(ctx.bank.rent, payer, target, lamports, space, owner)
}

// Burn - token program call on behalf of the running program
func (ctx *invocation) Burn(source *account.Info, mint *account.Info, authority *account.Info, amount uint64, signer address.Signer) error {
	err := ctx.authorized(authority, signer)
	if nil != err {
		return err
	}
	err = burnTokens(source, mint, authority, amount)
	if nil != err {
		return err
	}
	*ctx.burned += amount
	return nil
}

// an account signs if the transaction signed for it or the signer
// seeds derive it under the running program
func (ctx *invocation) authorized(info *account.Info, signer address.Signer) error {
	if info.IsSigner {
		return nil
	}
	if signer.IsZero() {
		return fault.ErrMissingRequiredSignature
	}
	if !signer.Authorizes(ctx.programID, info.Key) {
		return fault.ErrInvalidDerivedSigner
	}
	return nil
}
