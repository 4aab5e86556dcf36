// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/rent"
	"github.com/bitmark-inc/swallow/token"
)

// number of accounts each token instruction needs
var tokenAccountCount = map[token.Opcode]int{
	token.OpInitializeMint:    2,
	token.OpInitializeAccount: 4,
	token.OpTransfer:          3,
	token.OpMintTo:            3,
	token.OpBurn:              3,
}

func processToken(ctx *invocation, accounts []*account.Info, data []byte) error {
	ix, err := token.DecodeInstruction(data)
	if nil != err {
		return err
	}
	if len(accounts) < tokenAccountCount[ix.Opcode] {
		return fault.ErrNotEnoughAccountKeys
	}

	switch ix.Opcode {
	case token.OpInitializeMint:
		return initializeMint(ctx.bank.rent, accounts[0], ix.Decimals, ix.MintAuthority, ix.FreezeAuthority)

	case token.OpInitializeAccount:
		return initializeTokenAccount(ctx.bank.rent, accounts[0], accounts[1], accounts[2])

	case token.OpTransfer:
		if !accounts[2].IsSigner {
			return fault.ErrMissingRequiredSignature
		}
		return transferTokens(accounts[0], accounts[1], accounts[2], ix.Amount)

	case token.OpMintTo:
		if !accounts[2].IsSigner {
			return fault.ErrMissingRequiredSignature
		}
		return mintTokens(accounts[0], accounts[1], accounts[2], ix.Amount)

	case token.OpBurn:
		if !accounts[2].IsSigner {
			return fault.ErrMissingRequiredSignature
		}
		err := burnTokens(accounts[0], accounts[1], accounts[2], ix.Amount)
		if nil != err {
			return err
		}
		*ctx.burned += ix.Amount
		return nil

	default:
		return fault.ErrUnsupportedInstruction
	}
}

func initializeMint(policy rent.Policy, mint *account.Info, decimals uint8, authority account.Key, freeze *account.Key) error {
	err := mustWrite(mint)
	if nil != err {
		return err
	}
	m, err := unpackMint(mint)
	if nil != err {
		return err
	}
	if m.IsInitialized {
		return fault.ErrAlreadyInitialisedToken
	}
	if !policy.IsExempt(mint.Lamports, uint64(len(mint.Data))) {
		return fault.ErrInsufficientFundsForRent
	}

	m = &token.Mint{
		MintAuthority:   &authority,
		Decimals:        decimals,
		IsInitialized:   true,
		FreezeAuthority: freeze,
	}
	return m.Pack(mint.Data)
}

func initializeTokenAccount(policy rent.Policy, tokenAccount *account.Info, mint *account.Info, owner *account.Info) error {
	err := mustWrite(tokenAccount)
	if nil != err {
		return err
	}
	a, err := unpackTokenAccount(tokenAccount)
	if nil != err {
		return err
	}
	if token.Uninitialized != a.State {
		return fault.ErrAlreadyInitialisedToken
	}
	if !policy.IsExempt(tokenAccount.Lamports, uint64(len(tokenAccount.Data))) {
		return fault.ErrInsufficientFundsForRent
	}
	_, err = initializedMint(mint)
	if nil != err {
		return err
	}

	a = &token.Account{
		Mint:  mint.Key,
		Owner: owner.Key,
		State: token.Initialized,
	}
	return a.Pack(tokenAccount.Data)
}

// owner signature is checked by the caller
func transferTokens(source *account.Info, destination *account.Info, owner *account.Info, amount uint64) error {
	err := mustWrite(source, destination)
	if nil != err {
		return err
	}
	from, err := initializedTokenAccount(source)
	if nil != err {
		return err
	}
	to, err := initializedTokenAccount(destination)
	if nil != err {
		return err
	}
	if !from.Mint.Equals(to.Mint) {
		return fault.ErrMintMismatch
	}
	if !from.Owner.Equals(owner.Key) {
		return fault.ErrOwnerMismatch
	}
	if from.Amount < amount {
		return fault.ErrInsufficientTokens
	}
	if source == destination {
		return nil
	}
	if to.Amount+amount < to.Amount {
		return fault.ErrArithmeticOverflow
	}

	from.Amount -= amount
	to.Amount += amount
	err = from.Pack(source.Data)
	if nil != err {
		return err
	}
	return to.Pack(destination.Data)
}

// authority signature is checked by the caller
func mintTokens(mint *account.Info, destination *account.Info, authority *account.Info, amount uint64) error {
	err := mustWrite(mint, destination)
	if nil != err {
		return err
	}
	m, err := initializedMint(mint)
	if nil != err {
		return err
	}
	if nil == m.MintAuthority || !m.MintAuthority.Equals(authority.Key) {
		return fault.ErrOwnerMismatch
	}
	to, err := initializedTokenAccount(destination)
	if nil != err {
		return err
	}
	if !to.Mint.Equals(mint.Key) {
		return fault.ErrMintMismatch
	}
	if m.Supply+amount < m.Supply || to.Amount+amount < to.Amount {
		return fault.ErrArithmeticOverflow
	}

	m.Supply += amount
	to.Amount += amount
	err = m.Pack(mint.Data)
	if nil != err {
		return err
	}
	return to.Pack(destination.Data)
}

// authority signature is checked by the caller
func burnTokens(source *account.Info, mint *account.Info, authority *account.Info, amount uint64) error {
	err := mustWrite(source, mint)
	if nil != err {
		return err
	}
	from, err := initializedTokenAccount(source)
	if nil != err {
		return err
	}
	m, err := initializedMint(mint)
	if nil != err {
		return err
	}
	if !from.Mint.Equals(mint.Key) {
		return fault.ErrMintMismatch
	}
	if !from.Owner.Equals(authority.Key) {
		return fault.ErrOwnerMismatch
	}
	if from.Amount < amount {
		return fault.ErrInsufficientTokens
	}
	if m.Supply < amount {
		return fault.ErrArithmeticOverflow
	}

	from.Amount -= amount
	m.Supply -= amount
	err = from.Pack(source.Data)
	if nil != err {
		return err
	}
	return m.Pack(mint.Data)
}

func unpackMint(info *account.Info) (*token.Mint, error) {
	if !info.Owner.Equals(account.TokenProgramID) {
		return nil, fault.ErrIncorrectProgramID
	}
	return token.UnpackMint(info.Data)
}

func initializedMint(info *account.Info) (*token.Mint, error) {
	m, err := unpackMint(info)
	if nil != err {
		return nil, err
	}
	if !m.IsInitialized {
		return nil, fault.ErrUninitializedMint
	}
	return m, nil
}

func unpackTokenAccount(info *account.Info) (*token.Account, error) {
	if !info.Owner.Equals(account.TokenProgramID) {
		return nil, fault.ErrIncorrectProgramID
	}
	return token.UnpackAccount(info.Data)
}

func initializedTokenAccount(info *account.Info) (*token.Account, error) {
	a, err := unpackTokenAccount(info)
	if nil != err {
		return nil, err
	}
	if token.Uninitialized == a.State {
		return nil, fault.ErrUninitializedTokenAccount
	}
	return a, nil
}
