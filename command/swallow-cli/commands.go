// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/address"
	"github.com/bitmark-inc/swallow/chain"
	"github.com/bitmark-inc/swallow/instruction"
	"github.com/bitmark-inc/swallow/ledger"
	"github.com/bitmark-inc/swallow/state"
	"github.com/bitmark-inc/swallow/token"
)

type keyResult struct {
	PublicKey string `json:"public_key"`
	File      string `json:"file"`
}

type createResult struct {
	Account string `json:"account"`
	File    string `json:"file"`
	Receipt string `json:"receipt"`
}

type stateResult struct {
	Address string `json:"address"`
	Bump    uint8  `json:"bump"`
	Prev    uint64 `json:"prev"`
	Next    uint64 `json:"next"`
}

type balanceResult struct {
	Account  string  `json:"account"`
	Owner    string  `json:"owner"`
	Lamports uint64  `json:"lamports"`
	Mint     string  `json:"mint,omitempty"`
	Tokens   *uint64 `json:"tokens,omitempty"`
}

func runKeygen(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("output")
	key, err := newKeypairFile(fileName)
	if nil != err {
		return err
	}

	return printJson(m.w, keyResult{
		PublicKey: key.PublicKey().String(),
		File:      fileName,
	})
}

func runAirdrop(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if !chain.IsTesting(m.config.Cluster) {
		return ErrAirdropNotPermitted
	}

	key, err := keyOrPayer(c, m, "account")
	if nil != err {
		return err
	}

	info, err := m.bank.Airdrop(key, c.Uint64("lamports"))
	if nil != err {
		return err
	}
	return printJson(m.w, balance(info))
}

func runCreateMint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	payer, err := m.payer()
	if nil != err {
		return err
	}

	fileName := c.String("output")
	mint, err := newKeypairFile(fileName)
	if nil != err {
		return err
	}

	payerKey := payer.PublicKey()
	mintKey := mint.PublicKey()
	lamports := m.bank.Rent().MinimumBalance(token.MintSize)

	receipt, err := m.execute([]account.Key{payerKey, mintKey},
		ledger.NewCreateAccount(payerKey, mintKey, lamports, token.MintSize, account.TokenProgramID),
		token.NewInitializeMint(mintKey, uint8(c.Uint("decimals")), payerKey, nil),
	)
	if nil != err {
		return err
	}

	return printJson(m.w, createResult{
		Account: mintKey.String(),
		File:    fileName,
		Receipt: receipt.ID,
	})
}

func runCreateTokenAccount(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	payer, err := m.payer()
	if nil != err {
		return err
	}
	mintKey, err := keyFlag(c, "mint", m.config.Mint)
	if nil != err {
		return err
	}

	var owner account.Key
	if "" == c.String("owner") {
		programID, err := m.programID()
		if nil != err {
			return err
		}
		authority, err := address.Authority(programID)
		if nil != err {
			return err
		}
		owner = authority.Key
	} else {
		owner, err = account.ParseKey(c.String("owner"))
		if nil != err {
			return err
		}
	}

	fileName := c.String("output")
	tokenAccount, err := newKeypairFile(fileName)
	if nil != err {
		return err
	}

	payerKey := payer.PublicKey()
	tokenKey := tokenAccount.PublicKey()
	lamports := m.bank.Rent().MinimumBalance(token.AccountSize)

	receipt, err := m.execute([]account.Key{payerKey, tokenKey},
		ledger.NewCreateAccount(payerKey, tokenKey, lamports, token.AccountSize, account.TokenProgramID),
		token.NewInitializeAccount(tokenKey, mintKey, owner),
	)
	if nil != err {
		return err
	}

	return printJson(m.w, createResult{
		Account: tokenKey.String(),
		File:    fileName,
		Receipt: receipt.ID,
	})
}

func runMintTo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrMissingAmount
	}
	payer, err := m.payer()
	if nil != err {
		return err
	}
	mintKey, err := keyFlag(c, "mint", m.config.Mint)
	if nil != err {
		return err
	}
	to, err := keyFlag(c, "to", m.config.Vault)
	if nil != err {
		return err
	}

	payerKey := payer.PublicKey()
	receipt, err := m.execute([]account.Key{payerKey}, token.NewMintTo(mintKey, to, payerKey, amount))
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runTransfer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrMissingAmount
	}
	payer, err := m.payer()
	if nil != err {
		return err
	}
	from, err := keyFlag(c, "from", "")
	if nil != err {
		return err
	}
	to, err := keyFlag(c, "to", m.config.Vault)
	if nil != err {
		return err
	}

	payerKey := payer.PublicKey()
	receipt, err := m.execute([]account.Key{payerKey}, token.NewTransfer(from, to, payerKey, amount))
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runInitialize(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	payer, err := m.payer()
	if nil != err {
		return err
	}
	programID, err := m.programID()
	if nil != err {
		return err
	}

	payerKey := payer.PublicKey()
	ix, err := instruction.NewInitialize(programID, payerKey, c.Uint64("threshold"))
	if nil != err {
		return err
	}

	receipt, err := m.execute([]account.Key{payerKey}, ix)
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runSwallow(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	programID, err := m.programID()
	if nil != err {
		return err
	}
	mintKey, err := keyFlag(c, "mint", m.config.Mint)
	if nil != err {
		return err
	}
	vault, err := keyFlag(c, "vault", m.config.Vault)
	if nil != err {
		return err
	}

	ix, err := instruction.NewSwallow(programID, vault, mintKey)
	if nil != err {
		return err
	}

	receipt, err := m.execute(nil, ix)
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runState(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	programID, err := m.programID()
	if nil != err {
		return err
	}
	derived, err := address.State(programID)
	if nil != err {
		return err
	}
	info, err := m.bank.Account(derived.Key)
	if nil != err {
		return err
	}
	record, err := state.Unpack(info.Data)
	if nil != err {
		return err
	}

	return printJson(m.w, stateResult{
		Address: derived.Key.String(),
		Bump:    derived.Bump,
		Prev:    record.Prev,
		Next:    record.Next,
	})
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := keyOrPayer(c, m, "account")
	if nil != err {
		return err
	}
	info, err := m.bank.Account(key)
	if nil != err {
		return err
	}
	return printJson(m.w, balance(info))
}

func runReceipt(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id := c.String("id")
	if "" == id {
		return ErrMissingReceipt
	}
	receipt, err := m.bank.Receipt(id)
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func (m *metadata) execute(signers []account.Key, ixs ...instruction.Instruction) (*ledger.Receipt, error) {
	if m.verbose {
		for i, ix := range ixs {
			fmt.Fprintf(m.e, "instruction[%d]: program: %s  accounts: %d  data: %x\n", i, ix.ProgramID, len(ix.Accounts), ix.Data)
		}
	}
	return m.bank.Execute(&ledger.Transaction{
		Instructions: ixs,
		Signers:      signers,
	})
}

// key named by a flag or the payer
func keyOrPayer(c *cli.Context, m *metadata, name string) (account.Key, error) {
	if "" != c.String(name) {
		return account.ParseKey(c.String(name))
	}
	payer, err := m.payer()
	if nil != err {
		return account.Key{}, err
	}
	return payer.PublicKey(), nil
}

func balance(info *account.Info) balanceResult {
	result := balanceResult{
		Account:  info.Key.String(),
		Owner:    info.Owner.String(),
		Lamports: info.Lamports,
	}
	if info.Owner.Equals(account.TokenProgramID) && token.AccountSize == len(info.Data) {
		if a, err := token.UnpackAccount(info.Data); nil == err && token.Uninitialized != a.State {
			amount := a.Amount
			result.Mint = a.Mint.String()
			result.Tokens = &amount
		}
	}
	return result
}
