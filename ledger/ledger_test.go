// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/address"
	"github.com/bitmark-inc/swallow/fixtures"
	"github.com/bitmark-inc/swallow/instruction"
	"github.com/bitmark-inc/swallow/ledger"
	"github.com/bitmark-inc/swallow/program"
	"github.com/bitmark-inc/swallow/rent"
	"github.com/bitmark-inc/swallow/state"
	"github.com/bitmark-inc/swallow/storage"
	"github.com/bitmark-inc/swallow/token"
)

const airdropAmount = 10000000000

var (
	programID = fixtures.ProgramID
	mintKey   = fixtures.MintID
	vaultKey  = fixtures.VaultID
	payerKey  = solana.PublicKey{0x50}
	otherKey  = solana.PublicKey{0x51}
)

// configure for testing
func setupBank(t *testing.T) (*ledger.Bank, string) {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "swallow-ledger")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "ledger.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	bank, err := ledger.New(log, rent.Default())
	if nil != err {
		t.Fatalf("bank create error: %s", err)
	}
	err = bank.Register(programID, program.New(log))
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
	return bank, dir
}

// post test cleanup
func teardownBank(dir string) {
	storage.Finalise()
	os.RemoveAll(dir)
	fixtures.TeardownTestLogger()
}

func execute(bank *ledger.Bank, signers []account.Key, ixs ...instruction.Instruction) (*ledger.Receipt, error) {
	return bank.Execute(&ledger.Transaction{
		Instructions: ixs,
		Signers:      signers,
	})
}

func mustExecute(t *testing.T, bank *ledger.Bank, signers []account.Key, ixs ...instruction.Instruction) *ledger.Receipt {
	receipt, err := execute(bank, signers, ixs...)
	if nil != err {
		t.Fatalf("execute error: %s", err)
	}
	return receipt
}

func airdrop(t *testing.T, bank *ledger.Bank, key account.Key) {
	_, err := bank.Airdrop(key, airdropAmount)
	if nil != err {
		t.Fatalf("airdrop error: %s", err)
	}
}

func createMint(t *testing.T, bank *ledger.Bank) {
	lamports := bank.Rent().MinimumBalance(token.MintSize)
	mustExecute(t, bank, []account.Key{payerKey, mintKey},
		ledger.NewCreateAccount(payerKey, mintKey, lamports, token.MintSize, account.TokenProgramID),
		token.NewInitializeMint(mintKey, 0, payerKey, nil),
	)
}

func createTokenAccount(t *testing.T, bank *ledger.Bank, key account.Key, owner account.Key) {
	lamports := bank.Rent().MinimumBalance(token.AccountSize)
	mustExecute(t, bank, []account.Key{payerKey, key},
		ledger.NewCreateAccount(payerKey, key, lamports, token.AccountSize, account.TokenProgramID),
		token.NewInitializeAccount(key, mintKey, owner),
	)
}

// mint, a vault owned by the program authority holding amount tokens
func setupTokens(t *testing.T, bank *ledger.Bank, amount uint64) {
	airdrop(t, bank, payerKey)
	createMint(t, bank)

	authority, err := address.Authority(programID)
	assert.Nil(t, err, "authority")
	createTokenAccount(t, bank, vaultKey, authority.Key)

	if amount > 0 {
		mustExecute(t, bank, []account.Key{payerKey}, token.NewMintTo(mintKey, vaultKey, payerKey, amount))
	}
}

func initialize(bank *ledger.Bank, threshold uint64) (*ledger.Receipt, error) {
	ix, err := instruction.NewInitialize(programID, payerKey, threshold)
	if nil != err {
		return nil, err
	}
	return execute(bank, []account.Key{payerKey}, ix)
}

func swallow(bank *ledger.Bank) (*ledger.Receipt, error) {
	ix, err := instruction.NewSwallow(programID, vaultKey, mintKey)
	if nil != err {
		return nil, err
	}
	return execute(bank, nil, ix)
}

func tokenBalance(t *testing.T, bank *ledger.Bank, key account.Key) uint64 {
	info, err := bank.Account(key)
	assert.Nil(t, err, "token account")
	balance, err := token.Balance(info.Data)
	assert.Nil(t, err, "balance")
	return balance
}

func mintSupply(t *testing.T, bank *ledger.Bank) uint64 {
	info, err := bank.Account(mintKey)
	assert.Nil(t, err, "mint account")
	m, err := token.UnpackMint(info.Data)
	assert.Nil(t, err, "mint")
	return m.Supply
}

func stateRecord(t *testing.T, bank *ledger.Bank) state.Record {
	s, err := address.State(programID)
	assert.Nil(t, err, "state derivation")
	info, err := bank.Account(s.Key)
	assert.Nil(t, err, "state account")
	r, err := state.Unpack(info.Data)
	assert.Nil(t, err, "state record")
	return r
}

func lamports(t *testing.T, bank *ledger.Bank, key account.Key) uint64 {
	info, err := bank.Account(key)
	assert.Nil(t, err, "account")
	return info.Lamports
}
