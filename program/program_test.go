// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/address"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/fixtures"
	"github.com/bitmark-inc/swallow/instruction"
	"github.com/bitmark-inc/swallow/program"
	"github.com/bitmark-inc/swallow/program/mocks"
	"github.com/bitmark-inc/swallow/rent"
	"github.com/bitmark-inc/swallow/state"
	"github.com/bitmark-inc/swallow/token"
)

var (
	programID = fixtures.ProgramID
	payerKey  = solana.PublicKey{0x50}
)

func setupProgram(t *testing.T) (*program.Program, *mocks.MockHost, *gomock.Controller) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	host := mocks.NewMockHost(ctl)
	return program.New(logger.New(fixtures.LogCategory)), host, ctl
}

func teardownProgram(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

// derivation goes to the real implementation
func expectDerivation(host *mocks.MockHost) {
	host.EXPECT().FindProgramAddress(programID, gomock.Any()).DoAndReturn(
		func(id account.Key, label []byte) (address.Derived, error) {
			return address.Find(id, label)
		}).AnyTimes()
}

func stateKey(t *testing.T) account.Key {
	d, err := address.State(programID)
	assert.Nil(t, err, "state derivation")
	return d.Key
}

func authorityKey(t *testing.T) account.Key {
	d, err := address.Authority(programID)
	assert.Nil(t, err, "authority derivation")
	return d.Key
}

func initializeAccounts(t *testing.T) []*account.Info {
	payer := account.New(payerKey)
	payer.Lamports = 1000000000
	payer.IsSigner = true
	payer.IsWritable = true

	s := account.New(stateKey(t))
	s.IsWritable = true

	return []*account.Info{s, payer, account.New(account.SystemProgramID)}
}

func swallowAccounts(t *testing.T, record state.Record, balance uint64) []*account.Info {
	s := &account.Info{
		Key:        stateKey(t),
		Owner:      programID,
		Lamports:   1002240,
		Data:       make([]byte, state.Size),
		IsWritable: true,
	}
	assert.Nil(t, record.Pack(s.Data), "state pack")

	vault := &account.Info{
		Key:        fixtures.VaultID,
		Owner:      account.TokenProgramID,
		Data:       make([]byte, token.AccountSize),
		IsWritable: true,
	}
	setBalance(t, vault, balance)

	return []*account.Info{
		s,
		account.New(authorityKey(t)),
		vault,
		{Key: fixtures.MintID, Owner: account.TokenProgramID, Data: make([]byte, token.MintSize), IsWritable: true},
		account.New(account.TokenProgramID),
	}
}

func setBalance(t *testing.T, vault *account.Info, balance uint64) {
	a := &token.Account{
		Mint:   fixtures.MintID,
		Owner:  authorityKey(t),
		Amount: balance,
		State:  token.Initialized,
	}
	assert.Nil(t, a.Pack(vault.Data), "token pack")
}

func readState(t *testing.T, info *account.Info) state.Record {
	r, err := state.Unpack(info.Data)
	assert.Nil(t, err, "state unpack")
	return r
}

// burn that behaves like the token program
func burnFromVault(t *testing.T) func(*account.Info, *account.Info, *account.Info, uint64, address.Signer) error {
	return func(source *account.Info, mint *account.Info, authority *account.Info, amount uint64, signer address.Signer) error {
		assert.True(t, signer.Authorizes(programID, authority.Key), "burn signer does not authorize the authority")
		balance, err := token.Balance(source.Data)
		assert.Nil(t, err, "balance")
		setBalance(t, source, balance-amount)
		return nil
	}
}

func TestUnknownOpcode(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	accounts := swallowAccounts(t, state.New(100), 150)
	before := make([]*account.Info, len(accounts))
	for i, a := range accounts {
		before[i] = a.Clone()
	}

	for _, op := range []byte{2, 3, 0x7f, 0xff} {
		err := p.Process(host, programID, accounts, []byte{op})
		assert.Equal(t, fault.ErrInvalidInstructionData, err, "opcode %d accepted", op)
	}
	err := p.Process(host, programID, accounts, []byte{})
	assert.Equal(t, fault.ErrInvalidInstructionData, err, "empty data accepted")

	for i, a := range accounts {
		assert.True(t, before[i].SameState(a), "account %d touched", i)
	}
}

func TestInitialize(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)
	host.EXPECT().Rent().Return(rent.Default()).Times(1)

	accounts := initializeAccounts(t)
	host.EXPECT().CreateAccount(accounts[1], accounts[0], uint64(1002240), uint64(state.Size), programID, gomock.Any()).DoAndReturn(
		func(payer *account.Info, target *account.Info, lamports uint64, space uint64, owner account.Key, signer address.Signer) error {
			assert.True(t, signer.Authorizes(programID, target.Key), "create signer does not authorize the state address")
			payer.Lamports -= lamports
			target.Lamports = lamports
			target.Owner = owner
			target.Data = make([]byte, space)
			return nil
		}).Times(1)

	err := p.Process(host, programID, accounts, instruction.EncodeInitialize(100))
	assert.Nil(t, err, "initialize error")
	assert.Equal(t, state.Record{Prev: 100, Next: 100}, readState(t, accounts[0]), "wrong initial state")
	assert.Equal(t, programID, accounts[0].Owner, "state not owned by program")
}

func TestInitializeThresholds(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)
	host.EXPECT().Rent().Return(rent.Default()).AnyTimes()
	host.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(payer *account.Info, target *account.Info, lamports uint64, space uint64, owner account.Key, signer address.Signer) error {
			target.Data = make([]byte, space)
			return nil
		}).AnyTimes()

	for _, threshold := range []uint64{0, 1, 1000000, 1 << 63, ^uint64(0)} {
		accounts := initializeAccounts(t)
		err := p.Process(host, programID, accounts, instruction.EncodeInitialize(threshold))
		assert.Nil(t, err, "initialize error for: %d", threshold)
		assert.Equal(t, state.New(threshold), readState(t, accounts[0]), "wrong state for: %d", threshold)
	}
}

func TestInitializeWrongAddress(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)

	accounts := initializeAccounts(t)
	accounts[0] = account.New(solana.PublicKey{0x66})

	err := p.Process(host, programID, accounts, instruction.EncodeInitialize(100))
	assert.Equal(t, fault.ErrInvalidAccountData, err, "forged address accepted")
	assert.Equal(t, 0, len(accounts[0].Data), "record created at forged address")
}

func TestInitializeAccountCount(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	accounts := initializeAccounts(t)
	err := p.Process(host, programID, accounts[:2], instruction.EncodeInitialize(100))
	assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "two accounts accepted")
}

func TestInitializeShortPayload(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)

	accounts := initializeAccounts(t)
	err := p.Process(host, programID, accounts, []byte{0, 1, 2, 3})
	assert.Equal(t, fault.ErrInvalidInstructionData, err, "short payload accepted")

	err = p.Process(host, programID, accounts, []byte{0})
	assert.Equal(t, fault.ErrInvalidInstructionData, err, "empty payload accepted")
}

func TestInitializeTwice(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)
	host.EXPECT().Rent().Return(rent.Default()).Times(1)
	host.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fault.ErrAccountAlreadyInUse).Times(1)

	accounts := swallowAccounts(t, state.Record{Prev: 100, Next: 200}, 0)
	initialise := []*account.Info{accounts[0], account.New(payerKey), account.New(account.SystemProgramID)}

	err := p.Process(host, programID, initialise, instruction.EncodeInitialize(5))
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "host error not surfaced")
	assert.Equal(t, state.Record{Prev: 100, Next: 200}, readState(t, accounts[0]), "state was reset")
}

func TestSwallowScenario(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)
	host.EXPECT().Burn(gomock.Any(), gomock.Any(), gomock.Any(), uint64(100), gomock.Any()).DoAndReturn(burnFromVault(t)).Times(1)
	host.EXPECT().Burn(gomock.Any(), gomock.Any(), gomock.Any(), uint64(200), gomock.Any()).DoAndReturn(burnFromVault(t)).Times(1)

	accounts := swallowAccounts(t, state.New(100), 150)
	vault := accounts[2]

	err := p.Process(host, programID, accounts, instruction.EncodeSwallow())
	assert.Nil(t, err, "first swallow")
	assert.Equal(t, state.Record{Prev: 100, Next: 200}, readState(t, accounts[0]), "wrong state after first swallow")

	setBalance(t, vault, 150)
	err = p.Process(host, programID, accounts, instruction.EncodeSwallow())
	assert.Equal(t, fault.ErrInsufficientFunds, err, "150 < 200 accepted")
	assert.Equal(t, state.Record{Prev: 100, Next: 200}, readState(t, accounts[0]), "state changed by failed swallow")

	setBalance(t, vault, 250)
	err = p.Process(host, programID, accounts, instruction.EncodeSwallow())
	assert.Nil(t, err, "third swallow")
	assert.Equal(t, state.Record{Prev: 200, Next: 300}, readState(t, accounts[0]), "wrong state after third swallow")

	balance, _ := token.Balance(vault.Data)
	assert.Equal(t, uint64(50), balance, "wrong remaining balance")
}

func TestSwallowFollowsRecurrence(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)
	host.EXPECT().Burn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(burnFromVault(t)).AnyTimes()

	prev, next := uint64(3), uint64(7)
	accounts := swallowAccounts(t, state.Record{Prev: prev, Next: next}, 1<<62)

	for i := 0; i < 50; i += 1 {
		err := p.Process(host, programID, accounts, instruction.EncodeSwallow())
		assert.Nil(t, err, "%d: swallow error", i)

		prev, next = next, prev+next
		r := readState(t, accounts[0])
		assert.Equal(t, prev, r.Prev, "%d: wrong prev", i)
		assert.Equal(t, next, r.Next, "%d: wrong next", i)
		assert.True(t, r.Next >= r.Prev, "%d: next < prev", i)
	}
}

func TestSwallowWrongAddresses(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)

	accounts := swallowAccounts(t, state.New(100), 1000)
	forged := accounts[0].Clone()
	forged.Key = solana.PublicKey{0x77}
	list := []*account.Info{forged, accounts[1], accounts[2], accounts[3], accounts[4]}
	err := p.Process(host, programID, list, instruction.EncodeSwallow())
	assert.Equal(t, fault.ErrInvalidAccountData, err, "forged state accepted")

	list = []*account.Info{accounts[0], account.New(payerKey), accounts[2], accounts[3], accounts[4]}
	err = p.Process(host, programID, list, instruction.EncodeSwallow())
	assert.Equal(t, fault.ErrInvalidAccountData, err, "forged authority accepted")

	assert.Equal(t, state.New(100), readState(t, accounts[0]), "state changed")
}

func TestSwallowAccountCount(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	accounts := swallowAccounts(t, state.New(100), 1000)
	err := p.Process(host, programID, accounts[:4], instruction.EncodeSwallow())
	assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "four accounts accepted")
}

func TestSwallowUninitialized(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)

	accounts := swallowAccounts(t, state.New(100), 1000)
	accounts[0].Data = []byte{}
	err := p.Process(host, programID, accounts, instruction.EncodeSwallow())
	assert.Equal(t, fault.ErrUninitializedAccount, err, "empty state accepted")
}

func TestSwallowShortTokenAccount(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)

	accounts := swallowAccounts(t, state.New(100), 1000)
	accounts[2].Data = accounts[2].Data[:71]
	err := p.Process(host, programID, accounts, instruction.EncodeSwallow())
	assert.Equal(t, fault.ErrInvalidAccountData, err, "short token account accepted")
}

func TestSwallowOverflow(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)

	record := state.Record{Prev: 1 << 63, Next: 1 << 63}
	accounts := swallowAccounts(t, record, ^uint64(0))

	err := p.Process(host, programID, accounts, instruction.EncodeSwallow())
	assert.Equal(t, fault.ErrArithmeticOverflow, err, "overflow not reported")
	assert.Equal(t, record, readState(t, accounts[0]), "state changed on overflow")

	balance, _ := token.Balance(accounts[2].Data)
	assert.Equal(t, ^uint64(0), balance, "tokens burned on overflow")
}

func TestSwallowBurnFailure(t *testing.T) {
	p, host, ctl := setupProgram(t)
	defer teardownProgram(ctl)

	expectDerivation(host)
	host.EXPECT().Burn(gomock.Any(), gomock.Any(), gomock.Any(), uint64(100), gomock.Any()).Return(fault.ErrMintMismatch).Times(1)

	accounts := swallowAccounts(t, state.New(100), 150)
	err := p.Process(host, programID, accounts, instruction.EncodeSwallow())
	assert.Equal(t, fault.ErrMintMismatch, err, "burn error not surfaced")
	assert.Equal(t, state.New(100), readState(t, accounts[0]), "state advanced after failed burn")
}
