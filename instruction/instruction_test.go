// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/address"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/instruction"
)

var programID = solana.MustPublicKeyFromBase58("topG3JDRBZeSyUxvicdez4FSCooX8oJVfvC32VLshwf")

func TestDecode(t *testing.T) {
	tests := []struct {
		data    []byte
		op      instruction.Opcode
		payload []byte
		err     error
	}{
		{[]byte{0, 1, 2}, instruction.Initialize, []byte{1, 2}, nil},
		{[]byte{1}, instruction.Swallow, []byte{}, nil},
		{[]byte{1, 9, 9}, instruction.Swallow, []byte{9, 9}, nil},
		{[]byte{2}, 0, nil, fault.ErrInvalidInstructionData},
		{[]byte{255, 0}, 0, nil, fault.ErrInvalidInstructionData},
		{[]byte{}, 0, nil, fault.ErrInvalidInstructionData},
		{nil, 0, nil, fault.ErrInvalidInstructionData},
	}

	for i, item := range tests {
		op, payload, err := instruction.Decode(item.data)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		if nil == item.err {
			assert.Equal(t, item.op, op, "%d: wrong opcode", i)
			assert.Equal(t, item.payload, payload, "%d: wrong payload", i)
		}
	}
}

func TestThreshold(t *testing.T) {
	data := instruction.EncodeInitialize(1000000)
	assert.Equal(t, []byte{0, 0x40, 0x42, 0x0f, 0, 0, 0, 0, 0}, data, "wrong encoding")

	op, payload, err := instruction.Decode(data)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, instruction.Initialize, op, "wrong opcode")

	threshold, err := instruction.DecodeThreshold(payload)
	assert.Nil(t, err, "threshold error")
	assert.Equal(t, uint64(1000000), threshold, "wrong threshold")
}

func TestThresholdLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 9, 16} {
		_, err := instruction.DecodeThreshold(make([]byte, n))
		assert.Equal(t, fault.ErrInvalidInstructionData, err, "length %d accepted", n)
	}
}

func TestAccountArity(t *testing.T) {
	infos := func(n int) []*account.Info {
		l := make([]*account.Info, n)
		for i := range l {
			l[i] = account.New(solana.PublicKey{byte(i + 1)})
		}
		return l
	}

	for _, n := range []int{0, 2, 4} {
		_, err := instruction.NewInitializeAccounts(infos(n))
		assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "initialize accepted %d accounts", n)
	}
	for _, n := range []int{0, 4, 6} {
		_, err := instruction.NewSwallowAccounts(infos(n))
		assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "swallow accepted %d accounts", n)
	}

	list := infos(5)
	s, err := instruction.NewSwallowAccounts(list)
	assert.Nil(t, err, "swallow accounts")
	assert.Equal(t, list[0], s.State, "wrong state")
	assert.Equal(t, list[1], s.Authority, "wrong authority")
	assert.Equal(t, list[2], s.TokenAccount, "wrong token account")
	assert.Equal(t, list[3], s.Mint, "wrong mint")
	assert.Equal(t, list[4], s.TokenProgram, "wrong token program")
}

func TestBuilders(t *testing.T) {
	payer := solana.PublicKey{7}
	stateAddress, _ := address.State(programID)
	authorityAddress, _ := address.Authority(programID)

	ix, err := instruction.NewInitialize(programID, payer, 100)
	assert.Nil(t, err, "initialize builder")
	assert.Equal(t, programID, ix.ProgramID, "wrong program")
	assert.Equal(t, instruction.InitializeAccountCount, len(ix.Accounts), "wrong account count")
	assert.Equal(t, stateAddress.Key, ix.Accounts[0].Key, "wrong state key")
	assert.True(t, ix.Accounts[1].IsSigner, "payer must sign")

	mint := solana.PublicKey{8}
	tokenAccount := solana.PublicKey{9}
	ix, err = instruction.NewSwallow(programID, tokenAccount, mint)
	assert.Nil(t, err, "swallow builder")
	assert.Equal(t, instruction.SwallowAccountCount, len(ix.Accounts), "wrong account count")
	assert.Equal(t, authorityAddress.Key, ix.Accounts[1].Key, "wrong authority key")
	assert.Equal(t, account.TokenProgramID, ix.Accounts[4].Key, "wrong token program")
	assert.Equal(t, []byte{1}, ix.Data, "wrong data")
}
