// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/ledger"
	"github.com/bitmark-inc/swallow/state"
	"github.com/bitmark-inc/swallow/storage"
	"github.com/bitmark-inc/swallow/token"
)

// human readable form of a record
func describe(tag string, e storage.Element) string {
	switch tag {
	case "A":
		if solana.PublicKeyLength != len(e.Key) {
			return fmt.Sprintf("bad key length: %d", len(e.Key))
		}
		info, err := account.Unpack(solana.PublicKeyFromBytes(e.Key), e.Value)
		if nil != err {
			return err.Error()
		}
		return describeAccount(info)

	case "R":
		r, err := ledger.UnpackReceipt(e.Key, e.Value)
		if nil != err {
			return err.Error()
		}
		return fmt.Sprintf("receipt: %s  sequence: %d  instructions: %d  burned: %d", r.ID, r.Sequence, r.Instructions, r.Burned)

	case "S":
		if len(e.Value) < 8 {
			return fmt.Sprintf("%x", e.Value)
		}
		return fmt.Sprintf("%s: %d", e.Key, binary.BigEndian.Uint64(e.Value))
	}
	return fmt.Sprintf("%x", e.Value)
}

func describeAccount(info *account.Info) string {
	s := fmt.Sprintf("%s  owner: %s  lamports: %d  data: %d bytes", info.Key, info.Owner, info.Lamports, len(info.Data))

	switch {
	case info.Owner.Equals(account.TokenProgramID) && token.AccountSize == len(info.Data):
		if a, err := token.UnpackAccount(info.Data); nil == err {
			s += fmt.Sprintf("  token account mint: %s  owner: %s  amount: %d", a.Mint, a.Owner, a.Amount)
		}

	case info.Owner.Equals(account.TokenProgramID) && token.MintSize == len(info.Data):
		if m, err := token.UnpackMint(info.Data); nil == err {
			s += fmt.Sprintf("  mint supply: %d  decimals: %d", m.Supply, m.Decimals)
		}

	case state.Size == len(info.Data):
		if r, err := state.Unpack(info.Data); nil == err {
			s += fmt.Sprintf("  state prev: %d  next: %d", r.Prev, r.Next)
		}
	}
	return s
}
