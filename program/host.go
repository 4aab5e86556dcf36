// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/address"
	"github.com/bitmark-inc/swallow/rent"
)

// Host - capabilities of the execution host used by the program
//
// the signer passed to CreateAccount and Burn is valid only for that
// call; implementations must check it against the calling program
type Host interface {
	FindProgramAddress(programID account.Key, label []byte) (address.Derived, error)
	Rent() rent.Policy
	CreateAccount(payer *account.Info, target *account.Info, lamports uint64, space uint64, owner account.Key, signer address.Signer) error
	Burn(source *account.Info, mint *account.Info, authority *account.Info, amount uint64, signer address.Signer) error
}
