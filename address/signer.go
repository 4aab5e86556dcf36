// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/swallow/account"
)

// Signer - the seeds (bump included) proving a program may sign for
// a derived address
//
// the zero value carries no authority
type Signer struct {
	seeds [][]byte
}

// NoSigner - for calls where every signer is a real key
var NoSigner = Signer{}

// IsZero - true if the signer carries no seeds
func (s Signer) IsZero() bool {
	return 0 == len(s.seeds)
}

// Seeds - copy of the seeds including the trailing bump
func (s Signer) Seeds() [][]byte {
	seeds := make([][]byte, len(s.seeds))
	for i, seed := range s.seeds {
		seeds[i] = append([]byte{}, seed...)
	}
	return seeds
}

// Key - recompute the address these seeds sign for under programID
func (s Signer) Key(programID account.Key) (account.Key, error) {
	return solana.CreateProgramAddress(s.seeds, programID)
}

// Authorizes - true if the seeds sign for key when presented by programID
func (s Signer) Authorizes(programID account.Key, key account.Key) bool {
	if s.IsZero() {
		return false
	}
	derived, err := s.Key(programID)
	if nil != err {
		return false
	}
	return derived.Equals(key)
}
