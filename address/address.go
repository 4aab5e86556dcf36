// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic program addresses
//
// A derived address is the SHA-256 of the seeds, a one byte bump,
// the program identity and a fixed marker, with the bump chosen so
// the result is not a valid ed25519 point.  No private key exists for
// such an address, so only the owning program can act for it and it
// does so by presenting the seeds and bump as a Signer.
package address

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/swallow/account"
)

// fixed labels for the two addresses used by the burn program
const (
	StateLabel     = "state"
	AuthorityLabel = "program_authority"
)

// Derived - an address together with the bump that produced it
type Derived struct {
	Key   account.Key
	Bump  uint8
	seeds [][]byte
}

// Find - search for the first off-curve address for the seeds
func Find(programID account.Key, seeds ...[]byte) (Derived, error) {
	key, bump, err := solana.FindProgramAddress(seeds, programID)
	if nil != err {
		return Derived{}, err
	}

	s := make([][]byte, len(seeds))
	for i, seed := range seeds {
		s[i] = append([]byte{}, seed...)
	}

	return Derived{
		Key:   key,
		Bump:  bump,
		seeds: s,
	}, nil
}

// State - the singleton state record address of a program
func State(programID account.Key) (Derived, error) {
	return Find(programID, []byte(StateLabel))
}

// Authority - the signing authority address of a program
func Authority(programID account.Key) (Derived, error) {
	return Find(programID, []byte(AuthorityLabel))
}

// Matches - true if key is the derived address
func (d Derived) Matches(key account.Key) bool {
	return d.Key.Equals(key)
}

// Signer - authorization to sign as this address for a single call
func (d Derived) Signer() Signer {
	seeds := make([][]byte, 0, len(d.seeds)+1)
	for _, seed := range d.seeds {
		seeds = append(seeds, append([]byte{}, seed...))
	}
	seeds = append(seeds, []byte{d.Bump})
	return Signer{seeds: seeds}
}
