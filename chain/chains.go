// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the clusters a ledger can belong to
package chain

import (
	"strings"
)

// names of all clusters
const (
	Mainnet = "mainnet"
	Devnet  = "devnet"
	Testnet = "testnet"
	Local   = "local"
)

// Valid - validate a cluster name
func Valid(name string) bool {
	switch name {
	case Mainnet, Devnet, Testnet, Local:
		return true
	default:
		return false
	}
}

// Normalise - canonical form of a user supplied name
func Normalise(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsTesting - true for clusters where airdrops are permitted
func IsTesting(name string) bool {
	return Mainnet != name
}
