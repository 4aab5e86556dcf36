// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/json"
	"io/ioutil"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/swallow/fault"
)

// PrivateKey - ed25519 signing key, 64 bytes: seed ++ public key
type PrivateKey = solana.PrivateKey

// NewKeypair - generate a random signing key
func NewKeypair() (PrivateKey, error) {
	return solana.NewRandomPrivateKey()
}

// ParseKey - decode a base58 address
func ParseKey(s string) (Key, error) {
	return solana.PublicKeyFromBase58(s)
}

// LoadKeypair - read a keypair file in the JSON byte array format
// written by solana-keygen
func LoadKeypair(fileName string) (PrivateKey, error) {
	buffer, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	values := []int{}
	if err := json.Unmarshal(buffer, &values); nil != err {
		return nil, err
	}
	if 64 != len(values) {
		return nil, fault.ErrInvalidKeypairFile
	}

	key := make(PrivateKey, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fault.ErrInvalidKeypairFile
		}
		key[i] = byte(v)
	}
	return key, nil
}

// SaveKeypair - write a keypair file readable by LoadKeypair
func SaveKeypair(fileName string, key PrivateKey) error {
	if 64 != len(key) {
		return fault.ErrInvalidKeypairFile
	}

	values := make([]int, len(key))
	for i, b := range key {
		values[i] = int(b)
	}
	buffer, err := json.Marshal(values)
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, buffer, 0600)
}
