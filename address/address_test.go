// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swallow/address"
)

var (
	programID      = solana.MustPublicKeyFromBase58("topG3JDRBZeSyUxvicdez4FSCooX8oJVfvC32VLshwf")
	otherProgramID = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	expectedState     = solana.MustPublicKeyFromBase58("8ykeHRNDsw8Xzdrsarx5JWVUkkC1jRTmFVUtviPimsR5")
	expectedAuthority = solana.MustPublicKeyFromBase58("CNME8WoNRtbDtBKLbdRheJTKCDXaX4c2WFALhgVWGTSU")
)

func TestStateAddress(t *testing.T) {
	d, err := address.State(programID)
	assert.Nil(t, err, "derive error")
	assert.Equal(t, expectedState, d.Key, "wrong state address")
	assert.Equal(t, uint8(255), d.Bump, "wrong bump")
	assert.True(t, d.Matches(expectedState), "should match")
	assert.False(t, d.Matches(expectedAuthority), "should not match")
}

func TestAuthorityAddress(t *testing.T) {
	d, err := address.Authority(programID)
	assert.Nil(t, err, "derive error")
	assert.Equal(t, expectedAuthority, d.Key, "wrong authority address")
	assert.Equal(t, uint8(255), d.Bump, "wrong bump")
}

func TestDerivationIsReproducible(t *testing.T) {
	d1, err := address.Find(programID, []byte("state"))
	assert.Nil(t, err, "derive error")
	d2, err := address.Find(programID, []byte("state"))
	assert.Nil(t, err, "derive error")
	assert.Equal(t, d1.Key, d2.Key, "derivation is not deterministic")

	d3, err := address.Find(otherProgramID, []byte("state"))
	assert.Nil(t, err, "derive error")
	assert.NotEqual(t, d1.Key, d3.Key, "different programs must derive different addresses")
}

func TestDerivedAddressIsOffCurve(t *testing.T) {
	d, err := address.State(programID)
	assert.Nil(t, err, "derive error")
	assert.False(t, d.Key.IsOnCurve(), "derived address must not be a valid public key")
}

func TestSignerAuthorizes(t *testing.T) {
	d, err := address.Authority(programID)
	assert.Nil(t, err, "derive error")

	signer := d.Signer()
	assert.False(t, signer.IsZero(), "signer has no seeds")
	assert.Equal(t, 2, len(signer.Seeds()), "seeds should be label and bump")
	assert.Equal(t, []byte{d.Bump}, signer.Seeds()[1], "last seed must be the bump")

	assert.True(t, signer.Authorizes(programID, d.Key), "signer must authorize its address")
	assert.False(t, signer.Authorizes(programID, expectedState), "signer must not authorize another address")
	assert.False(t, signer.Authorizes(otherProgramID, d.Key), "signer must not work for another program")
}

func TestZeroSigner(t *testing.T) {
	assert.True(t, address.NoSigner.IsZero(), "NoSigner should be zero")
	assert.False(t, address.NoSigner.Authorizes(programID, expectedState), "zero signer authorizes nothing")
}

func TestSignerSeedsAreCopies(t *testing.T) {
	d, err := address.State(programID)
	assert.Nil(t, err, "derive error")
	signer := d.Signer()

	seeds := signer.Seeds()
	seeds[0][0] = 'X'
	assert.True(t, signer.Authorizes(programID, d.Key), "caller mutation leaked into signer")
}
