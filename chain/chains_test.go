// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swallow/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Mainnet, chain.Devnet, chain.Testnet, chain.Local} {
		assert.True(t, chain.Valid(name), "valid: %s", name)
	}
	for _, name := range []string{"", "bitmark", "Local", "mainnet-beta"} {
		assert.False(t, chain.Valid(name), "invalid: %q", name)
	}
}

func TestNormalise(t *testing.T) {
	assert.Equal(t, chain.Local, chain.Normalise("  LOCAL\n"), "normalised")
	assert.True(t, chain.Valid(chain.Normalise("DevNet")), "mixed case")
}

func TestIsTesting(t *testing.T) {
	assert.False(t, chain.IsTesting(chain.Mainnet), "mainnet")
	assert.True(t, chain.IsTesting(chain.Local), "local")
}
