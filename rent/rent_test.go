// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/rent"
)

func TestMinimumBalance(t *testing.T) {
	p := rent.Default()

	tests := []struct {
		size     uint64
		expected uint64
	}{
		{0, 890880},
		{16, 1002240},
		{82, 1461600},  // token mint
		{165, 2039280}, // token account
	}

	for i, item := range tests {
		actual := p.MinimumBalance(item.size)
		assert.Equal(t, item.expected, actual, "%d: wrong minimum balance for size: %d", i, item.size)
	}
}

func TestIsExempt(t *testing.T) {
	p := rent.Default()
	assert.True(t, p.IsExempt(1002240, 16), "exact minimum is exempt")
	assert.False(t, p.IsExempt(1002239, 16), "one below minimum is not exempt")
}

func TestCustomPolicy(t *testing.T) {
	p := rent.Policy{
		LamportsPerByteYear: 10,
		ExemptionThreshold:  1.5,
		BurnPercent:         0,
	}
	assert.Nil(t, p.Validate(), "valid policy rejected")
	assert.Equal(t, uint64((128+16)*10*3/2), p.MinimumBalance(16), "wrong custom balance")
}

func TestValidate(t *testing.T) {
	assert.Nil(t, rent.Default().Validate(), "default must be valid")

	p := rent.Default()
	p.ExemptionThreshold = 0
	assert.Equal(t, fault.ErrInvalidRentPolicy, p.Validate(), "zero threshold accepted")

	p = rent.Default()
	p.BurnPercent = 101
	assert.Equal(t, fault.ErrInvalidRentPolicy, p.Validate(), "burn percent over 100 accepted")
}
