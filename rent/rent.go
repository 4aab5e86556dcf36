// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rent - storage cost exemption policy
//
// an account holding at least MinimumBalance(size) lamports is never
// charged for its storage and is never reclaimed by the host
package rent

import (
	"github.com/bitmark-inc/swallow/fault"
)

// bytes charged on top of the data of every account
const AccountStorageOverhead = 128

// host defaults
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2.0
	DefaultBurnPercent         = 50
)

// Policy - the constants published by the host
type Policy struct {
	LamportsPerByteYear uint64  `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  float64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
	BurnPercent         uint8   `gluamapper:"burn_percent" json:"burn_percent"`
}

// Default - the policy used when a host publishes nothing else
func Default() Policy {
	return Policy{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
		BurnPercent:         DefaultBurnPercent,
	}
}

// Validate - reject unusable constants
func (p Policy) Validate() error {
	if p.ExemptionThreshold <= 0 || p.BurnPercent > 100 {
		return fault.ErrInvalidRentPolicy
	}
	return nil
}

// MinimumBalance - lamports required for size bytes of data to be exempt
func (p Policy) MinimumBalance(size uint64) uint64 {
	bytes := AccountStorageOverhead + size
	return uint64(float64(bytes*p.LamportsPerByteYear) * p.ExemptionThreshold)
}

// IsExempt - true if balance covers size bytes of data
func (p Policy) IsExempt(balance uint64, size uint64) bool {
	return balance >= p.MinimumBalance(size)
}
