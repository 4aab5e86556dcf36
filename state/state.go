// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package state - the burn threshold record
//
// layout (16 bytes):
//
//   prev(little endian uint64) ++ next(little endian uint64)
//
// next is the amount due at the following burn, prev the amount of
// the burn before it
package state

import (
	"encoding/binary"

	"github.com/bitmark-inc/swallow/fault"
)

// Size - bytes allocated for the record
const Size = 16

const (
	prevOffset = 0
	nextOffset = 8
)

// Record - the two most recent thresholds
type Record struct {
	Prev uint64 `json:"prev"`
	Next uint64 `json:"next"`
}

// New - the record written by initialise
func New(threshold uint64) Record {
	return Record{
		Prev: threshold,
		Next: threshold,
	}
}

// Unpack - decode a record from account data
func Unpack(data []byte) (Record, error) {
	if len(data) < Size {
		return Record{}, fault.ErrUninitializedAccount
	}
	return Record{
		Prev: binary.LittleEndian.Uint64(data[prevOffset:nextOffset]),
		Next: binary.LittleEndian.Uint64(data[nextOffset:Size]),
	}, nil
}

// Pack - encode a record into account data
func (r Record) Pack(data []byte) error {
	if len(data) < Size {
		return fault.ErrAccountDataTooSmall
	}
	binary.LittleEndian.PutUint64(data[prevOffset:nextOffset], r.Prev)
	binary.LittleEndian.PutUint64(data[nextOffset:Size], r.Next)
	return nil
}

// Advance - the record after a burn of r.Next
//
// the sum must not wrap, otherwise next < prev and the burn amount
// would be wrong
func (r Record) Advance() (Record, error) {
	sum := r.Prev + r.Next
	if sum < r.Next {
		return r, fault.ErrArithmeticOverflow
	}
	return Record{
		Prev: r.Next,
		Next: sum,
	}, nil
}
