// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/storage"
)

// key of the last committed sequence number in the Sequence pool
var sequenceKey = []byte("receipt")

// stored: sequence(8) ++ burned(8) ++ instruction count(4)
const receiptSize = 8 + 8 + 4

// Receipt - record of a committed transaction
type Receipt struct {
	ID           string `json:"id"`
	Sequence     uint64 `json:"sequence"`
	Instructions int    `json:"instructions"`
	Burned       uint64 `json:"burned"`

	digest [32]byte
}

// the id covers the sequence number and every instruction, so the
// same transaction committed twice gets two ids
func newReceipt(sequence uint64, tx *Transaction, burned uint64) *Receipt {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, sequence)
	for _, ix := range tx.Instructions {
		buffer = append(buffer, ix.ProgramID[:]...)
		buffer = append(buffer, ix.Data...)
		for _, meta := range ix.Accounts {
			buffer = append(buffer, meta.Key[:]...)
		}
	}

	digest := sha3.Sum256(buffer)
	return &Receipt{
		ID:           base58.Encode(digest[:]),
		Sequence:     sequence,
		Instructions: len(tx.Instructions),
		Burned:       burned,
		digest:       digest,
	}
}

func (r *Receipt) pack() []byte {
	buffer := make([]byte, receiptSize)
	binary.BigEndian.PutUint64(buffer[0:8], r.Sequence)
	binary.BigEndian.PutUint64(buffer[8:16], r.Burned)
	binary.BigEndian.PutUint32(buffer[16:20], uint32(r.Instructions))
	return buffer
}

// UnpackReceipt - decode a stored receipt for the digest key
func UnpackReceipt(key []byte, record []byte) (*Receipt, error) {
	if len(record) < receiptSize || 32 != len(key) {
		return nil, fault.ErrRecordTooShort
	}
	r := &Receipt{
		ID:           base58.Encode(key),
		Sequence:     binary.BigEndian.Uint64(record[0:8]),
		Burned:       binary.BigEndian.Uint64(record[8:16]),
		Instructions: int(binary.BigEndian.Uint32(record[16:20])),
	}
	copy(r.digest[:], key)
	return r, nil
}

// Receipt - fetch a committed receipt by id
func (bank *Bank) Receipt(id string) (*Receipt, error) {
	key, err := base58.Decode(id)
	if nil != err || 32 != len(key) {
		return nil, fault.ErrReceiptNotFound
	}
	record := storage.Pool.Receipts.Get(key)
	if nil == record {
		return nil, fault.ErrReceiptNotFound
	}
	return UnpackReceipt(key, record)
}

// Sequence - number of committed transactions
func (bank *Bank) Sequence() uint64 {
	n, _ := storage.Pool.Sequence.GetN(sequenceKey)
	return n
}
