// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/instruction"
	"github.com/bitmark-inc/swallow/storage"
)

// accounts touched by one transaction
//
// original holds each account as first read and current its state
// after the instructions merged so far
type workingSet struct {
	trx        storage.Transaction
	signers    map[account.Key]bool
	executable func(account.Key) bool
	original   map[account.Key]*account.Info
	current    map[account.Key]*account.Info
}

func newWorkingSet(trx storage.Transaction, signers []account.Key, executable func(account.Key) bool) *workingSet {
	w := &workingSet{
		trx:        trx,
		signers:    make(map[account.Key]bool),
		executable: executable,
		original:   make(map[account.Key]*account.Info),
		current:    make(map[account.Key]*account.Info),
	}
	for _, key := range signers {
		w.signers[key] = true
	}
	return w
}

// current state of key, absent accounts are unused system accounts
func (w *workingSet) get(key account.Key) (*account.Info, error) {
	if info, ok := w.current[key]; ok {
		return info, nil
	}

	info := account.New(key)
	record := w.trx.Get(storage.Pool.Accounts, key[:])
	if nil != record {
		var err error
		info, err = account.Unpack(key, record)
		if nil != err {
			return nil, err
		}
	}
	if w.executable(key) {
		info.Executable = true
	}

	w.original[key] = info.Clone()
	w.current[key] = info
	return info, nil
}

// copies of the accounts an instruction refers to
//
// a key listed more than once yields the same copy each time
func (w *workingSet) load(metas []instruction.Meta) ([]*account.Info, error) {
	view := make(map[account.Key]*account.Info, len(metas))
	accounts := make([]*account.Info, len(metas))

	for i, meta := range metas {
		info, ok := view[meta.Key]
		if !ok {
			stored, err := w.get(meta.Key)
			if nil != err {
				return nil, err
			}
			info = stored.Clone()
			info.IsSigner = false
			info.IsWritable = false
			view[meta.Key] = info
		}

		if meta.IsSigner {
			if !w.signers[meta.Key] {
				return nil, fault.ErrMissingRequiredSignature
			}
			info.IsSigner = true
		}
		if meta.IsWritable {
			if info.Executable {
				return nil, fault.ErrExecutableNotWritable
			}
			info.IsWritable = true
		}
		accounts[i] = info
	}
	return accounts, nil
}

// accept the results of an instruction
//
// nothing is merged if any read-only account was changed
func (w *workingSet) merge(accounts []*account.Info) error {
	for _, info := range accounts {
		if !info.IsWritable && !info.SameState(w.current[info.Key]) {
			return fault.ErrReadonlyModified
		}
	}
	for _, info := range accounts {
		c := info.Clone()
		c.IsSigner = false
		c.IsWritable = false
		w.current[info.Key] = c
	}
	return nil
}

// add every changed account to the batch, returns the count
func (w *workingSet) store() int {
	n := 0
	for key, info := range w.current {
		if info.SameState(w.original[key]) {
			continue
		}
		w.trx.Put(storage.Pool.Accounts, key[:], info.Pack())
		n += 1
	}
	return n
}
