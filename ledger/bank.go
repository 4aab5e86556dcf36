// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/counter"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/instruction"
	"github.com/bitmark-inc/swallow/program"
	"github.com/bitmark-inc/swallow/rent"
	"github.com/bitmark-inc/swallow/storage"
)

// Processor - a registered program
type Processor interface {
	Process(host program.Host, programID account.Key, accounts []*account.Info, data []byte) error
}

// Transaction - instructions to be applied atomically
//
// every key in Signers is treated as having signed
type Transaction struct {
	Instructions []instruction.Instruction
	Signers      []account.Key
}

// Statistics - execution counts since the bank was created
type Statistics struct {
	Committed uint64
	Failed    uint64
	Burned    uint64
}

// Bank - the execution host
type Bank struct {
	sync.Mutex

	log      *logger.L
	rent     rent.Policy
	programs map[account.Key]Processor

	committed counter.Counter
	failed    counter.Counter
	burned    counter.Counter
}

// New - create a bank over the already initialised storage pools
func New(log *logger.L, policy rent.Policy) (*Bank, error) {
	err := policy.Validate()
	if nil != err {
		return nil, err
	}
	return &Bank{
		log:      log,
		rent:     policy,
		programs: make(map[account.Key]Processor),
	}, nil
}

// Register - make a program callable at programID
func (bank *Bank) Register(programID account.Key, p Processor) error {
	bank.Lock()
	defer bank.Unlock()

	if isBuiltin(programID) {
		return fault.ErrAlreadyInitialised
	}
	if _, ok := bank.programs[programID]; ok {
		return fault.ErrAlreadyInitialised
	}
	bank.programs[programID] = p
	bank.log.Infof("registered program: %s", programID)
	return nil
}

// Rent - the exemption policy applied to new accounts
func (bank *Bank) Rent() rent.Policy {
	return bank.rent
}

// Statistics - snapshot of the counters
func (bank *Bank) Statistics() Statistics {
	return Statistics{
		Committed: bank.committed.Uint64(),
		Failed:    bank.failed.Uint64(),
		Burned:    bank.burned.Uint64(),
	}
}

// Execute - apply all instructions of a transaction or none of them
func (bank *Bank) Execute(tx *Transaction) (*Receipt, error) {
	if nil == tx || 0 == len(tx.Instructions) {
		return nil, fault.ErrEmptyTransaction
	}

	bank.Lock()
	defer bank.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	receipt, err := bank.execute(trx, tx)
	if nil != err {
		trx.Abort()
		bank.failed.Increment()
		bank.log.Warnf("transaction aborted: %s", err)
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		bank.failed.Increment()
		bank.log.Errorf("commit failed: %s", err)
		return nil, err
	}

	bank.committed.Increment()
	bank.burned.Add(receipt.Burned)
	bank.log.Infof("committed: %s  sequence: %d  burned: %d", receipt.ID, receipt.Sequence, receipt.Burned)
	return receipt, nil
}

func (bank *Bank) execute(trx storage.Transaction, tx *Transaction) (*Receipt, error) {
	work := newWorkingSet(trx, tx.Signers, bank.isExecutable)

	burned := uint64(0)
	for i, ix := range tx.Instructions {
		accounts, err := work.load(ix.Accounts)
		if nil != err {
			return nil, err
		}

		ctx := &invocation{
			bank:      bank,
			programID: ix.ProgramID,
			burned:    &burned,
		}
		err = bank.invoke(ctx, accounts, ix.Data)
		if nil != err {
			bank.log.Debugf("instruction[%d] program: %s  error: %s", i, ix.ProgramID, err)
			return nil, err
		}

		err = work.merge(accounts)
		if nil != err {
			return nil, err
		}
	}

	sequence, _ := trx.GetN(storage.Pool.Sequence, sequenceKey)
	sequence += 1

	receipt := newReceipt(sequence, tx, burned)

	n := work.store()
	bank.log.Debugf("sequence: %d  accounts written: %d", sequence, n)

	trx.Put(storage.Pool.Receipts, receipt.digest[:], receipt.pack())
	trx.PutN(storage.Pool.Sequence, sequenceKey, sequence)

	return receipt, nil
}

// run one instruction in the context of its program
func (bank *Bank) invoke(ctx *invocation, accounts []*account.Info, data []byte) error {
	switch {
	case ctx.programID.Equals(account.SystemProgramID):
		return processSystem(ctx, accounts, data)
	case ctx.programID.Equals(account.TokenProgramID):
		return processToken(ctx, accounts, data)
	}

	p, ok := bank.programs[ctx.programID]
	if !ok {
		return fault.ErrProgramNotFound
	}
	return p.Process(ctx, ctx.programID, accounts, data)
}

// Airdrop - credit lamports to a key, creating the account if needed
func (bank *Bank) Airdrop(key account.Key, lamports uint64) (*account.Info, error) {
	bank.Lock()
	defer bank.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	work := newWorkingSet(trx, nil, bank.isExecutable)
	info, err := work.get(key)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	if info.Lamports+lamports < info.Lamports {
		trx.Abort()
		return nil, fault.ErrArithmeticOverflow
	}
	info.Lamports += lamports
	work.store()

	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	bank.log.Infof("airdrop: %d lamports to: %s", lamports, key)
	return info.Clone(), nil
}

// Account - the committed state of key
func (bank *Bank) Account(key account.Key) (*account.Info, error) {
	bank.Lock()
	defer bank.Unlock()

	record := storage.Pool.Accounts.Get(key[:])
	if nil == record {
		return nil, fault.ErrAccountNotFound
	}
	info, err := account.Unpack(key, record)
	if nil != err {
		return nil, err
	}
	info.Executable = info.Executable || bank.isExecutable(key)
	return info, nil
}

func (bank *Bank) isExecutable(key account.Key) bool {
	if isBuiltin(key) {
		return true
	}
	_, ok := bank.programs[key]
	return ok
}

func isBuiltin(key account.Key) bool {
	return key.Equals(account.SystemProgramID) || key.Equals(account.TokenProgramID)
}
