// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/instruction"
)

// Program - the entry point called by the host
type Program struct {
	log *logger.L
}

// New - create a program instance logging to log
func New(log *logger.L) *Program {
	return &Program{
		log: log,
	}
}

// Process - dispatch one instruction
func (p *Program) Process(host Host, programID account.Key, accounts []*account.Info, data []byte) error {
	op, payload, err := instruction.Decode(data)
	if nil != err {
		p.log.Warnf("rejected instruction data: %x", data)
		return err
	}

	p.log.Debugf("%s: %d accounts", op, len(accounts))

	switch op {
	case instruction.Initialize:
		err = p.initialize(host, programID, accounts, payload)
	case instruction.Swallow:
		err = p.swallow(host, programID, accounts)
	}
	if nil != err {
		p.log.Infof("%s failed: %s", op, err)
	}
	return err
}
