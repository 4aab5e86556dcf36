// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - an in-process execution host for programs
//
// A Bank owns the account pool of the storage layer and applies
// transactions to it.  Each transaction is a list of instructions
// executed in order against a private working set of accounts;
// only when all instructions succeed are the changed accounts and a
// receipt written in a single storage batch.
//
// Two builtin programs are provided: a system program that creates
// accounts and moves lamports, and a token program holding the
// subset of SPL token behaviour needed to mint, move and burn
// tokens.  Other programs are registered by identity and reach the
// builtins through the program.Host interface.
//
// Signatures are not checked here: any key listed in the signers of
// a transaction is taken to have signed it.
package ledger
