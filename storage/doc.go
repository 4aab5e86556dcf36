// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk ledger store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. key      = 32 byte ledger address
// 4. id       = 32 byte SHA3-256 receipt digest
// 5. sequence = big endian uint64 (8 bytes)
//
// Accounts:
//
//   A ++ key                   - account state
//                                data: owner ++ lamports ++ executable ++ data
//
// Receipts:
//
//   R ++ id                    - committed transaction receipts
//                                data: sequence ++ burned ++ packed keys
//
// Sequence:
//
//   S ++ "count"               - number of committed transactions
//                                data: sequence
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
