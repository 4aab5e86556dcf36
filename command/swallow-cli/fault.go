// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/swallow/fault"
)

// command errors - keep in alphabetic order
const (
	ErrAirdropNotPermitted = fault.InvalidError("airdrop is not permitted on this cluster")
	ErrFileExists          = fault.ExistsError("output file already exists")
	ErrMissingAmount       = fault.InvalidError("amount must be greater than zero")
	ErrMissingKey          = fault.InvalidError("key is required")
	ErrMissingOutput       = fault.InvalidError("output file is required")
	ErrMissingProgramID    = fault.InvalidError("program_id is not configured")
	ErrMissingReceipt      = fault.InvalidError("receipt id is required")
)
