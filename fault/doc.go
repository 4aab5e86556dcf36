// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// ProgramError values are the results an on-ledger program returns
// to its host; the remaining classes are raised by the host itself
// and by the supporting packages
package fault
