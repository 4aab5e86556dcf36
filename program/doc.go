// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - the threshold gated burn program
//
// The program owns one state record at the address derived from
// "state".  Each successful swallow burns exactly the current
// threshold from the program's token account and advances the
// threshold along the Fibonacci recurrence seeded at initialise:
//
//   (prev, next) → (next, prev + next)
//
// All account access happens through the accounts given to Process
// and all side effects on other programs go through Host.  The host
// commits writes only if Process returns nil.
package program
