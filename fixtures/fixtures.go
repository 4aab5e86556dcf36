// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// identities used across tests
var (
	ProgramID = solana.MustPublicKeyFromBase58("topG3JDRBZeSyUxvicdez4FSCooX8oJVfvC32VLshwf")
	MintID    = solana.MustPublicKeyFromBase58("smnke8ZE6nqhdHNGNibJVmJ4GcnNTJAw5r6qXfhesbp")
	VaultID   = solana.MustPublicKeyFromBase58("mafiabMzySH6Ep6dXVqamaV8YHnWGtfRd1Zok75gHJs")
)

// SetupTestLogger - log to a throwaway directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
