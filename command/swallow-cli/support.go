// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/swallow/account"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// key from a flag, falling back to a configured value
func keyFlag(c *cli.Context, name string, fallback string) (account.Key, error) {
	s := c.String(name)
	if "" == s {
		s = fallback
	}
	if "" == s {
		return account.Key{}, fmt.Errorf("%s: %s", name, ErrMissingKey)
	}
	return account.ParseKey(s)
}

func (m *metadata) payer() (account.PrivateKey, error) {
	return account.LoadKeypair(m.config.Keypair)
}

func (m *metadata) programID() (account.Key, error) {
	if "" == m.config.ProgramID {
		return account.Key{}, ErrMissingProgramID
	}
	return account.ParseKey(m.config.ProgramID)
}

// make a fresh key pair file, never overwriting
func newKeypairFile(fileName string) (account.PrivateKey, error) {
	if "" == fileName {
		return nil, ErrMissingOutput
	}
	if _, err := os.Stat(fileName); nil == err {
		return nil, ErrFileExists
	}
	key, err := account.NewKeypair()
	if nil != err {
		return nil, err
	}
	err = account.SaveKeypair(fileName, key)
	if nil != err {
		return nil, err
	}
	return key, nil
}
