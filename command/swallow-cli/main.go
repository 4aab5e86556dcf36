// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/configuration"
	"github.com/bitmark-inc/swallow/ledger"
	"github.com/bitmark-inc/swallow/program"
	"github.com/bitmark-inc/swallow/storage"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	bank    *ledger.Bank
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that run without a configuration file
var noConfiguration = map[string]bool{
	"":        true,
	"help":    true,
	"h":       true,
	"keygen":  true,
	"version": true,
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "swallow-cli"
	app.Usage = "drive the swallow burn program on a local ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "swallow.conf",
			Usage: " Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "keygen",
			Usage:     "generate a key pair file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: "*key pair `FILE` to create",
				},
			},
			Action: runKeygen,
		},
		{
			Name:      "airdrop",
			Usage:     "credit lamports to an account (not on mainnet)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receiving `KEY` default is the payer",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 1000000000,
					Usage: " amount to credit `NUMBER`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "create-mint",
			Usage:     "create a token mint with the payer as authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: "*mint key pair `FILE` to create",
				},
				cli.UintFlag{
					Name:  "decimals, d",
					Value: 0,
					Usage: " token decimals `NUMBER`",
				},
			},
			Action: runCreateMint,
		},
		{
			Name:      "create-token-account",
			Usage:     "create a token account, owned by the program authority unless given",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: "*token account key pair `FILE` to create",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: " mint `KEY` default from configuration",
				},
				cli.StringFlag{
					Name:  "owner",
					Value: "",
					Usage: " owner `KEY` default is the program authority",
				},
			},
			Action: runCreateTokenAccount,
		},
		{
			Name:      "mint-to",
			Usage:     "mint tokens into a token account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: " mint `KEY` default from configuration",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: " token account `KEY` default is the configured vault",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*tokens to mint `NUMBER`",
				},
			},
			Action: runMintTo,
		},
		{
			Name:      "transfer",
			Usage:     "move tokens out of a payer owned token account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*source token account `KEY`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: " destination token account `KEY` default is the configured vault",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*tokens to move `NUMBER`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "initialize",
			Usage:     "create the program state with a starting threshold",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "threshold, t",
					Value: 0,
					Usage: "*starting threshold `NUMBER`",
				},
			},
			Action: runInitialize,
		},
		{
			Name:      "swallow",
			Usage:     "burn the current threshold from the program vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: " mint `KEY` default from configuration",
				},
				cli.StringFlag{
					Name:  "vault, t",
					Value: "",
					Usage: " program token account `KEY` default from configuration",
				},
			},
			Action: runSwallow,
		},
		{
			Name:   "state",
			Usage:  "display the program state",
			Action: runState,
		},
		{
			Name:      "balance",
			Usage:     "display lamports and token balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " account `KEY` default is the payer",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "receipt",
			Usage:     "display a committed transaction receipt",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*receipt `ID`",
				},
			},
			Action: runReceipt,
		},
		{
			Name:  "version",
			Usage: "display swallow-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the ledger
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			file:    c.GlobalString("config"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		if noConfiguration[c.Args().Get(0)] {
			return nil
		}

		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", m.file)
		}

		config, err := configuration.Get(m.file)
		if nil != err {
			return err
		}
		m.config = config

		err = logger.Initialise(config.Logging)
		if nil != err {
			return err
		}

		err = storage.Initialise(config.Database.Name, storage.ReadWrite)
		if nil != err {
			logger.Finalise()
			return err
		}

		bank, err := ledger.New(logger.New("ledger"), config.Rent)
		if nil != err {
			storage.Finalise()
			logger.Finalise()
			return err
		}
		m.bank = bank

		if "" != config.ProgramID {
			programID, err := account.ParseKey(config.ProgramID)
			if nil != err {
				return err
			}
			err = bank.Register(programID, program.New(logger.New("program")))
			if nil != err {
				return err
			}
		}
		return nil
	}

	// close the ledger
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.bank {
			return nil
		}
		storage.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}
