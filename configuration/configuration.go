// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/swallow/account"
	"github.com/bitmark-inc/swallow/chain"
	"github.com/bitmark-inc/swallow/fault"
	"github.com/bitmark-inc/swallow/rent"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeypairFile = "payer.json"

	defaultLevelDBDirectory = "data"
	defaultDatabaseSuffix   = ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "swallow.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// a fresh map each time as the parser merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// DatabaseType - location of the ledger database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - everything the commands read from the Lua file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	Cluster       string       `gluamapper:"cluster" json:"cluster"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ProgramID string `gluamapper:"program_id" json:"program_id"`
	Mint      string `gluamapper:"mint" json:"mint"`
	Vault     string `gluamapper:"vault" json:"vault"`
	Keypair   string `gluamapper:"keypair" json:"keypair"`

	Rent    rent.Policy          `gluamapper:"rent" json:"rent"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Get - read decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Cluster:       chain.Local,
		Keypair:       defaultKeypairFile,
		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "",
		},
		Rent: rent.Default(),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Cluster = chain.Normalise(options.Cluster)
	if !chain.Valid(options.Cluster) {
		return nil, fault.ErrInvalidChain
	}
	if "" == options.Database.Name {
		options.Database.Name = options.Cluster + defaultDatabaseSuffix
	}

	if err := options.Rent.Validate(); nil != err {
		return nil, err
	}

	// identities are optional but must parse when given
	for _, s := range []string{options.ProgramID, options.Mint, options.Vault} {
		if "" == s {
			continue
		}
		if _, err := account.ParseKey(s); nil != err {
			return nil, fmt.Errorf("key: %q is invalid: %s", s, err)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	options.Keypair = EnsureAbsolute(options.DataDirectory, options.Keypair)

	// fail if any of these are not simple file names, then add
	// the directory prefix when one is given
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[1] = EnsureAbsolute(options.DataDirectory, *f[1])
				*f[0] = EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
