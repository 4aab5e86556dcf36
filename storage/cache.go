// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - pending writes of the open batch
type Cache interface {
	Get(string) (dbOperation, []byte, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// entries outlive any batch; Clear is called at commit or abort
const (
	defaultExpiration      = 10 * time.Minute
	defaultCleanupInterval = 20 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(defaultExpiration, defaultCleanupInterval),
	}
}

// a deleted key is found with op == dbDelete
func (c *dbCache) Get(key string) (dbOperation, []byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return dbPut, nil, false
	}

	data := obj.(cacheData)
	return data.op, data.value, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	cached := cacheData{
		op:    op,
		value: stored,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
