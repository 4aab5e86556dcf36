// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/swallow/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // included
			Limit: p.limit,          // excluded
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements from the current position
// and advance past the last one returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if nil == cursor.pool.access {
		return nil, nil
	}

	results := make([]Element, 0, count)
	err := cursor.iterate(func(key []byte, value []byte) (bool, error) {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		return len(results) < count, nil
	})

	if n := len(results); n > 0 {
		// smallest key strictly after the last one
		last := results[n-1].Key
		start := make([]byte, 0, len(last)+2)
		start = append(start, cursor.pool.prefix)
		start = append(start, last...)
		cursor.maxRange.Start = append(start, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}
	if nil == cursor.pool.access {
		return nil
	}

	return cursor.iterate(func(key []byte, value []byte) (bool, error) {
		err := f(key, value)
		return nil == err, err
	})
}

// call f with prefix stripped copies until it returns false
func (cursor *FetchCursor) iterate(f func(key []byte, value []byte) (bool, error)) error {
	iter := cursor.pool.access.Iterator(&cursor.maxRange)
	defer iter.Release()

	for iter.Next() {

		// contents of the returned slices are only valid until Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1)
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		more, err := f(dataKey, dataValue)
		if nil != err {
			return err
		}
		if !more {
			break
		}
	}
	return iter.Error()
}
