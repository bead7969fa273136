/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dburkart/clex/pkg/scanner"
)

// ResultCache remembers scan results by the xxhash of their source text.
// When full, the oldest entry is evicted first.
type ResultCache struct {
	mu      sync.Mutex
	size    int
	entries map[uint64]cacheEntry
	order   []uint64
}

type cacheEntry struct {
	source string
	result scanner.Result
}

func NewResultCache(size int) *ResultCache {
	return &ResultCache{
		size:    size,
		entries: make(map[uint64]cacheEntry, size),
		order:   make([]uint64, 0, size),
	}
}

func (c *ResultCache) Get(source string) (scanner.Result, bool) {
	if c == nil || c.size <= 0 {
		return scanner.Result{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[xxhash.Sum64String(source)]
	// Guard against hash collisions
	if !ok || e.source != source {
		return scanner.Result{}, false
	}
	return e.result, true
}

func (c *ResultCache) Put(source string, result scanner.Result) {
	if c == nil || c.size <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := xxhash.Sum64String(source)
	if _, ok := c.entries[key]; !ok {
		if len(c.order) >= c.size {
			delete(c.entries, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{source: source, result: result}
}

func (c *ResultCache) Len() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ResultCache) Cap() int {
	if c == nil || c.size < 0 {
		return 0
	}
	return c.size
}
