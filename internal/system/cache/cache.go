/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides an in-memory TTL cache for upstream API responses.
package cache

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/worlddata/insights/internal/system/log"
)

const loggerComponentName = "ResponseCache"

// ResponseCache is a thread-safe in-memory cache with per-entry TTLs.
// Expired entries are dropped lazily on read and periodically by the sweeper.
type ResponseCache struct {
	name    string
	enabled bool
	mu      sync.RWMutex
	entries map[string]entry

	sweepStop chan struct{}
	sweepOnce sync.Once
}

// NewResponseCache creates a new cache instance. A disabled cache accepts all
// operations but never stores anything.
func NewResponseCache(name string, enabled bool) *ResponseCache {
	return &ResponseCache{
		name:    name,
		enabled: enabled,
		entries: make(map[string]entry),
	}
}

// IsEnabled returns whether the cache is enabled.
func (c *ResponseCache) IsEnabled() bool {
	return c.enabled
}

// Set stores a value under the given key with the given TTL, overwriting any
// previous entry.
func (c *ResponseCache) Set(key string, value any, ttl time.Duration) {
	if !c.enabled {
		return
	}

	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     value,
		storedAt:  now,
		expiresAt: now.Add(ttl),
	}
}

// Get retrieves a value from the cache. An expired entry is removed on read and
// reported as a miss.
func (c *ResponseCache) Get(key string) (any, bool) {
	if !c.enabled {
		return nil, false
	}

	c.mu.RLock()
	ent, found := c.entries[key]
	c.mu.RUnlock()

	if !found {
		return nil, false
	}

	if time.Now().After(ent.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock in case a concurrent Set replaced the entry.
		if current, ok := c.entries[key]; ok && time.Now().After(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return ent.value, true
}

// Delete removes a single entry from the cache.
func (c *ResponseCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// ClearExpired removes all expired entries and returns the number removed.
func (c *ResponseCache) ClearExpired() int {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, ent := range c.entries {
		if now.After(ent.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// ClearAll removes every entry from the cache and returns the number removed.
func (c *ResponseCache) ClearAll() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := len(c.entries)
	c.entries = make(map[string]entry)
	return removed
}

// Size returns the number of entries currently held, including not yet swept
// expired ones.
func (c *ResponseCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache contents with human-readable ages.
func (c *ResponseCache) Stats() Stats {
	now := time.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]EntryStat, 0, len(c.entries))
	for key, ent := range c.entries {
		entries = append(entries, EntryStat{
			Key:       key,
			Age:       formatDuration(now.Sub(ent.storedAt)),
			ExpiresIn: formatDuration(ent.expiresAt.Sub(now)),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	return Stats{
		Size:    len(c.entries),
		Entries: entries,
	}
}

// StartSweeper starts a background routine that periodically removes expired
// entries. It is a no-op on a disabled cache.
func (c *ResponseCache) StartSweeper(interval time.Duration) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("cacheName", c.name))

	if !c.enabled {
		return
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	c.sweepOnce.Do(func() {
		c.sweepStop = make(chan struct{})

		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					if removed := c.ClearExpired(); removed > 0 {
						logger.Debug("Swept expired cache entries", log.Int("removed", removed))
					}
				case <-c.sweepStop:
					return
				}
			}
		}()

		logger.Debug("Cache sweep routine started", log.Any("interval", interval))
	})
}

// Stop terminates the background sweeper, if one was started.
func (c *ResponseCache) Stop() {
	if c.sweepStop != nil {
		close(c.sweepStop)
	}
}

// formatDuration renders a duration as minutes, switching to hours past one hour.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(math.Round(d.Minutes()))
	if minutes > 60 {
		return fmt.Sprintf("%dh", int(math.Round(d.Hours())))
	}
	return fmt.Sprintf("%dm", minutes)
}
