/*
 * Copyright 2024 The Papys Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cache provides the path cache, which memoizes route resolutions
// by literal request path so repeat traffic skips template matching
package cache

import (
	"sync"

	"github.com/asderix/papys/internal/routing"
	"github.com/asderix/papys/internal/util/metrics"
)

// Cache event labels
const (
	eventHit   = "hit"
	eventMiss  = "miss"
	eventClear = "clear"
)

// PathCache memoizes (method, literal path) route resolutions in
// independent per-method buckets. When a bucket reaches the configured
// maximum size it is cleared in full before the next insert; there is no
// per-entry bookkeeping. The cache is purely an optimization: a resolution
// served from it is identical to one derived by a fresh table lookup,
// because the literal path is the exact string the template matched.
type PathCache struct {
	maxSize int

	// mu guards the buckets; the hosting transport dispatches requests
	// concurrently and inserts happen on live traffic
	mu      sync.Mutex
	buckets map[string]map[string]*routing.Resolution
}

// New returns a PathCache whose buckets hold up to maxSize entries each
func New(maxSize int) *PathCache {
	c := &PathCache{maxSize: maxSize, buckets: make(map[string]map[string]*routing.Resolution)}
	for _, m := range routing.Methods() {
		c.buckets[m] = make(map[string]*routing.Resolution)
	}
	return c
}

// Check returns the cached resolution for the method and literal path, or
// a miss
func (c *PathCache) Check(method, path string) (*routing.Resolution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket, ok := c.buckets[method]
	if !ok {
		return nil, false
	}
	if r, ok := bucket[path]; ok {
		metrics.PathCacheEvents.WithLabelValues(method, eventHit).Inc()
		return r, true
	}
	metrics.PathCacheEvents.WithLabelValues(method, eventMiss).Inc()
	return nil, false
}

// Add inserts a resolution for the method and literal path. If the
// method's bucket is already at the maximum size, the entire bucket is
// cleared before the insert.
func (c *PathCache) Add(method, path string, r *routing.Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket, ok := c.buckets[method]
	if !ok {
		return
	}
	if len(bucket) >= c.maxSize {
		bucket = make(map[string]*routing.Resolution)
		c.buckets[method] = bucket
		metrics.PathCacheEvents.WithLabelValues(method, eventClear).Inc()
	}
	bucket[path] = r
	metrics.PathCacheObjects.WithLabelValues(method).Set(float64(len(bucket)))
}

// Len returns the number of entries in the method's bucket
func (c *PathCache) Len(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buckets[method])
}
