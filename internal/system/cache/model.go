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

package cache

import "time"

// entry represents a single cached value with its lifetime bounds.
type entry struct {
	value     any
	storedAt  time.Time
	expiresAt time.Time
}

// EntryStat describes a single cache entry for introspection.
type EntryStat struct {
	Key       string `json:"key"`
	Age       string `json:"age"`
	ExpiresIn string `json:"expiresIn"`
}

// Stats describes the current state of the cache.
type Stats struct {
	Size    int         `json:"size"`
	Entries []EntryStat `json:"entries"`
}
