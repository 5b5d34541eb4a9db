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

const (
	// DefaultTTL is the time to live for cached point-query responses.
	DefaultTTL = 12 * time.Hour
	// BulkTTL is the time to live for cached bulk file downloads.
	BulkTTL = 24 * time.Hour
	// DegradedTTL is the time to live for synthetic fallback entries. Kept short so
	// degraded data is retried against the upstream well before live data would expire.
	DegradedTTL = 30 * time.Minute
	// DefaultSweepInterval is the default interval between expired entry sweeps.
	DefaultSweepInterval = time.Hour
)
