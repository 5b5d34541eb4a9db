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

package series

import "time"

// Cache key prefixes per source operation. Optional parameters are only part
// of the key when the caller provided them.
const (
	cacheKeyPrefixFredObservations = "fred-observations"
	cacheKeyPrefixFredInfo         = "fred-info"
	cacheKeyPrefixFredSearch       = "fred-search"
	cacheKeyPrefixWorldBank        = "worldbank"
	cacheKeyPrefixDataCommons      = "datacommons"
	cacheKeyPrefixCensus           = "census"
)

const (
	// defaultSourceTimeout bounds point queries when the source has no configured timeout.
	defaultSourceTimeout = 30 * time.Second

	defaultSearchLimit  = 100
	defaultSearchOffset = 0
	defaultPerPage      = 1000
	defaultCensusYear   = 2021
	defaultGeography    = "us:*"

	// Default year window for synthetic observation series.
	defaultSyntheticStartYear = 2015
	defaultSyntheticEndYear   = 2024
)
