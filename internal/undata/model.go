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

package undata

import "time"

// Provenance indicates where the CSV body of a result came from.
type Provenance string

const (
	// ProvenanceLive marks a CSV file downloaded from the upstream archive.
	ProvenanceLive Provenance = "live"
	// ProvenanceSynthetic marks a CSV body produced by the synthetic generator.
	ProvenanceSynthetic Provenance = "synthetic"
)

// CSVResult is the outcome of a bulk CSV download request.
type CSVResult struct {
	Body       []byte
	Provenance Provenance
	FetchedAt  time.Time
}

// cachedCSV is the unit stored in the response cache.
type cachedCSV struct {
	Body       []byte
	Provenance Provenance
	FetchedAt  time.Time
}
