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

// Provenance indicates where the data in a fetch result came from.
type Provenance string

const (
	// ProvenanceLive marks data returned by the upstream API.
	ProvenanceLive Provenance = "live"
	// ProvenanceSynthetic marks data produced by the synthetic generator after an upstream failure.
	ProvenanceSynthetic Provenance = "synthetic"
	// ProvenanceMock marks static reference data bundled with the server.
	ProvenanceMock Provenance = "mock"
)

// ChartPoint is the normalized chart-ready shape all sources are transformed into.
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MultiSeriesPoint holds the values of several series at one date. Series with
// no observation at that date are absent from the map.
type MultiSeriesPoint struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// ObservationsResult is the normalized response for a time series observation request.
type ObservationsResult struct {
	SeriesID     string       `json:"seriesId"`
	Observations []ChartPoint `json:"observations"`
	Provenance   Provenance   `json:"provenance"`
	FetchedAt    time.Time    `json:"fetchedAt"`
}

// SeriesInfoResult is the normalized response for a series metadata request.
type SeriesInfoResult struct {
	Series     FredSeriesInfo `json:"series"`
	Provenance Provenance     `json:"provenance"`
	FetchedAt  time.Time      `json:"fetchedAt"`
}

// SeriesSearchResult is the normalized response for a series search request.
type SeriesSearchResult struct {
	Count      int              `json:"count"`
	Series     []FredSeriesInfo `json:"series"`
	Provenance Provenance       `json:"provenance"`
	FetchedAt  time.Time        `json:"fetchedAt"`
}

// IndicatorResult is the normalized response for an indicator-by-country request.
type IndicatorResult struct {
	Pagination WorldBankPagination `json:"pagination"`
	Data       []WorldBankRecord   `json:"data"`
	Provenance Provenance          `json:"provenance"`
	FetchedAt  time.Time           `json:"fetchedAt"`
}

// DataCommonsMetadata describes the variable and entity of an observation result.
type DataCommonsMetadata struct {
	Variable string `json:"variable"`
	Entity   string `json:"entity"`
	Count    int    `json:"count"`
}

// DataCommonsResult is the normalized response for a statistical observation request.
type DataCommonsResult struct {
	Observations []ChartPoint        `json:"observations"`
	Metadata     DataCommonsMetadata `json:"metadata"`
	Provenance   Provenance          `json:"provenance"`
	FetchedAt    time.Time           `json:"fetchedAt"`
}

// CensusPoint is a single named census observation.
type CensusPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Name  string  `json:"name,omitempty"`
}

// CensusResult is the normalized response for a census population request.
type CensusResult struct {
	Data       []CensusPoint `json:"data"`
	Year       int           `json:"year"`
	Geography  string        `json:"geography"`
	Provenance Provenance    `json:"provenance"`
	FetchedAt  time.Time     `json:"fetchedAt"`
}
