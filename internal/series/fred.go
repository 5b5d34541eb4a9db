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

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/worlddata/insights/internal/system/cache"
	"github.com/worlddata/insights/internal/system/config"
	"github.com/worlddata/insights/internal/system/error/serviceerror"
	"github.com/worlddata/insights/internal/system/log"
)

// FredObservationsRequest holds the parameters of a series observations request.
type FredObservationsRequest struct {
	SeriesID          string
	ObservationStart  string
	ObservationEnd    string
	Units             string
	Frequency         string
	AggregationMethod string
}

// FredSearchRequest holds the parameters of a series search request.
type FredSearchRequest struct {
	SearchText     string
	Limit          int
	Offset         int
	OrderBy        string
	SortOrder      string
	FilterVariable string
	FilterValue    string
}

// FredSeriesInfo is the metadata record of one series.
type FredSeriesInfo struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	ObservationStart   string `json:"observation_start"`
	ObservationEnd     string `json:"observation_end"`
	Frequency          string `json:"frequency"`
	Units              string `json:"units"`
	SeasonalAdjustment string `json:"seasonal_adjustment"`
	LastUpdated        string `json:"last_updated"`
	Notes              string `json:"notes,omitempty"`
}

// fredObservation is one raw observation; values arrive as strings with "."
// marking missing data.
type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type fredObservationsEnvelope struct {
	Observations []fredObservation `json:"observations"`
}

type fredSeriesEnvelope struct {
	Seriess []FredSeriesInfo `json:"seriess"`
}

type fredSearchEnvelope struct {
	Count   int              `json:"count"`
	Seriess []FredSeriesInfo `json:"seriess"`
}

// fredSearchPayload is the cache-stored shape of a search result.
type fredSearchPayload struct {
	Count  int
	Series []FredSeriesInfo
}

// mockFredSearchSeries is the static reference result for search requests when
// the upstream is unreachable and no synthesis is possible.
var mockFredSearchSeries = []FredSeriesInfo{
	{ID: "DFF", Title: "Federal Funds Effective Rate", Frequency: "Daily", Units: "Percent",
		SeasonalAdjustment: "Not Seasonally Adjusted"},
	{ID: "UNRATE", Title: "Unemployment Rate", Frequency: "Monthly", Units: "Percent",
		SeasonalAdjustment: "Seasonally Adjusted"},
	{ID: "CPIAUCSL", Title: "Consumer Price Index for All Urban Consumers", Frequency: "Monthly",
		Units: "Index 1982-1984=100", SeasonalAdjustment: "Seasonally Adjusted"},
	{ID: "GDP", Title: "Gross Domestic Product", Frequency: "Quarterly", Units: "Billions of Dollars",
		SeasonalAdjustment: "Seasonally Adjusted Annual Rate"},
}

// GetFredObservations retrieves the observations of a series, resolving
// through cache, live call and synthetic fallback.
func (ss *seriesService) GetFredObservations(ctx context.Context,
	request FredObservationsRequest) (*ObservationsResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesService"))

	seriesID := strings.TrimSpace(request.SeriesID)
	if seriesID == "" {
		return nil, &ErrorMissingSeriesID
	}

	srcCfg := config.GetInsightsRuntime().Config.Sources.Fred
	apiKey, svcErr := resolveAPIKey(srcCfg.APIKeyEnv)
	if svcErr != nil {
		return nil, svcErr
	}

	optionalParams := map[string]string{
		"observation_start":  request.ObservationStart,
		"observation_end":    request.ObservationEnd,
		"units":              request.Units,
		"frequency":          request.Frequency,
		"aggregation_method": request.AggregationMethod,
	}

	keyParams := map[string]any{"series_id": seriesID}
	for name, value := range optionalParams {
		if value != "" {
			keyParams[name] = value
		}
	}
	key, err := cache.GenerateKey(cacheKeyPrefixFredObservations, keyParams)
	if err != nil {
		logger.Error("Failed to generate cache key", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	outcome, err := ss.engine.fetch(ctx, "fred", key, cache.DefaultTTL,
		func(ctx context.Context) (any, error) {
			query := url.Values{}
			query.Set("series_id", seriesID)
			query.Set("api_key", apiKey)
			query.Set("file_type", "json")
			for name, value := range optionalParams {
				if value != "" {
					query.Set(name, value)
				}
			}

			body, err := ss.engine.getJSON(ctx, srcCfg.BaseURL+"/series/observations?"+query.Encode(),
				time.Duration(srcCfg.Timeout)*time.Second)
			if err != nil {
				return nil, err
			}

			var envelope fredObservationsEnvelope
			if err := json.Unmarshal(body, &envelope); err != nil {
				return nil, fmt.Errorf("failed to decode observations response: %w", err)
			}
			return transformObservations(envelope.Observations), nil
		},
		func() (any, bool) {
			profile, ok := fredSeriesProfiles[seriesID]
			if !ok {
				profile = genericRateProfile
			}
			startYear := yearFromDate(request.ObservationStart, defaultSyntheticStartYear)
			endYear := yearFromDate(request.ObservationEnd, defaultSyntheticEndYear)
			return profile.generate(seriesID, startYear, endYear), true
		},
		nil)
	if err != nil {
		logger.Error("Failed to fetch series observations", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	points, ok := outcome.Value.([]ChartPoint)
	if !ok {
		logger.Error("Unexpected cached value type for series observations",
			log.String(log.LoggerKeyCacheKey, key))
		return nil, &ErrorInternalServerError
	}
	return &ObservationsResult{
		SeriesID:     seriesID,
		Observations: points,
		Provenance:   outcome.Provenance,
		FetchedAt:    outcome.FetchedAt,
	}, nil
}

// GetFredSeriesInfo retrieves the metadata of a series.
func (ss *seriesService) GetFredSeriesInfo(ctx context.Context,
	seriesID string) (*SeriesInfoResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesService"))

	seriesID = strings.TrimSpace(seriesID)
	if seriesID == "" {
		return nil, &ErrorMissingSeriesID
	}

	srcCfg := config.GetInsightsRuntime().Config.Sources.Fred
	apiKey, svcErr := resolveAPIKey(srcCfg.APIKeyEnv)
	if svcErr != nil {
		return nil, svcErr
	}

	key, err := cache.GenerateKey(cacheKeyPrefixFredInfo, map[string]any{"series_id": seriesID})
	if err != nil {
		logger.Error("Failed to generate cache key", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	outcome, err := ss.engine.fetch(ctx, "fred", key, cache.DefaultTTL,
		func(ctx context.Context) (any, error) {
			query := url.Values{}
			query.Set("series_id", seriesID)
			query.Set("api_key", apiKey)
			query.Set("file_type", "json")

			body, err := ss.engine.getJSON(ctx, srcCfg.BaseURL+"/series?"+query.Encode(),
				time.Duration(srcCfg.Timeout)*time.Second)
			if err != nil {
				return nil, err
			}

			var envelope fredSeriesEnvelope
			if err := json.Unmarshal(body, &envelope); err != nil {
				return nil, fmt.Errorf("failed to decode series response: %w", err)
			}
			if len(envelope.Seriess) == 0 {
				return nil, fmt.Errorf("series %s not present in response", seriesID)
			}
			return envelope.Seriess[0], nil
		},
		nil,
		func() (any, bool) {
			for _, info := range mockFredSearchSeries {
				if info.ID == seriesID {
					return info, true
				}
			}
			return FredSeriesInfo{ID: seriesID, Title: "Series " + seriesID}, true
		})
	if err != nil {
		logger.Error("Failed to fetch series info", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	info, ok := outcome.Value.(FredSeriesInfo)
	if !ok {
		logger.Error("Unexpected cached value type for series info", log.String(log.LoggerKeyCacheKey, key))
		return nil, &ErrorInternalServerError
	}
	return &SeriesInfoResult{
		Series:     info,
		Provenance: outcome.Provenance,
		FetchedAt:  outcome.FetchedAt,
	}, nil
}

// SearchFredSeries searches series by free text.
func (ss *seriesService) SearchFredSeries(ctx context.Context,
	request FredSearchRequest) (*SeriesSearchResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesService"))

	searchText := strings.TrimSpace(request.SearchText)
	if searchText == "" {
		return nil, &ErrorMissingSearchText
	}

	srcCfg := config.GetInsightsRuntime().Config.Sources.Fred
	apiKey, svcErr := resolveAPIKey(srcCfg.APIKeyEnv)
	if svcErr != nil {
		return nil, svcErr
	}

	limit := request.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	offset := request.Offset
	if offset < 0 {
		offset = defaultSearchOffset
	}

	optionalParams := map[string]string{
		"order_by":        request.OrderBy,
		"sort_order":      request.SortOrder,
		"filter_variable": request.FilterVariable,
		"filter_value":    request.FilterValue,
	}

	keyParams := map[string]any{
		"search_text": searchText,
		"limit":       limit,
		"offset":      offset,
	}
	for name, value := range optionalParams {
		if value != "" {
			keyParams[name] = value
		}
	}
	key, err := cache.GenerateKey(cacheKeyPrefixFredSearch, keyParams)
	if err != nil {
		logger.Error("Failed to generate cache key", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	outcome, err := ss.engine.fetch(ctx, "fred", key, cache.DefaultTTL,
		func(ctx context.Context) (any, error) {
			query := url.Values{}
			query.Set("search_text", searchText)
			query.Set("api_key", apiKey)
			query.Set("file_type", "json")
			query.Set("limit", strconv.Itoa(limit))
			query.Set("offset", strconv.Itoa(offset))
			for name, value := range optionalParams {
				if value != "" {
					query.Set(name, value)
				}
			}

			body, err := ss.engine.getJSON(ctx, srcCfg.BaseURL+"/series/search?"+query.Encode(),
				time.Duration(srcCfg.Timeout)*time.Second)
			if err != nil {
				return nil, err
			}

			var envelope fredSearchEnvelope
			if err := json.Unmarshal(body, &envelope); err != nil {
				return nil, fmt.Errorf("failed to decode search response: %w", err)
			}
			return fredSearchPayload{Count: envelope.Count, Series: envelope.Seriess}, nil
		},
		nil,
		func() (any, bool) {
			matches := make([]FredSeriesInfo, 0, len(mockFredSearchSeries))
			for _, info := range mockFredSearchSeries {
				if strings.Contains(strings.ToLower(info.Title), strings.ToLower(searchText)) {
					matches = append(matches, info)
				}
			}
			return fredSearchPayload{Count: len(matches), Series: matches}, true
		})
	if err != nil {
		logger.Error("Failed to search series", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	payload, ok := outcome.Value.(fredSearchPayload)
	if !ok {
		logger.Error("Unexpected cached value type for series search", log.String(log.LoggerKeyCacheKey, key))
		return nil, &ErrorInternalServerError
	}
	return &SeriesSearchResult{
		Count:      payload.Count,
		Series:     payload.Series,
		Provenance: outcome.Provenance,
		FetchedAt:  outcome.FetchedAt,
	}, nil
}

// resolveAPIKey resolves a source credential from the environment. A missing
// key is an operator problem reported before any network I/O.
func resolveAPIKey(envVar string) (string, *serviceerror.ServiceError) {
	if envVar == "" {
		return "", &ErrorSourceNotConfigured
	}
	apiKey := strings.TrimSpace(os.Getenv(envVar))
	if apiKey == "" {
		return "", &ErrorSourceNotConfigured
	}
	return apiKey, nil
}
