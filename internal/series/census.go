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

// CensusRequest holds the parameters of a census population request.
type CensusRequest struct {
	Year      int
	Geography string
}

// GetCensusPopulation retrieves population estimates for a geography. The
// statistical agency's endpoint layout varies by vintage, so several endpoint
// shapes are attempted before degrading to an empty result.
func (ss *seriesService) GetCensusPopulation(ctx context.Context,
	request CensusRequest) (*CensusResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesService"))

	year := request.Year
	if year <= 0 {
		year = defaultCensusYear
	}
	geography := request.Geography
	if geography == "" {
		geography = defaultGeography
	}

	key, err := cache.GenerateKey(cacheKeyPrefixCensus, map[string]any{
		"year":      year,
		"geography": geography,
	})
	if err != nil {
		logger.Error("Failed to generate cache key", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	srcCfg := config.GetInsightsRuntime().Config.Sources.Census

	outcome, err := ss.engine.fetch(ctx, "census", key, cache.DefaultTTL,
		func(ctx context.Context) (any, error) {
			return ss.fetchCensusPopulation(ctx, srcCfg, year, geography)
		},
		nil,
		func() (any, bool) {
			// The original behavior: population data that cannot be fetched
			// degrades to an empty result rather than an error.
			return []CensusPoint{}, true
		})
	if err != nil {
		logger.Error("Failed to fetch population estimates", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	data, ok := outcome.Value.([]CensusPoint)
	if !ok {
		logger.Error("Unexpected cached value type for population estimates",
			log.String(log.LoggerKeyCacheKey, key))
		return nil, &ErrorInternalServerError
	}
	return &CensusResult{
		Data:       data,
		Year:       year,
		Geography:  geography,
		Provenance: outcome.Provenance,
		FetchedAt:  outcome.FetchedAt,
	}, nil
}

// fetchCensusPopulation tries the known endpoint layouts in order and returns
// the rows of the first that answers with a well-formed table.
func (ss *seriesService) fetchCensusPopulation(ctx context.Context, srcCfg config.SourceConfig,
	year int, geography string) ([]CensusPoint, error) {
	apiKey := ""
	if srcCfg.APIKeyEnv != "" {
		apiKey = strings.TrimSpace(os.Getenv(srcCfg.APIKeyEnv))
	}

	endpoints := []struct {
		path     string
		variable string
	}{
		{path: fmt.Sprintf("%s/%d/pep/population", srcCfg.BaseURL, year), variable: "NAME,POP"},
		{path: fmt.Sprintf("%s/%d/pep/charagegroups", srcCfg.BaseURL, year), variable: "NAME,POP"},
	}
	if year >= 2020 {
		endpoints = append(endpoints, struct {
			path     string
			variable string
		}{path: fmt.Sprintf("%s/%d/acs/acs5", srcCfg.BaseURL, year), variable: "NAME,B01003_001E"})
	}

	var lastErr error
	for _, endpoint := range endpoints {
		query := url.Values{}
		query.Set("get", endpoint.variable)
		query.Set("for", geography)
		if apiKey != "" {
			query.Set("key", apiKey)
		}

		body, err := ss.engine.getJSON(ctx, endpoint.path+"?"+query.Encode(),
			time.Duration(srcCfg.Timeout)*time.Second)
		if err != nil {
			lastErr = err
			continue
		}

		points, err := decodeCensusTable(body, year)
		if err != nil {
			lastErr = err
			continue
		}
		return points, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no population endpoint available for %d", year)
	}
	return nil, lastErr
}

// decodeCensusTable decodes the [headers, ...rows] table envelope. The first
// row is the header row; each data row carries the name in column 0 and the
// value in column 1.
func decodeCensusTable(body []byte, year int) ([]CensusPoint, error) {
	var table [][]string
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("failed to decode table response: %w", err)
	}
	if len(table) < 2 {
		return nil, fmt.Errorf("table response has no data rows")
	}

	rows := table[1:]
	points := make([]CensusPoint, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			value = 0
		}
		points = append(points, CensusPoint{
			Date:  strconv.Itoa(year),
			Value: value,
			Name:  row[0],
		})
	}
	return points, nil
}
