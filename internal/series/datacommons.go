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
	"sort"
	"strings"
	"time"

	"github.com/worlddata/insights/internal/system/cache"
	"github.com/worlddata/insights/internal/system/config"
	"github.com/worlddata/insights/internal/system/error/serviceerror"
	"github.com/worlddata/insights/internal/system/log"
)

// DataCommonsRequest holds the parameters of a statistical observation request.
// Variable is the statistical variable (e.g. "UnemploymentRate_Person") and
// Entity the place (e.g. "country/USA").
type DataCommonsRequest struct {
	Variable  string
	Entity    string
	StartDate string
	EndDate   string
}

// dataCommonsEnvelope is the nested byVariable→byEntity→orderedFacets→facets
// observation envelope.
type dataCommonsEnvelope struct {
	ByVariable map[string]struct {
		ByEntity map[string]struct {
			OrderedFacets []struct {
				FacetID string `json:"facetId"`
			} `json:"orderedFacets"`
		} `json:"byEntity"`
	} `json:"byVariable"`
	Facets map[string]struct {
		Observations []struct {
			Date  string  `json:"date"`
			Value float64 `json:"value"`
		} `json:"observations"`
	} `json:"facets"`
}

// GetDataCommonsObservations retrieves observations of a statistical variable
// for an entity.
func (ss *seriesService) GetDataCommonsObservations(ctx context.Context,
	request DataCommonsRequest) (*DataCommonsResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesService"))

	variable := strings.TrimSpace(request.Variable)
	entity := strings.TrimSpace(request.Entity)
	if variable == "" || entity == "" {
		return nil, &ErrorMissingVariableOrEntity
	}

	keyParams := map[string]any{
		"key":    variable,
		"entity": entity,
	}
	if request.StartDate != "" {
		keyParams["startDate"] = request.StartDate
	}
	if request.EndDate != "" {
		keyParams["endDate"] = request.EndDate
	}
	key, err := cache.GenerateKey(cacheKeyPrefixDataCommons, keyParams)
	if err != nil {
		logger.Error("Failed to generate cache key", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	srcCfg := config.GetInsightsRuntime().Config.Sources.DataCommons

	outcome, err := ss.engine.fetch(ctx, "datacommons", key, cache.DefaultTTL,
		func(ctx context.Context) (any, error) {
			query := url.Values{}
			query.Set("key", variable)
			query.Set("entity", entity)
			if request.StartDate != "" {
				query.Set("startDate", request.StartDate)
			}
			if request.EndDate != "" {
				query.Set("endDate", request.EndDate)
			}

			body, err := ss.engine.getJSON(ctx, srcCfg.BaseURL+"/observation?"+query.Encode(),
				time.Duration(srcCfg.Timeout)*time.Second)
			if err != nil {
				return nil, err
			}

			var envelope dataCommonsEnvelope
			if err := json.Unmarshal(body, &envelope); err != nil {
				return nil, fmt.Errorf("failed to decode observation response: %w", err)
			}
			return extractDataCommonsObservations(envelope, variable, entity), nil
		},
		func() (any, bool) {
			startYear := yearFromDate(request.StartDate, defaultSyntheticStartYear)
			endYear := yearFromDate(request.EndDate, defaultSyntheticEndYear)
			return unemploymentProfile.generate(entity, startYear, endYear), true
		},
		nil)
	if err != nil {
		logger.Error("Failed to fetch observations", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	observations, ok := outcome.Value.([]ChartPoint)
	if !ok {
		logger.Error("Unexpected cached value type for observations", log.String(log.LoggerKeyCacheKey, key))
		return nil, &ErrorInternalServerError
	}
	return &DataCommonsResult{
		Observations: observations,
		Metadata: DataCommonsMetadata{
			Variable: variable,
			Entity:   entity,
			Count:    len(observations),
		},
		Provenance: outcome.Provenance,
		FetchedAt:  outcome.FetchedAt,
	}, nil
}

// extractDataCommonsObservations walks the nested envelope and returns the
// observations of the first ordered facet, sorted ascending by date. Any
// missing level yields an empty result.
func extractDataCommonsObservations(envelope dataCommonsEnvelope, variable, entity string) []ChartPoint {
	points := []ChartPoint{}

	varData, ok := envelope.ByVariable[variable]
	if !ok {
		return points
	}
	placeData, ok := varData.ByEntity[entity]
	if !ok || len(placeData.OrderedFacets) == 0 {
		return points
	}

	facet, ok := envelope.Facets[placeData.OrderedFacets[0].FacetID]
	if !ok {
		return points
	}

	for _, obs := range facet.Observations {
		points = append(points, ChartPoint{Date: obs.Date, Value: obs.Value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
