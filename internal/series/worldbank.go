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
	"strconv"
	"strings"
	"time"

	"github.com/worlddata/insights/internal/system/cache"
	"github.com/worlddata/insights/internal/system/config"
	"github.com/worlddata/insights/internal/system/error/serviceerror"
	"github.com/worlddata/insights/internal/system/log"
)

// WorldBankRequest holds the parameters of an indicator-by-country request.
type WorldBankRequest struct {
	Indicator string
	Country   string
	Date      string
	PerPage   int
}

// WorldBankRef is an id/value reference pair used throughout the indicator envelope.
type WorldBankRef struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// WorldBankRecord is one country-year indicator observation. Value is a
// pointer so null observations can be filtered rather than zero-coerced.
type WorldBankRecord struct {
	Indicator       WorldBankRef `json:"indicator"`
	Country         WorldBankRef `json:"country"`
	CountryISO3Code string       `json:"countryiso3code"`
	Date            string       `json:"date"`
	Value           *float64     `json:"value"`
	Unit            string       `json:"unit"`
	ObsStatus       string       `json:"obs_status"`
	Decimal         int          `json:"decimal"`
}

// WorldBankPagination is the pagination header of the indicator envelope.
type WorldBankPagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// worldBankPayload is the cache-stored shape of an indicator result.
type worldBankPayload struct {
	Pagination WorldBankPagination
	Data       []WorldBankRecord
}

// GetWorldBankIndicator retrieves indicator data for a country or region.
func (ss *seriesService) GetWorldBankIndicator(ctx context.Context,
	request WorldBankRequest) (*IndicatorResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesService"))

	indicator := strings.TrimSpace(request.Indicator)
	if indicator == "" {
		return nil, &ErrorMissingIndicator
	}

	country := request.Country
	if country == "" {
		country = "all"
	}
	perPage := request.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	keyParams := map[string]any{
		"indicator": indicator,
		"country":   country,
		"per_page":  perPage,
	}
	if request.Date != "" {
		keyParams["date"] = request.Date
	}
	key, err := cache.GenerateKey(cacheKeyPrefixWorldBank, keyParams)
	if err != nil {
		logger.Error("Failed to generate cache key", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	srcCfg := config.GetInsightsRuntime().Config.Sources.WorldBank

	outcome, err := ss.engine.fetch(ctx, "worldbank", key, cache.DefaultTTL,
		func(ctx context.Context) (any, error) {
			requestURL := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&per_page=%d",
				srcCfg.BaseURL, country, indicator, perPage)
			if request.Date != "" {
				requestURL += "&date=" + request.Date
			}

			body, err := ss.engine.getJSON(ctx, requestURL, time.Duration(srcCfg.Timeout)*time.Second)
			if err != nil {
				return nil, err
			}
			return decodeWorldBankEnvelope(body, logger), nil
		},
		nil,
		func() (any, bool) {
			return mockWorldBankPayload(indicator), true
		})
	if err != nil {
		logger.Error("Failed to fetch indicator data", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	payload, ok := outcome.Value.(worldBankPayload)
	if !ok {
		logger.Error("Unexpected cached value type for indicator data", log.String(log.LoggerKeyCacheKey, key))
		return nil, &ErrorInternalServerError
	}
	return &IndicatorResult{
		Pagination: payload.Pagination,
		Data:       payload.Data,
		Provenance: outcome.Provenance,
		FetchedAt:  outcome.FetchedAt,
	}, nil
}

// decodeWorldBankEnvelope decodes the two-element [pagination, data] envelope.
// A violated structural contract degrades to an empty valid result rather than
// a hard failure; null observations are filtered out.
func decodeWorldBankEnvelope(body []byte, logger *log.Logger) worldBankPayload {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		logger.Warn("Indicator response is not an array, degrading to empty result", log.Error(err))
		return worldBankPayload{Data: []WorldBankRecord{}}
	}

	payload := worldBankPayload{Data: []WorldBankRecord{}}
	if len(elements) > 0 {
		if err := json.Unmarshal(elements[0], &payload.Pagination); err != nil {
			logger.Warn("Failed to decode indicator pagination", log.Error(err))
		}
	}
	if len(elements) < 2 {
		logger.Warn("Indicator response has insufficient elements, degrading to empty result",
			log.Int("elements", len(elements)))
		return payload
	}

	var records []WorldBankRecord
	if err := json.Unmarshal(elements[1], &records); err != nil {
		logger.Warn("Indicator data element is not an array, degrading to empty result", log.Error(err))
		return payload
	}

	for _, record := range records {
		if record.Value != nil {
			payload.Data = append(payload.Data, record)
		}
	}
	return payload
}

// mockWorldBankPayload returns the bundled world-level reference table for a
// known indicator, or an empty result for anything else.
func mockWorldBankPayload(indicator string) worldBankPayload {
	values, ok := mockWorldBankTables[indicator]
	if !ok {
		return worldBankPayload{Data: []WorldBankRecord{}}
	}

	records := make([]WorldBankRecord, 0, len(values.values))
	for i, value := range values.values {
		v := value
		records = append(records, WorldBankRecord{
			Indicator:       WorldBankRef{ID: indicator, Value: values.name},
			Country:         WorldBankRef{ID: "WLD", Value: "World"},
			CountryISO3Code: "WLD",
			Date:            strconv.Itoa(mockTableStartYear + i),
			Value:           &v,
			Decimal:         values.decimal,
		})
	}
	return worldBankPayload{
		Pagination: WorldBankPagination{Page: 1, Pages: 1, PerPage: defaultPerPage, Total: len(records)},
		Data:       records,
	}
}

const mockTableStartYear = 2010

// mockWorldBankTables holds approximate world aggregates from 2010 onwards for
// the indicators the dashboard charts by default.
var mockWorldBankTables = map[string]struct {
	name    string
	decimal int
	values  []float64
}{
	"SP.POP.TOTL": {
		name: "Population, total",
		values: []float64{
			6956823603, 7052338695, 7144008427, 7236377024, 7328447604,
			7418685116, 7508554347, 7598556058, 7688523891, 7778520157,
			7868377934, 7958518960, 8047923006, 8137059925, 8225690000,
		},
	},
	"NY.GDP.MKTP.CD": {
		name: "GDP (current US$)",
		values: []float64{
			66051934413222, 73315947756579, 75227658292843, 77281033449988, 80108093540681,
			75209850040806, 76134012456734, 81399169430062, 86774515343021, 87697862801043,
			85123611851651, 96874523754692, 101390734283256, 105411455713000, 109500000000000,
		},
	},
	"SP.DYN.LE00.IN": {
		name:    "Life expectancy at birth, total (years)",
		decimal: 1,
		values: []float64{
			69.8, 70.1, 70.4, 70.7, 71.0,
			71.4, 71.8, 72.1, 72.3, 72.6,
			71.4, 71.0, 71.6, 72.1, 72.5,
		},
	},
	"SP.URB.TOTL.IN.ZS": {
		name:    "Urban population (% of total population)",
		decimal: 2,
		values: []float64{
			51.65, 52.03, 52.41, 52.80, 53.19,
			53.58, 53.96, 54.34, 54.73, 55.11,
			55.49, 55.87, 56.25, 56.64, 57.02,
		},
	},
}
