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

// Package series provides the resilient multi-source time series fetch operations.
package series

import (
	"context"

	"github.com/worlddata/insights/internal/system/cache"
	"github.com/worlddata/insights/internal/system/error/serviceerror"
	httpclient "github.com/worlddata/insights/internal/system/http"
)

// SeriesServiceInterface defines the interface for the series service.
type SeriesServiceInterface interface {
	GetFredObservations(ctx context.Context, request FredObservationsRequest) (
		*ObservationsResult, *serviceerror.ServiceError)
	GetFredSeriesInfo(ctx context.Context, seriesID string) (*SeriesInfoResult, *serviceerror.ServiceError)
	SearchFredSeries(ctx context.Context, request FredSearchRequest) (
		*SeriesSearchResult, *serviceerror.ServiceError)
	GetWorldBankIndicator(ctx context.Context, request WorldBankRequest) (
		*IndicatorResult, *serviceerror.ServiceError)
	GetDataCommonsObservations(ctx context.Context, request DataCommonsRequest) (
		*DataCommonsResult, *serviceerror.ServiceError)
	GetCensusPopulation(ctx context.Context, request CensusRequest) (*CensusResult, *serviceerror.ServiceError)
}

// seriesService is the default implementation of the SeriesServiceInterface.
// All sources share one fetch engine and thus one cache and HTTP client.
type seriesService struct {
	engine *fetchEngine
}

// newSeriesService creates a new instance of the series service.
func newSeriesService(responseCache *cache.ResponseCache, client httpclient.HTTPClientInterface) SeriesServiceInterface {
	return &seriesService{
		engine: newFetchEngine(responseCache, client),
	}
}
