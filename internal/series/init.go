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
	"net/http"

	"github.com/worlddata/insights/internal/system/cache"
	httpclient "github.com/worlddata/insights/internal/system/http"
	"github.com/worlddata/insights/internal/system/middleware"
)

// Initialize initializes the series service and registers its routes.
func Initialize(mux *http.ServeMux, responseCache *cache.ResponseCache,
	client httpclient.HTTPClientInterface) SeriesServiceInterface {
	seriesService := newSeriesService(responseCache, client)
	seriesHandler := newSeriesHandler(seriesService)
	registerRoutes(mux, seriesHandler)
	return seriesService
}

// registerRoutes registers the routes for time series fetch operations.
func registerRoutes(mux *http.ServeMux, seriesHandler *seriesHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods: "GET",
		AllowedHeaders: "Content-Type",
	}

	routes := map[string]http.HandlerFunc{
		"/api/fred/series/observations": seriesHandler.HandleFredObservationsRequest,
		"/api/fred/series/info":         seriesHandler.HandleFredSeriesInfoRequest,
		"/api/fred/series/search":       seriesHandler.HandleFredSearchRequest,
		"/api/worldbank/indicator":      seriesHandler.HandleWorldBankIndicatorRequest,
		"/api/datacommons/observation":  seriesHandler.HandleDataCommonsObservationRequest,
		"/api/census/population":        seriesHandler.HandleCensusPopulationRequest,
	}
	for pattern, handler := range routes {
		mux.HandleFunc(middleware.WithCORS("GET "+pattern, handler, opts))
		mux.HandleFunc(middleware.WithCORS("OPTIONS "+pattern,
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}, opts))
	}
}
